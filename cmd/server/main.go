// This package serves the move predictor and the dashboard data over HTTP.

package main

import (
	"context"
	"flag"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	chessai "github.com/johaankjis/AI-Powered-Chess-Move-Predictor"
	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/fixture"
	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/httpapi"
	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/sampler"
)

var (
	addr        = flag.String("addr", ":8080", "address to listen on")
	configPath  = flag.String("config", "", "JSON config file, defaults are used when empty")
	seedFlag    = flag.Int64("seed", 0, "random seed for predictions and mock games, 0 seeds from the clock")
	minLatency  = flag.Int("min-latency", -1, "minimum prediction latency in ms, overrides the config when >= 0")
	numGames    = flag.Int("games", 50, "number of mock historical games to generate")
	archivePath = flag.String("archive", "", "JSON file of historical games, replaces the generated ones")
	logLevel    = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	jsonLogs    = flag.Bool("json-logs", false, "write JSON logs instead of console output")
)

const shutdownTimeout = 10 * time.Second

func main() {
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(level)
	if !*jsonLogs {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if err := run(log.Logger); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(logger zerolog.Logger) error {
	conf := chessai.DefaultConfig()
	if *configPath != "" {
		var err error
		if conf, err = chessai.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if *minLatency >= 0 {
		conf.MinLatencyMS = *minLatency
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if !conf.IsValid() {
		return errors.New("config is not valid")
	}
	p := chessai.New(conf, sampler.New(conf.SamplerConf, rand.New(rand.NewSource(seed))), logger)

	archive, err := loadArchive(seed)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           httpapi.NewRouter(logger, p, archive, fixture.Players()),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("addr", *addr).Int64("seed", seed).Dur("min_latency", conf.MinLatency()).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "listen")
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = multierror.Append(errs, errors.Wrap(err, "shutdown"))
			if err := srv.Close(); err != nil {
				errs = multierror.Append(errs, errors.Wrap(err, "close"))
			}
		}
		stats := p.Stats()
		logger.Info().Int64("served", stats.Served).Int64("rejected", stats.Rejected).Msg("predictor stats")
		return errs
	})

	return g.Wait()
}

func loadArchive(seed int64) (fixture.Archive, error) {
	if *archivePath != "" {
		return fixture.LoadArchive(*archivePath)
	}
	if *numGames < 0 {
		return nil, errors.Errorf("games must not be negative, got %d", *numGames)
	}
	return fixture.GenerateGames(rand.New(rand.NewSource(seed)), *numGames), nil
}
