// This package scores FEN positions with the heuristic features, one position per input line.

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/feature"
	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/game"
)

var (
	inPath  = flag.String("in", "", "file of FEN lines, stdin when empty")
	workers = flag.Int("workers", runtime.NumCPU(), "number of positions scored at once")
	draw    = flag.Bool("draw", false, "print the board under each score")
)

type scored struct {
	line  int
	fen   string
	turn  game.Color
	board game.Board
	set   feature.Set
	eval  float64
}

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	var in io.Reader = os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			log.Fatal().Err(err).Msg("open input")
		}
		defer f.Close()
		in = f
	}

	lines, err := readLines(in)
	if err != nil {
		log.Fatal().Err(err).Msg("read input")
	}

	results, err := score(context.Background(), lines, *workers)
	printScores(os.Stdout, results, *draw)
	if err != nil {
		log.Error().Err(err).Msg("some positions could not be scored")
		os.Exit(1)
	}
}

// readLines returns the non blank lines. Lines starting with # are comments.
func readLines(r io.Reader) ([]string, error) {
	var retVal []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		l := strings.TrimSpace(s.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		retVal = append(retVal, l)
	}
	return retVal, errors.WithStack(s.Err())
}

// score parses and scores every line with at most workers goroutines.
// Results are in input order. Lines that fail to parse are left out and reported in the returned error.
func score(ctx context.Context, lines []string, workers int) ([]scored, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]*scored, len(lines))
	var (
		mu   sync.Mutex
		errs error
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, l := range lines {
		i, l := i, l
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, turn, err := game.FromFEN(l)
			if err != nil {
				mu.Lock()
				errs = multierror.Append(errs, errors.Wrapf(err, "line %d", i+1))
				mu.Unlock()
				return nil
			}
			set := feature.Extract(&b, turn)
			results[i] = &scored{
				line:  i + 1,
				fen:   l,
				turn:  turn,
				board: b,
				set:   set,
				eval:  set.Evaluation(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	retVal := make([]scored, 0, len(results))
	for _, r := range results {
		if r != nil {
			retVal = append(retVal, *r)
		}
	}
	return retVal, errs
}

func printScores(w io.Writer, results []scored, withBoard bool) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tTURN\tMATERIAL\tCENTER\tMOBILITY\tEVAL")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%.2f\n", r.line, r.turn, r.set.MaterialBalance, r.set.CenterControl, r.set.PieceMobility, r.eval)
		if withBoard {
			tw.Flush()
			fmt.Fprintln(w, r.board.Draw())
		}
	}
	tw.Flush()
}
