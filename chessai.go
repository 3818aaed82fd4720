package chessai

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/game"
	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/model"
	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/sampler"
)

// Predictor is the top level structure and the entry point of the API.
// It validates game states, hands them to the Inferer and enforces the latency floor.
type Predictor struct {
	conf    Config
	inferer Inferer
	log     zerolog.Logger

	served   int64 // atomic
	rejected int64 // atomic
}

// New creates a Predictor. A nil inf uses a sampler built from conf with a time seeded source.
func New(conf Config, inf Inferer, log zerolog.Logger) *Predictor {
	if !conf.IsValid() {
		panic("predictor config is not valid. Unable to proceed")
	}
	if inf == nil {
		inf = sampler.New(conf.SamplerConf, nil)
	}
	return &Predictor{
		conf:    conf,
		inferer: inf,
		log:     log.With().Str("predictor", conf.Name).Logger(),
	}
}

// Predict returns a prediction for the state. The state is only read.
// Invalid states are rejected with an error whose cause is the *multierror.Error listing every problem.
// The call blocks until the configured minimum latency has passed or ctx is done.
func (p *Predictor) Predict(ctx context.Context, state *game.GameState) (Result, error) {
	start := time.Now()
	if err := state.Validate(); err != nil {
		atomic.AddInt64(&p.rejected, 1)
		return Result{}, errors.Wrap(err, "validate game state")
	}

	pred := p.inferer.Infer(&state.Board, state.CurrentTurn, state.MoveNumber)

	if wait := p.conf.MinLatency() - time.Since(start); wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			atomic.AddInt64(&p.rejected, 1)
			return Result{}, errors.WithStack(ctx.Err())
		}
	}

	atomic.AddInt64(&p.served, 1)
	latency := time.Since(start)
	p.log.Debug().
		Int("move_number", state.MoveNumber).
		Str("turn", state.CurrentTurn.String()).
		Str("move", pred.Move).
		Float64("evaluation", pred.Evaluation).
		Dur("latency", latency).
		Msg("prediction")

	return Result{
		Prediction: pred,
		Latency:    latency,
		Timestamp:  time.Now().UTC(),
	}, nil
}

// Stats returns the request counters.
func (p *Predictor) Stats() Stats {
	return Stats{
		Served:   atomic.LoadInt64(&p.served),
		Rejected: atomic.LoadInt64(&p.rejected),
	}
}

// Model returns the model card.
func (p *Predictor) Model() model.Info { return p.conf.Model }

// Name of the predictor
func (p *Predictor) Name() string { return p.conf.Name }
