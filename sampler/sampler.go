// Package sampler fabricates move predictions.
//
// There is no model behind it. The suggested move is drawn from a fixed pool regardless of
// the position, and confidence and king safety are uniform random draws. Only the evaluation
// and the material, center and mobility features are real functions of the board.
package sampler

import (
	"math/rand"
	"sync"
	"time"

	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/feature"
	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/game"
)

// Sampler draws predictions. It is safe for concurrent use.
type Sampler struct {
	sync.Mutex
	Config
	rand *rand.Rand
}

// New creates a sampler. A nil r uses a time seeded source, so results are not reproducible.
// Pass a seeded *rand.Rand to pin the outputs.
func New(conf Config, r *rand.Rand) *Sampler {
	if !conf.IsValid() {
		panic("sampler config is not valid. Unable to proceed")
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{
		Config: conf,
		rand:   r,
	}
}

// Infer returns a prediction for the board with turn to move.
// moveNumber is accepted for interface parity and does not influence the draw.
func (s *Sampler) Infer(b *game.Board, turn game.Color, moveNumber int) game.MovePrediction {
	fs := feature.Extract(b, turn)

	s.Lock()
	kingSafety := s.rand.Float64() * s.MaxKingSafety
	candidates := s.candidates()
	move := candidates[s.rand.Intn(len(candidates))]
	confidence := s.MinConfidence + s.rand.Float64()*(s.MaxConfidence-s.MinConfidence)
	s.Unlock()

	// truncated rather than rounded so the reported figures stay inside their half open ranges
	confidence = feature.Truncate(confidence, 1)
	kingSafety = feature.Truncate(kingSafety, 2)

	return game.MovePrediction{
		Move:       move,
		Confidence: confidence,
		Evaluation: fs.Evaluation(),
		Features: game.Features{
			MaterialBalance: float64(fs.MaterialBalance),
			CenterControl:   float64(fs.CenterControl),
			PieceMobility:   float64(fs.PieceMobility),
			KingSafety:      kingSafety,
		},
	}
}

// candidates returns a random length prefix of the pool. The caller must hold the lock.
func (s *Sampler) candidates() []string {
	n := s.MinCandidates + s.rand.Intn(s.CandidateSpread)
	return s.Pool[:n]
}
