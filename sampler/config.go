package sampler

// DefaultPool is the fixed list of candidate moves. Only a prefix of it is ever offered.
var DefaultPool = []string{
	"e4", "e5", "d4", "d5",
	"Nf3", "Nc3", "Bc4", "Bb5",
	"O-O", "Qe2", "Bg5", "Nbd2",
	"c3", "a3", "h3", "Re1",
}

// Config configures the sampler.
type Config struct {
	Pool []string `json:"pool"` // candidate moves, in preference order

	// A prefix of MinCandidates + [0, CandidateSpread) moves is drawn from Pool.
	MinCandidates   int `json:"min_candidates"`
	CandidateSpread int `json:"candidate_spread"`

	MinConfidence float64 `json:"min_confidence"`  // inclusive
	MaxConfidence float64 `json:"max_confidence"`  // exclusive
	MaxKingSafety float64 `json:"max_king_safety"` // exclusive
}

// DefaultConfig reproduces the behaviour the UI expects: 5-9 candidates, confidence in [70, 95), king safety in [0, 10).
func DefaultConfig() Config {
	return Config{
		Pool:            DefaultPool,
		MinCandidates:   5,
		CandidateSpread: 5,
		MinConfidence:   70,
		MaxConfidence:   95,
		MaxKingSafety:   10,
	}
}

func (c Config) IsValid() bool {
	return c.MinCandidates >= 1 &&
		c.CandidateSpread >= 1 &&
		c.MinCandidates+c.CandidateSpread-1 <= len(c.Pool) &&
		c.MinConfidence >= 0 &&
		c.MaxConfidence <= 100 &&
		c.MinConfidence < c.MaxConfidence &&
		c.MaxKingSafety > 0
}
