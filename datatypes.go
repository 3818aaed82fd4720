package chessai

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/game"
	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/model"
	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/sampler"
)

// Config for the Predictor.
// It holds the sampler settings, the model card and the response latency floor.
type Config struct {
	Name        string         `json:"name"`
	SamplerConf sampler.Config `json:"sampler_conf"`
	Model       model.Info     `json:"model"`
	// responses are held back until at least this many milliseconds have passed
	MinLatencyMS int `json:"min_latency_ms"`
}

func DefaultConfig() Config {
	return Config{
		Name:         "ChessAI",
		SamplerConf:  sampler.DefaultConfig(),
		Model:        model.DefaultInfo(),
		MinLatencyMS: 100,
	}
}

func (c Config) IsValid() bool {
	return c.SamplerConf.IsValid() && c.Model.IsValid() && c.MinLatencyMS >= 0
}

// MinLatency returns the latency floor as a duration.
func (c Config) MinLatency() time.Duration {
	return time.Duration(c.MinLatencyMS) * time.Millisecond
}

// LoadConfig reads a JSON config file. Fields missing from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	conf := DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return conf, errors.WithStack(err)
	}
	if err = json.Unmarshal(data, &conf); err != nil {
		return conf, errors.Wrapf(err, "decode config %s", filename)
	}
	if !conf.IsValid() {
		return conf, errors.Errorf("config %s is not valid", filename)
	}
	return conf, nil
}

// Inferer is anything that can produce a prediction for a position.
type Inferer interface {
	Infer(b *game.Board, turn game.Color, moveNumber int) game.MovePrediction
}

// Result is a prediction together with its timing.
type Result struct {
	Prediction game.MovePrediction
	Latency    time.Duration
	Timestamp  time.Time
}

// Stats counts the requests a Predictor has handled.
type Stats struct {
	Served   int64 `json:"served"`
	Rejected int64 `json:"rejected"`
}
