// This package generates mock historical games and writes them to a JSON file the server can load with -archive.

package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/fixture"
)

var (
	numGameFlag = flag.Int("num_game", 50, "number of games to generate")
	gamesPath   = flag.String("path", "games.json", "file to write the games to")
	seedFlag    = flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
)

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if *numGameFlag < 0 {
		log.Fatal().Int("num_game", *numGameFlag).Msg("num_game must not be negative")
	}
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	arena := fixture.MakeArena(rand.New(rand.NewSource(seed)), fixture.DefaultPlayers)
	games := arena.PlayN(*numGameFlag)

	// truncate: the file always holds exactly one archive
	f, err := os.OpenFile(*gamesPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatal().Err(err).Msg("open output")
	}
	if err := games.WriteJSON(f); err != nil {
		f.Close()
		log.Fatal().Err(err).Msg("write games")
	}
	if err := f.Close(); err != nil {
		log.Fatal().Err(err).Msg("close output")
	}

	for _, p := range fixture.DefaultPlayers {
		r := arena.Record(p)
		log.Info().Str("player", p).Int("wins", r.Wins).Int("losses", r.Loss).Int("draws", r.Draw).Msg("record")
	}
	log.Info().Int("games", len(games)).Int64("seed", seed).Str("path", *gamesPath).Msg("games written")
}
