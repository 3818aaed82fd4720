package fixture

import (
	"encoding/json"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"gonum.org/v1/gonum/stat"
)

// AllResults matches every result in Filter.
const AllResults = "all"

// ErrUnknownResult is returned for a result filter that is not all, white, black or draw.
var ErrUnknownResult = errors.New("unknown result filter")

// Archive is a list of historical games.
type Archive []HistoricalGame

// ParseResultFilter checks a result filter. The empty string means all.
func ParseResultFilter(s string) (string, error) {
	switch s {
	case "", AllResults:
		return AllResults, nil
	case string(WhiteWins), string(BlackWins), string(Draw):
		return s, nil
	}
	return "", errors.Wrapf(ErrUnknownResult, "%q", s)
}

// Filter returns the games where either player's name contains query (case insensitive)
// and the result matches. The result filter must already be parsed.
func (a Archive) Filter(query, result string) Archive {
	query = strings.ToLower(query)
	retVal := Archive{}
	for _, g := range a {
		matchesSearch := strings.Contains(strings.ToLower(g.WhitePlayer), query) ||
			strings.Contains(strings.ToLower(g.BlackPlayer), query)
		matchesResult := result == AllResults || string(g.Result) == result
		if matchesSearch && matchesResult {
			retVal = append(retVal, g)
		}
	}
	return retVal
}

// Summary aggregates an archive for the history page.
type Summary struct {
	Total      int            `json:"total"`
	AverageElo int            `json:"averageElo"`
	Results    map[Result]int `json:"results"`
	Players    []string       `json:"players"`
}

// Summary computes the totals. The average Elo is over both sides of every game.
func (a Archive) Summary() Summary {
	s := Summary{
		Total:   len(a),
		Results: make(map[Result]int, len(Results)),
	}
	for _, r := range Results {
		s.Results[r] = 0
	}
	if len(a) == 0 {
		s.Players = []string{}
		return s
	}

	elos := make([]float64, 0, 2*len(a))
	seen := make(map[string]struct{})
	for _, g := range a {
		elos = append(elos, float64(g.WhiteElo), float64(g.BlackElo))
		s.Results[g.Result]++
		seen[g.WhitePlayer] = struct{}{}
		seen[g.BlackPlayer] = struct{}{}
	}
	s.AverageElo = int(math.Round(stat.Mean(elos, nil)))
	s.Players = maps.Keys(seen)
	sort.Strings(s.Players)
	return s
}

// WriteJSON writes the archive as an indented JSON array.
func (a Archive) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(a), "encode archive")
}

// ReadArchive decodes an archive written by WriteJSON.
func ReadArchive(r io.Reader) (Archive, error) {
	var retVal Archive
	if err := json.NewDecoder(r).Decode(&retVal); err != nil {
		return nil, errors.Wrap(err, "decode archive")
	}
	for i, g := range retVal {
		if !g.Result.IsValid() {
			return nil, errors.Wrapf(ErrUnknownResult, "game %d (%s): %q", i, g.ID, g.Result)
		}
	}
	return retVal, nil
}

// LoadArchive reads an archive file.
func LoadArchive(filename string) (Archive, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	return ReadArchive(f)
}
