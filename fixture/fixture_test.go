package fixture

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboard(t *testing.T) {
	board := Leaderboard(Players())
	require.Len(t, board, 4)

	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, "Magnus Carlsen", board[0].Name)
	assert.Equal(t, 72, board[0].WinRate) // 892 / 1247
	for i := 1; i < len(board); i++ {
		assert.True(t, board[i-1].Elo >= board[i].Elo)
		assert.Equal(t, i+1, board[i].Rank)
	}
}

func TestLeaderboardDoesNotReorderInput(t *testing.T) {
	ps := []PlayerStats{{Name: "low", Elo: 1200}, {Name: "high", Elo: 2400}}
	board := Leaderboard(ps)
	assert.Equal(t, "high", board[0].Name)
	assert.Equal(t, "low", ps[0].Name)
}

func TestWinRateWithoutGames(t *testing.T) {
	assert.Equal(t, 0, PlayerStats{}.WinRate())
}

func TestArenaPlay(t *testing.T) {
	a := MakeArena(rand.New(rand.NewSource(11)), DefaultPlayers)
	games := a.PlayN(200)
	require.Len(t, games, 200)
	assert.Equal(t, 200, a.GameNumber())

	wins, draws := 0, 0
	for i, g := range games {
		assert.Equal(t, "game-"+strconv.Itoa(i+1), g.ID)
		assert.NotEqual(t, g.WhitePlayer, g.BlackPlayer)
		assert.True(t, g.WhiteElo >= 2700 && g.WhiteElo < 2850)
		assert.True(t, g.BlackElo >= 2700 && g.BlackElo < 2850)
		assert.True(t, len(g.Moves) >= 20 && len(g.Moves) < 60, "%d moves", len(g.Moves))
		assert.Contains(t, Results[:], g.Result)

		d, err := time.Parse(TimestampLayout, g.Date)
		require.NoError(t, err)
		assert.Equal(t, g.Date, d.Format(TimestampLayout))
		assert.Equal(t, 2024, d.Year())
		assert.True(t, d.Day() >= 1 && d.Day() <= 28)
		assert.True(t, strings.HasSuffix(g.Date, "T00:00:00.000Z"), g.Date)

		switch g.Result {
		case Draw:
			draws++
		default:
			wins++
		}
	}

	var totalWins, totalLoss, totalDraw int
	for _, p := range DefaultPlayers {
		r := a.Record(p)
		totalWins += r.Wins
		totalLoss += r.Loss
		totalDraw += r.Draw
	}
	assert.Equal(t, wins, totalWins)
	assert.Equal(t, wins, totalLoss)
	assert.Equal(t, 2*draws, totalDraw)
	assert.Equal(t, Record{}, a.Record("nobody"))
}

func TestArenaOpenings(t *testing.T) {
	games := GenerateGames(rand.New(rand.NewSource(3)), 50)
	for _, g := range games {
		var found bool
		for _, o := range openings {
			if assert.ObjectsAreEqual(o, g.Moves[:len(o)]) {
				found = true
			}
		}
		assert.True(t, found, "game %s does not start with a known opening: %v", g.ID, g.Moves[:5])
	}
}

func TestArenaIsReproducible(t *testing.T) {
	a := GenerateGames(rand.New(rand.NewSource(8)), 20)
	b := GenerateGames(rand.New(rand.NewSource(8)), 20)
	assert.Equal(t, a, b)
}

func TestMakeArenaNeedsTwoPlayers(t *testing.T) {
	assert.Panics(t, func() { MakeArena(nil, []string{"solo"}) })
}

func TestArchiveFilter(t *testing.T) {
	a := Archive{
		{ID: "1", WhitePlayer: "Magnus Carlsen", BlackPlayer: "Ding Liren", Result: WhiteWins},
		{ID: "2", WhitePlayer: "Ding Liren", BlackPlayer: "Hikaru Nakamura", Result: Draw},
		{ID: "3", WhitePlayer: "Hikaru Nakamura", BlackPlayer: "Magnus Carlsen", Result: BlackWins},
	}

	assert.Len(t, a.Filter("", AllResults), 3)
	assert.Len(t, a.Filter("ding", AllResults), 2)
	assert.Len(t, a.Filter("MAGNUS", string(BlackWins)), 1)
	assert.Len(t, a.Filter("", string(Draw)), 1)
	assert.Empty(t, a.Filter("kasparov", AllResults))
	assert.NotNil(t, a.Filter("kasparov", AllResults))
}

func TestParseResultFilter(t *testing.T) {
	r, err := ParseResultFilter("")
	require.NoError(t, err)
	assert.Equal(t, AllResults, r)

	r, err = ParseResultFilter("draw")
	require.NoError(t, err)
	assert.Equal(t, "draw", r)

	_, err = ParseResultFilter("stalemate")
	assert.Equal(t, ErrUnknownResult, errors.Cause(err))
}

func TestArchiveSummary(t *testing.T) {
	a := Archive{
		{WhitePlayer: "B", BlackPlayer: "A", WhiteElo: 2700, BlackElo: 2800, Result: WhiteWins},
		{WhitePlayer: "C", BlackPlayer: "A", WhiteElo: 2750, BlackElo: 2751, Result: Draw},
	}
	s := a.Summary()
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 2750, s.AverageElo) // 11001 / 4 = 2750.25
	assert.Equal(t, map[Result]int{WhiteWins: 1, BlackWins: 0, Draw: 1}, s.Results)
	assert.Equal(t, []string{"A", "B", "C"}, s.Players)

	empty := Archive{}.Summary()
	assert.Equal(t, 0, empty.Total)
	assert.Equal(t, 0, empty.AverageElo)
	assert.Empty(t, empty.Players)
}

func TestArchiveRoundTrip(t *testing.T) {
	games := GenerateGames(rand.New(rand.NewSource(5)), 10)
	var buf bytes.Buffer
	require.NoError(t, games.WriteJSON(&buf))

	got, err := ReadArchive(&buf)
	require.NoError(t, err)
	assert.Equal(t, games, got)

	filename := filepath.Join(t.TempDir(), "games.json")
	require.NoError(t, os.WriteFile(filename, []byte(`[{"id": "x", "result": "resigned"}]`), 0644))
	_, err = LoadArchive(filename)
	assert.Equal(t, ErrUnknownResult, errors.Cause(err))

	_, err = LoadArchive(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
