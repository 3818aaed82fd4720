package fixture

import (
	"fmt"
	"math/rand"
	"time"
)

// Result of a historical game, named after the winning side.
type Result string

const (
	WhiteWins Result = "white"
	BlackWins Result = "black"
	Draw      Result = "draw"
)

// Results lists every result in display order.
var Results = [...]Result{WhiteWins, BlackWins, Draw}

// IsValid reports whether r is one of Results.
func (r Result) IsValid() bool {
	for _, v := range Results {
		if r == v {
			return true
		}
	}
	return false
}

// HistoricalGame is a finished game in the archive.
type HistoricalGame struct {
	ID          string   `json:"id"`
	WhitePlayer string   `json:"whitePlayer"`
	BlackPlayer string   `json:"blackPlayer"`
	WhiteElo    int      `json:"whiteElo"`
	BlackElo    int      `json:"blackElo"`
	Moves       []string `json:"moves"`
	Result      Result   `json:"result"`
	Date        string   `json:"date"`
}

// DefaultPlayers are the players the arena pairs up.
var DefaultPlayers = []string{
	"Magnus Carlsen",
	"Hikaru Nakamura",
	"Fabiano Caruana",
	"Ding Liren",
	"Ian Nepomniachtchi",
	"Alireza Firouzja",
}

var (
	openings = [][]string{
		{"e4", "e5", "Nf3", "Nc6", "Bb5"},
		{"d4", "d5", "c4", "e6", "Nc3"},
		{"e4", "c5", "Nf3", "d6", "d4"},
		{"Nf3", "Nf6", "c4", "g6", "Nc3"},
	}
	middlegameMoves = []string{"Nf3", "Nc3", "Bc4", "Bb5", "O-O", "Qe2", "Bg5", "Re1", "Rad1", "Rfe1"}
)

const (
	baseElo     = 2700
	eloSpread   = 150
	minMoves    = 20
	moveSpread  = 40
	archiveYear = 2024
)

// TimestampLayout is ISO 8601 in UTC with milliseconds, e.g. 2024-03-07T00:00:00.000Z.
// Game dates and prediction timestamps both use it.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Record is a player's tally in the arena.
type Record struct {
	Wins int `json:"wins"`
	Loss int `json:"losses"`
	Draw int `json:"draws"`
}

// Arena pairs players up and makes up games between them.
// It is not safe for concurrent use.
type Arena struct {
	r       *rand.Rand
	players []string
	records map[string]*Record

	gameNumber int // games played so far
}

// MakeArena makes an arena for the given players. At least two players are required.
// A nil r uses a time seeded source.
func MakeArena(r *rand.Rand, players []string) *Arena {
	if len(players) < 2 {
		panic("an arena needs at least two players")
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	records := make(map[string]*Record, len(players))
	for _, p := range players {
		records[p] = new(Record)
	}
	return &Arena{
		r:       r,
		players: players,
		records: records,
	}
}

// Play makes up one game and records who won.
func (a *Arena) Play() HistoricalGame {
	white := a.players[a.r.Intn(len(a.players))]
	black := a.players[a.r.Intn(len(a.players))]
	for black == white {
		black = a.players[a.r.Intn(len(a.players))]
	}

	a.gameNumber++
	g := HistoricalGame{
		ID:          fmt.Sprintf("game-%d", a.gameNumber),
		WhitePlayer: white,
		BlackPlayer: black,
		WhiteElo:    baseElo + a.r.Intn(eloSpread),
		BlackElo:    baseElo + a.r.Intn(eloSpread),
		Moves:       a.moveSequence(),
		Result:      Results[a.r.Intn(len(Results))],
		Date:        a.date(),
	}

	switch g.Result {
	case Draw:
		a.records[white].Draw++
		a.records[black].Draw++
	case WhiteWins:
		a.records[white].Wins++
		a.records[black].Loss++
	case BlackWins:
		a.records[black].Wins++
		a.records[white].Loss++
	}
	return g
}

// PlayN plays n games.
func (a *Arena) PlayN(n int) Archive {
	retVal := make(Archive, 0, n)
	for i := 0; i < n; i++ {
		retVal = append(retVal, a.Play())
	}
	return retVal
}

// Record returns the tally of a player. Unknown players have an empty record.
func (a *Arena) Record(player string) Record {
	if r, ok := a.records[player]; ok {
		return *r
	}
	return Record{}
}

// GameNumber returns the number of games played.
func (a *Arena) GameNumber() int { return a.gameNumber }

// moveSequence is one of the openings padded with common moves to 20-59 moves.
func (a *Arena) moveSequence() []string {
	opening := openings[a.r.Intn(len(openings))]
	count := minMoves + a.r.Intn(moveSpread)

	moves := make([]string, len(opening), count)
	copy(moves, opening)
	for i := len(opening); i < count; i++ {
		moves = append(moves, middlegameMoves[a.r.Intn(len(middlegameMoves))])
	}
	return moves
}

func (a *Arena) date() string {
	month := time.Month(a.r.Intn(12) + 1)
	day := a.r.Intn(28) + 1
	return time.Date(archiveYear, month, day, 0, 0, 0, 0, time.UTC).Format(TimestampLayout)
}

// GenerateGames plays count games between the default players.
func GenerateGames(r *rand.Rand, count int) Archive {
	return MakeArena(r, DefaultPlayers).PlayN(count)
}
