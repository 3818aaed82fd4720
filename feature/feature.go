// Package feature computes the cheap positional features reported with a prediction.
//
// None of these are real chess evaluation. They are fixed proxies over the board contents:
// no search, no legality, no attacks. The tables below are part of the contract and must
// not be tuned.
package feature

import (
	"math"

	"github.com/johaankjis/AI-Powered-Chess-Move-Predictor/game"
)

// pieceValues are the material weights. Kings are never captured here, so they weigh nothing.
var pieceValues = map[game.PieceType]int{
	game.Pawn:   1,
	game.Knight: 3,
	game.Bishop: 3,
	game.Rook:   5,
	game.Queen:  9,
	game.King:   0,
}

// mobilityScores approximate a piece's move count on an open board.
var mobilityScores = map[game.PieceType]int{
	game.Pawn:   1,
	game.Knight: 8,
	game.Bishop: 13,
	game.Rook:   14,
	game.Queen:  27,
	game.King:   8,
}

// CenterSquares are d5, e5, d4 and e4 in row/col form.
var CenterSquares = [4]game.Square{{Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 4, Col: 3}, {Row: 4, Col: 4}}

// Evaluation weights.
const (
	CenterWeight   = 0.5
	MobilityWeight = 0.1
)

// PieceValue returns the material weight of t.
func PieceValue(t game.PieceType) int { return pieceValues[t] }

// MobilityScore returns the static mobility of t.
func MobilityScore(t game.PieceType) int { return mobilityScores[t] }

// MaterialBalance is the white material minus the black material. Positive favours white.
func MaterialBalance(b *game.Board) int {
	var balance int
	b.Each(func(_, _ int, p game.Piece) {
		switch p.Color {
		case game.White:
			balance += pieceValues[p.Type]
		case game.Black:
			balance -= pieceValues[p.Type]
		}
	})
	return balance
}

// CenterControl counts +1 for every white piece and -1 for every black piece on the four center squares.
// No other square contributes.
func CenterControl(b *game.Board) int {
	var score int
	for _, sq := range CenterSquares {
		switch b.At(sq.Row, sq.Col).Color {
		case game.White:
			score++
		case game.Black:
			score--
		}
	}
	return score
}

// PieceMobility sums the static mobility scores of every piece of the given color.
func PieceMobility(b *game.Board, c game.Color) int {
	var mobility int
	b.Each(func(_, _ int, p game.Piece) {
		if p.Color == c {
			mobility += mobilityScores[p.Type]
		}
	})
	return mobility
}

// Set is the deterministic part of a position's features.
type Set struct {
	MaterialBalance int
	CenterControl   int
	PieceMobility   int
}

// Extract computes all three features, mobility for the side to move.
func Extract(b *game.Board, turn game.Color) Set {
	return Set{
		MaterialBalance: MaterialBalance(b),
		CenterControl:   CenterControl(b),
		PieceMobility:   PieceMobility(b, turn),
	}
}

// Evaluation combines the features into a single score, rounded to two decimals.
func (s Set) Evaluation() float64 {
	e := float64(s.MaterialBalance) + CenterWeight*float64(s.CenterControl) + MobilityWeight*float64(s.PieceMobility)
	return Round(e, 2)
}

// Evaluate is Extract followed by Evaluation.
func Evaluate(b *game.Board, turn game.Color) float64 {
	return Extract(b, turn).Evaluation()
}

// Round rounds v to the given number of decimal places, halves away from zero.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// Truncate drops everything after the given number of decimal places, towards negative infinity.
func Truncate(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Floor(v*p) / p
}
