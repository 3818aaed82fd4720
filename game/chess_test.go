package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFENOfInitialBoard(t *testing.T) {
	b := InitializeBoard()
	assert.Equal(t, StartFEN, b.FEN())
}

func TestFromFEN(t *testing.T) {
	b, turn, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, White, turn)
	assert.Equal(t, InitializeBoard(), b)

	// placement only, assumed white to move
	b, turn, err = FromFEN("8/8/8/8/4Q3/8/8/8")
	require.NoError(t, err)
	assert.Equal(t, White, turn)
	assert.Equal(t, Piece{Queen, White}, b.At(4, 4))
	assert.Equal(t, 1, b.Count(White))
	assert.Equal(t, 0, b.Count(Black))

	b, turn, err = FromFEN("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2")
	require.NoError(t, err)
	assert.Equal(t, Black, turn)
	assert.Equal(t, Piece{Pawn, Black}, b.At(3, 4))
	assert.Equal(t, Piece{Pawn, White}, b.At(4, 4))
}

func TestFromFENErrors(t *testing.T) {
	_, _, err := FromFEN("")
	assert.Error(t, err)

	_, _, err = FromFEN("not/a/fen w - - 0 1")
	assert.Error(t, err)
}

func TestFENRoundTrip(t *testing.T) {
	var b Board
	b.Set(0, 4, Piece{King, Black})
	b.Set(7, 4, Piece{King, White})
	b.Set(3, 3, Piece{Knight, White})
	b.Set(2, 6, Piece{Rook, Black})

	back, _, err := FromFEN(b.FEN())
	require.NoError(t, err)
	assert.Equal(t, b, back)
}
