package game

import (
	"encoding/json"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeBoard(t *testing.T) {
	b := InitializeBoard()

	assert.Equal(t, 16, b.Count(White))
	assert.Equal(t, 16, b.Count(Black))

	order := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < ColNum; col++ {
		assert.Equal(t, Piece{Pawn, Black}, b.At(1, col), "row 1 col %d", col)
		assert.Equal(t, Piece{Pawn, White}, b.At(6, col), "row 6 col %d", col)
		assert.Equal(t, Piece{order[col], Black}, b.At(0, col))
		assert.Equal(t, Piece{order[col], White}, b.At(7, col))
	}
	for row := 2; row <= 5; row++ {
		for col := 0; col < ColNum; col++ {
			assert.True(t, b.At(row, col).IsEmpty())
		}
	}

	// each call hands out a fresh board
	b.Set(0, 0, Piece{})
	fresh := InitializeBoard()
	assert.Equal(t, Piece{Rook, Black}, fresh.At(0, 0))
}

func TestToAlgebraicNotation(t *testing.T) {
	cases := []struct {
		row, col int
		want     string
	}{
		{0, 0, "a8"},
		{7, 7, "h1"},
		{7, 0, "a1"},
		{0, 7, "h8"},
		{6, 4, "e2"},
		{3, 3, "d5"},
		{4, 4, "e4"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ToAlgebraicNotation(c.row, c.col))
	}
}

func TestInBounds(t *testing.T) {
	assert.True(t, InBounds(0, 0))
	assert.True(t, InBounds(7, 7))
	assert.False(t, InBounds(-1, 0))
	assert.False(t, InBounds(0, 8))
}

func TestMirror(t *testing.T) {
	var b Board
	b.Set(4, 4, Piece{Queen, White})
	b.Set(0, 1, Piece{Knight, Black})

	m := b.Mirror()
	assert.Equal(t, Piece{Queen, Black}, m.At(4, 4))
	assert.Equal(t, Piece{Knight, White}, m.At(0, 1))
	assert.Equal(t, Piece{Queen, White}, b.At(4, 4), "receiver must not change")
}

func TestBoardString(t *testing.T) {
	b := InitializeBoard()
	want := "8 rnbqkbnr\n" +
		"7 pppppppp\n" +
		"6 ........\n" +
		"5 ........\n" +
		"4 ........\n" +
		"3 ........\n" +
		"2 PPPPPPPP\n" +
		"1 RNBQKBNR\n" +
		"  abcdefgh"
	assert.Equal(t, want, b.String())
}

func TestBoardJSON(t *testing.T) {
	b := InitializeBoard()
	data, err := json.Marshal(b)
	require.NoError(t, err)

	var rows [][]map[string]string
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 8)
	assert.Equal(t, map[string]string{"type": "rook", "color": "black"}, rows[0][0])
	assert.Nil(t, rows[3][3])
	assert.Equal(t, map[string]string{"type": "king", "color": "white"}, rows[7][4])

	var back Board
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, b, back)
}

func TestBoardJSONRejectsBadShape(t *testing.T) {
	cases := map[string]string{
		"seven rows": `[[],[],[],[],[],[],[]]`,
		"short row":  `[[null,null,null,null,null,null,null,null],[null],[],[],[],[],[],[]]`,
		"not a grid": `{"a":1}`,
		"null":       `null`,
	}
	for name, data := range cases {
		var b Board
		err := json.Unmarshal([]byte(data), &b)
		require.Error(t, err, name)
		assert.Equal(t, ErrInvalidBoardShape, errors.Cause(err), name)
	}
}

func TestBoardJSONRejectsUnknownPiece(t *testing.T) {
	row := `[null,null,null,null,null,null,null,null]`
	bad := `[{"type":"dragon","color":"white"},null,null,null,null,null,null,null]`
	data := "[" + bad + "," + row + "," + row + "," + row + "," + row + "," + row + "," + row + "," + row + "]"

	var b Board
	err := json.Unmarshal([]byte(data), &b)
	require.Error(t, err)
	assert.Equal(t, ErrUnknownPiece, errors.Cause(err))

	missingColor := `[{"type":"pawn"},null,null,null,null,null,null,null]`
	data = "[" + missingColor + "," + row + "," + row + "," + row + "," + row + "," + row + "," + row + "," + row + "]"
	err = json.Unmarshal([]byte(data), &b)
	require.Error(t, err)
	assert.Equal(t, ErrUnknownPiece, errors.Cause(err))
}

func TestGameStateJSON(t *testing.T) {
	s := NewGameState(1500, 1500)
	s.MoveHistory = append(s.MoveHistory, Move{
		From:     Square{6, 4},
		To:       Square{4, 4},
		Piece:    Piece{Pawn, White},
		Notation: "e4",
	})
	data, err := json.Marshal(s)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	for _, k := range []string{"board", "currentTurn", "moveHistory", "whiteElo", "blackElo", "moveNumber"} {
		assert.Contains(t, fields, k)
	}
	assert.JSONEq(t, `"white"`, string(fields["currentTurn"]))

	var back GameState
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)
}

func TestGameStateValidate(t *testing.T) {
	s := NewGameState(1500, 1500)
	assert.NoError(t, s.Validate())

	s.CurrentTurn = NoColor
	s.MoveNumber = 0
	s.MoveHistory = []Move{{From: Square{9, 0}, To: Square{0, 0}, Notation: "??"}}
	err := s.Validate()
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok, "expected a multierror, got %T", err)
	assert.Len(t, merr.Errors, 3)
	for _, e := range merr.Errors {
		assert.Equal(t, ErrInvalidState, errors.Cause(e))
	}
}

func TestGameStateJSONRequiresBoard(t *testing.T) {
	for _, body := range []string{
		`{"currentTurn": "white", "moveNumber": 1}`,
		`{"board": null, "currentTurn": "white", "moveNumber": 1}`,
		`{"board": [], "currentTurn": "white", "moveNumber": 1}`,
	} {
		var s GameState
		err := json.Unmarshal([]byte(body), &s)
		require.Error(t, err, body)
		assert.Equal(t, ErrInvalidBoardShape, errors.Cause(err), body)
	}

	board, err := json.Marshal(InitializeBoard())
	require.NoError(t, err)
	var s GameState
	require.NoError(t, json.Unmarshal([]byte(`{"board": `+string(board)+`, "currentTurn": "black", "moveNumber": 3}`), &s))
	assert.Equal(t, InitializeBoard(), s.Board)
	assert.Equal(t, Black, s.CurrentTurn)
	assert.Equal(t, 3, s.MoveNumber)
	assert.NoError(t, s.Validate())
}

func TestColorJSON(t *testing.T) {
	var c Color
	require.NoError(t, json.Unmarshal([]byte(`"black"`), &c))
	assert.Equal(t, Black, c)
	assert.Equal(t, White, c.Other())

	err := json.Unmarshal([]byte(`"green"`), &c)
	require.Error(t, err)
	assert.Equal(t, ErrUnknownPiece, errors.Cause(err))
}
