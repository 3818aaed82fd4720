package game

import (
	"strings"

	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

// the FEN fields after piece placement used when only a placement is given.
const defaultFENTail = " w - - 0 1"

var (
	fromChessType = map[chess.PieceType]PieceType{
		chess.Pawn:   Pawn,
		chess.Knight: Knight,
		chess.Bishop: Bishop,
		chess.Rook:   Rook,
		chess.Queen:  Queen,
		chess.King:   King,
	}
	chessPieces = map[Piece]chess.Piece{
		{King, White}:   chess.WhiteKing,
		{Queen, White}:  chess.WhiteQueen,
		{Rook, White}:   chess.WhiteRook,
		{Bishop, White}: chess.WhiteBishop,
		{Knight, White}: chess.WhiteKnight,
		{Pawn, White}:   chess.WhitePawn,
		{King, Black}:   chess.BlackKing,
		{Queen, Black}:  chess.BlackQueen,
		{Rook, Black}:   chess.BlackRook,
		{Bishop, Black}: chess.BlackBishop,
		{Knight, Black}: chess.BlackKnight,
		{Pawn, Black}:   chess.BlackPawn,
	}
)

func fromChessColor(c chess.Color) Color {
	switch c {
	case chess.White:
		return White
	case chess.Black:
		return Black
	}
	return NoColor
}

// chessSquare converts a row/col pair to a chess.Square (A1 = 0, H8 = 63).
func chessSquare(row, col int) chess.Square {
	return chess.Square((RowNum-1-row)*ColNum + col)
}

// ChessBoard converts the board into a *chess.Board.
func (b *Board) ChessBoard() *chess.Board {
	m := make(map[chess.Square]chess.Piece)
	b.Each(func(row, col int, p Piece) {
		if cp, ok := chessPieces[p]; ok {
			m[chessSquare(row, col)] = cp
		}
	})
	return chess.NewBoard(m)
}

// FEN returns the piece placement field of the board.
func (b *Board) FEN() string {
	return b.ChessBoard().String()
}

// Draw returns a visual representation of the board.
func (b *Board) Draw() string {
	return b.ChessBoard().Draw()
}

// FromChessBoard converts a *chess.Board back into a Board.
func FromChessBoard(cb *chess.Board) Board {
	var retVal Board
	for sq, cp := range cb.SquareMap() {
		t, ok := fromChessType[cp.Type()]
		if !ok {
			continue
		}
		row := RowNum - 1 - int(sq.Rank())
		col := int(sq.File())
		retVal[row][col] = Piece{Type: t, Color: fromChessColor(cp.Color())}
	}
	return retVal
}

// FromFEN parses a FEN string and returns the board and the side to move.
// A bare piece placement is accepted and assumed to be white to move.
func FromFEN(fen string) (Board, Color, error) {
	fen = strings.TrimSpace(fen)
	if fen == "" {
		return Board{}, NoColor, errors.New("empty FEN")
	}
	if !strings.Contains(fen, " ") {
		fen += defaultFENTail
	}

	var pos chess.Position
	if err := pos.UnmarshalText([]byte(fen)); err != nil {
		return Board{}, NoColor, errors.Wrapf(err, "parse FEN %q", fen)
	}
	return FromChessBoard(pos.Board()), fromChessColor(pos.Turn()), nil
}

// StartFEN is the piece placement of InitializeBoard.
var StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
