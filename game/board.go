package game

import "strings"

// Board is the 8x8 grid of optional pieces.
// Row 0 is black's back rank (rank 8) and row 7 is white's back rank (rank 1).
// Column 0 is the a-file. Any contents are allowed, including illegal ones.
type Board [RowNum][ColNum]Piece

var backRank = [ColNum]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

var (
	files = [ColNum]string{"a", "b", "c", "d", "e", "f", "g", "h"}
	ranks = [RowNum]string{"8", "7", "6", "5", "4", "3", "2", "1"}
)

// InitializeBoard returns the standard starting position.
func InitializeBoard() Board {
	var b Board
	for col := 0; col < ColNum; col++ {
		b[1][col] = Piece{Type: Pawn, Color: Black}
		b[6][col] = Piece{Type: Pawn, Color: White}
	}
	for col, t := range backRank {
		b[0][col] = Piece{Type: t, Color: Black}
		b[7][col] = Piece{Type: t, Color: White}
	}
	return b
}

// ToAlgebraicNotation maps a row/col pair to its square name, e.g. (0, 0) is "a8".
// Coordinates must be in range; use InBounds when unsure.
func ToAlgebraicNotation(row, col int) string {
	return files[col] + ranks[row]
}

// InBounds returns true if row and col both lie in 0..7.
func InBounds(row, col int) bool {
	return row >= 0 && row < RowNum && col >= 0 && col < ColNum
}

// At returns the piece on the square. The zero Piece means empty.
func (b *Board) At(row, col int) Piece { return b[row][col] }

// Set places p on the square. Setting the zero Piece empties it.
func (b *Board) Set(row, col int, p Piece) { b[row][col] = p }

// Count returns the number of pieces of the given color.
func (b *Board) Count(c Color) (n int) {
	b.Each(func(_, _ int, p Piece) {
		if p.Color == c {
			n++
		}
	})
	return
}

// Each calls fn for every occupied square, rank 8 first.
func (b *Board) Each(fn func(row, col int, p Piece)) {
	for row := 0; row < RowNum; row++ {
		for col := 0; col < ColNum; col++ {
			if p := b[row][col]; !p.IsEmpty() {
				fn(row, col, p)
			}
		}
	}
}

// Mirror returns a copy of the board with every piece's color swapped.
func (b Board) Mirror() Board {
	for row := range b {
		for col := range b[row] {
			if !b[row][col].IsEmpty() {
				b[row][col].Color = b[row][col].Color.Other()
			}
		}
	}
	return b
}

// String returns a compact text diagram, white in upper case.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < RowNum; row++ {
		sb.WriteString(ranks[row])
		sb.WriteByte(' ')
		for col := 0; col < ColNum; col++ {
			sb.WriteByte(b[row][col].Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh")
	return sb.String()
}

// Letter returns the FEN letter of the piece, '.' when empty.
func (p Piece) Letter() byte {
	var l byte
	switch p.Type {
	case Pawn:
		l = 'p'
	case Knight:
		l = 'n'
	case Bishop:
		l = 'b'
	case Rook:
		l = 'r'
	case Queen:
		l = 'q'
	case King:
		l = 'k'
	default:
		return '.'
	}
	if p.Color == White {
		l -= 'a' - 'A'
	}
	return l
}
