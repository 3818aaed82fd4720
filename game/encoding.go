package game

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// MarshalText encodes the color by name. NoColor encodes as an empty string.
func (c Color) MarshalText() ([]byte, error) {
	if c == NoColor {
		return []byte{}, nil
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes "white" or "black". An empty string decodes to NoColor.
func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white":
		*c = White
	case "black":
		*c = Black
	case "":
		*c = NoColor
	default:
		return errors.Wrapf(ErrUnknownPiece, "color %q", text)
	}
	return nil
}

func (t PieceType) MarshalText() ([]byte, error) {
	if t == NoPieceType {
		return []byte{}, nil
	}
	return []byte(t.String()), nil
}

func (t *PieceType) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		*t = NoPieceType
		return nil
	}
	for _, pt := range PieceTypes {
		if pt.String() == s {
			*t = pt
			return nil
		}
	}
	return errors.Wrapf(ErrUnknownPiece, "type %q", text)
}

// MarshalJSON encodes the board as 8 rows of 8 cells, each cell either null or {"type", "color"}.
func (b Board) MarshalJSON() ([]byte, error) {
	rows := make([][]*Piece, RowNum)
	for row := range b {
		rows[row] = make([]*Piece, ColNum)
		for col := range b[row] {
			if p := b[row][col]; !p.IsEmpty() {
				rows[row][col] = &p
			}
		}
	}
	return json.Marshal(rows)
}

// UnmarshalJSON decodes the format written by MarshalJSON.
// Anything but exactly 8 rows of 8 cells is rejected with ErrInvalidBoardShape.
func (b *Board) UnmarshalJSON(data []byte) error {
	var rows [][]*Piece
	if err := json.Unmarshal(data, &rows); err != nil {
		if errors.Cause(err) == ErrUnknownPiece {
			return err
		}
		return errors.Wrap(ErrInvalidBoardShape, err.Error())
	}
	if len(rows) != RowNum {
		return errors.Wrapf(ErrInvalidBoardShape, "got %d rows", len(rows))
	}

	var retVal Board
	for row, cells := range rows {
		if len(cells) != ColNum {
			return errors.Wrapf(ErrInvalidBoardShape, "row %d has %d cells", row, len(cells))
		}
		for col, p := range cells {
			if p == nil {
				continue
			}
			if !p.valid() {
				return errors.Wrapf(ErrUnknownPiece, "square %s: %+v", ToAlgebraicNotation(row, col), *p)
			}
			retVal[row][col] = *p
		}
	}
	*b = retVal
	return nil
}
