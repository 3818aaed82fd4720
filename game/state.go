package game

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

const (
	RowNum = 8
	ColNum = 8
)

var (
	// ErrInvalidBoardShape is returned when a board is not an 8x8 grid.
	ErrInvalidBoardShape = errors.New("invalid board shape")
	// ErrUnknownPiece is returned when a piece type or color cannot be decoded.
	ErrUnknownPiece = errors.New("unknown piece")
	// ErrInvalidState is the cause of every GameState validation failure.
	ErrInvalidState = errors.New("invalid game state")
)

// Color is the side a piece belongs to.
type Color int8

const (
	NoColor Color = iota
	White
	Black
)

// Other returns the opposing color. NoColor stays NoColor.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

// PieceType is the kind of a piece.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceTypes lists every real piece type in back-rank value order.
var PieceTypes = [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// Piece is an immutable chess piece. The zero Piece marks an empty square.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

// NewPiece is a convenience constructor.
func NewPiece(t PieceType, c Color) Piece { return Piece{Type: t, Color: c} }

// IsEmpty returns true if p does not describe a piece.
func (p Piece) IsEmpty() bool { return p.Type == NoPieceType }

func (p Piece) valid() bool { return p.Type != NoPieceType && p.Color != NoColor }

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Color.String() + " " + p.Type.String()
}

// Square is a board coordinate using the row/col convention of Board.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds returns true if the square lies on the board.
func (s Square) InBounds() bool { return InBounds(s.Row, s.Col) }

// Move is a single move as recorded by the client.
type Move struct {
	From     Square `json:"from"`
	To       Square `json:"to"`
	Piece    Piece  `json:"piece"`
	Captured *Piece `json:"captured,omitempty"`
	Notation string `json:"notation"`
}

// GameState is the snapshot a client sends for a prediction.
// The predictor never keeps a reference to it.
type GameState struct {
	Board       Board  `json:"board"`
	CurrentTurn Color  `json:"currentTurn"`
	MoveHistory []Move `json:"moveHistory"`
	WhiteElo    int    `json:"whiteElo"`
	BlackElo    int    `json:"blackElo"`
	MoveNumber  int    `json:"moveNumber"`
}

// NewGameState returns the state of a fresh game, white to move.
func NewGameState(whiteElo, blackElo int) GameState {
	return GameState{
		Board:       InitializeBoard(),
		CurrentTurn: White,
		MoveHistory: []Move{},
		WhiteElo:    whiteElo,
		BlackElo:    blackElo,
		MoveNumber:  1,
	}
}

// UnmarshalJSON decodes a state. A missing or null board is rejected with ErrInvalidBoardShape,
// the same as a board of the wrong size.
func (s *GameState) UnmarshalJSON(data []byte) error {
	type plain GameState
	var raw struct {
		plain
		Board *Board `json:"board"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Board == nil {
		return errors.Wrap(ErrInvalidBoardShape, "board is missing")
	}
	*s = GameState(raw.plain)
	s.Board = *raw.Board
	return nil
}

// Validate reports every problem found in the state at once.
// The board shape is checked while decoding, so only the remaining fields are inspected here.
func (s *GameState) Validate() error {
	var errs error
	if s.CurrentTurn != White && s.CurrentTurn != Black {
		errs = multierror.Append(errs, errors.Wrap(ErrInvalidState, "current turn must be white or black"))
	}
	if s.MoveNumber < 1 {
		errs = multierror.Append(errs, errors.Wrapf(ErrInvalidState, "move number %d is below 1", s.MoveNumber))
	}
	if s.WhiteElo < 0 || s.BlackElo < 0 {
		errs = multierror.Append(errs, errors.Wrapf(ErrInvalidState, "negative elo (white %d, black %d)", s.WhiteElo, s.BlackElo))
	}
	for i, m := range s.MoveHistory {
		if !m.From.InBounds() || !m.To.InBounds() {
			errs = multierror.Append(errs, errors.Wrap(ErrInvalidState, fmt.Sprintf("move %d (%q) leaves the board", i, m.Notation)))
		}
	}
	return errs
}

// Features are the position features reported with a prediction.
type Features struct {
	MaterialBalance float64 `json:"materialBalance"`
	CenterControl   float64 `json:"centerControl"`
	PieceMobility   float64 `json:"pieceMobility"`
	KingSafety      float64 `json:"kingSafety"`
}

// MovePrediction is a suggested move with its figures. The move is free text and is not checked for legality.
type MovePrediction struct {
	Move       string   `json:"move"`
	Confidence float64  `json:"confidence"`
	Evaluation float64  `json:"evaluation"`
	Features   Features `json:"features"`
}
