package chess

import "errors"

var (
	// ErrInvalidSquare is returned when algebraic notation does not
	// name a square on the board.
	ErrInvalidSquare = errors.New("chess: invalid square")

	// ErrInvalidDirection is returned when a ray is requested with
	// both direction steps zero.
	ErrInvalidDirection = errors.New("chess: invalid direction")

	// ErrMalformedPlacement is returned when a FEN piece placement
	// field is structurally invalid.
	ErrMalformedPlacement = errors.New("chess: malformed piece placement")

	// ErrNotImplemented is returned by analysis queries that require
	// game state (side to move, castling rights, en passant target)
	// this package does not track.
	ErrNotImplemented = errors.New("chess: not implemented")
)
