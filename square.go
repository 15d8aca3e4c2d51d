package chess

import "fmt"

// A File is the file (column) of a square.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// String implements the fmt.Stringer interface and returns
// the file's letter ("a" through "h").
func (f File) String() string {
	return string('a' + byte(f))
}

// A Rank is the rank (row) of a square.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// String implements the fmt.Stringer interface and returns
// the rank's digit ("1" through "8").
func (r Rank) String() string {
	return string('1' + byte(r))
}

// A Square is one of the 64 squares of the board.  Squares are
// numbered from A1 (0) to H8 (63), rank by rank from white's side.
type Square int8

// File returns the square's file.
func (sq Square) File() File {
	return File(sq & 7)
}

// Rank returns the square's rank.
func (sq Square) Rank() Rank {
	return Rank(sq >> 3)
}

// String implements the fmt.Stringer interface and returns the
// square in algebraic notation ("e4").  NoSquare renders as "-".
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

// NewSquare returns the square at the given file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(int8(r)<<3 | int8(f))
}

// ParseSquare parses a square in algebraic notation ("e4").
// The input must match [a-h][1-8]; anything else returns an
// error wrapping ErrInvalidSquare.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w %q", ErrInvalidSquare, s)
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if f < FileA || f > FileH || r < Rank1 || r > Rank8 {
		return NoSquare, fmt.Errorf("%w %q", ErrInvalidSquare, s)
	}
	return NewSquare(f, r), nil
}

// squareAt bounds-checks a file/rank pair.  Out-of-range pairs
// report false rather than an error so that geometry walks can
// silently drop coordinates that fall off the board.
func squareAt(f, r int) (Square, bool) {
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return NoSquare, false
	}
	return NewSquare(File(f), Rank(r)), true
}

const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 8*iota + 0, 8*iota + 1, 8*iota + 2,
		8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	A2, B2, C2, D2, E2, F2, G2, H2
	A3, B3, C3, D3, E3, F3, G3, H3
	A4, B4, C4, D4, E4, F4, G4, H4
	A5, B5, C5, D5, E5, F5, G5, H5
	A6, B6, C6, D6, E6, F6, G6, H6
	A7, B7, C7, D7, E7, F7, G7, H7
	A8, B8, C8, D8, E8, F8, G8, H8
	NoSquare Square = -1
)

const numOfSquaresInBoard = 64
