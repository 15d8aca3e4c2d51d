/*
Package chess models an 8x8 chess board with piece placement and
pseudo-legal move enumeration.  Squares are addressed in algebraic
notation, boards can be populated by hand or from the piece placement
field of a FEN record, and PseudoMoves walks piece geometry against
board occupancy with blocking and capture semantics.

Board Layout:

	8 | r n b q k b n r
	7 | p p p p p p p p
	6 | - - - - - - - -
	5 | - - - - - - - -
	4 | - - - - - - - -
	3 | - - - - - - - -
	2 | P P P P P P P P
	1 | R N B Q K B N R
	  -----------------
	    A B C D E F G H

Example usage:

	board, err := chess.BoardFromFEN("8/8/8/8/3R4/8/8/8")
	if err != nil {
		log.Fatal(err)
	}

	// All squares the rook can reach.
	for _, sq := range board.PseudoMoves(chess.D4) {
		fmt.Println(sq)
	}

No legality filtering is applied: moves that leave the own king in
check, castling, and en passant are out of scope, as is any notion
of side to move.
*/
package chess

import "strings"

// Board represents a chess board and its relationship between
// squares and pieces.  The grid is the sole source of truth for
// piece position; a square holds at most one piece and an empty
// square holds NoPiece.
type Board struct {
	squares [numOfSquaresInBoard]Piece
}

// A PlacedPiece is a piece together with the square it occupies.
type PlacedPiece struct {
	Square Square
	Piece  Piece
}

// NewBoard returns a board from a square to piece mapping.
// The map should contain only occupied squares.
//
// Example:
//
//	squares := map[chess.Square]chess.Piece{
//	    chess.E1: chess.WhiteKing,
//	    chess.E8: chess.BlackKing,
//	}
//	board := chess.NewBoard(squares)
func NewBoard(m map[Square]Piece) *Board {
	b := &Board{}
	for sq, p := range m {
		b.Put(p, sq)
	}
	return b
}

// Put places a piece on the given square, overwriting any existing
// occupant.  Putting NoPiece is equivalent to Clear.
func (b *Board) Put(p Piece, sq Square) {
	b.squares[sq] = p
}

// Clear removes any occupant from the given square.
func (b *Board) Clear(sq Square) {
	b.squares[sq] = NoPiece
}

// Piece returns the piece on the given square.
// Returns NoPiece if the square is empty.
func (b *Board) Piece(sq Square) Piece {
	return b.squares[sq]
}

// IsOccupied reports whether the given square holds a piece.
func (b *Board) IsOccupied(sq Square) bool {
	return b.squares[sq] != NoPiece
}

// Pieces returns every occupied square with its piece in board-scan
// order: rank 8 down to rank 1, file a to h within each rank.  The
// order matches placement parsing and carries no gameplay meaning.
func (b *Board) Pieces() []PlacedPiece {
	pieces := make([]PlacedPiece, 0, numOfSquaresInBoard/2)
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			sq := NewSquare(f, r)
			if p := b.squares[sq]; p != NoPiece {
				pieces = append(pieces, PlacedPiece{Square: sq, Piece: p})
			}
		}
	}
	return pieces
}

// SquareMap returns a mapping of squares to pieces.
// A square is only added to the map if it is occupied.
func (b *Board) SquareMap() map[Square]Piece {
	m := map[Square]Piece{}
	for sq := 0; sq < numOfSquaresInBoard; sq++ {
		if p := b.squares[sq]; p != NoPiece {
			m[Square(sq)] = p
		}
	}
	return m
}

// Copy returns a copy of the board that can be mutated without
// affecting the original.
func (b *Board) Copy() *Board {
	cp := *b
	return &cp
}

// FlipDirection is the direction for the Board.Flip method.
type FlipDirection int

const (
	// UpDown flips the board's rank values.
	UpDown FlipDirection = iota
	// LeftRight flips the board's file values.
	LeftRight
)

// Flip returns a new board mirrored over the specified axis.
func (b *Board) Flip(fd FlipDirection) *Board {
	flipped := &Board{}
	for sq := 0; sq < numOfSquaresInBoard; sq++ {
		from := Square(sq)
		var to Square
		switch fd {
		case UpDown:
			to = NewSquare(from.File(), Rank8-from.Rank())
		case LeftRight:
			to = NewSquare(FileH-from.File(), from.Rank())
		}
		flipped.squares[to] = b.squares[from]
	}
	return flipped
}

// Transpose returns a new board flipped over the A8 to H1 diagonal.
func (b *Board) Transpose() *Board {
	transposed := &Board{}
	for sq := 0; sq < numOfSquaresInBoard; sq++ {
		from := Square(sq)
		to := NewSquare(File(Rank8-from.Rank()), Rank(FileH-from.File()))
		transposed.squares[to] = b.squares[from]
	}
	return transposed
}

// Rotate returns a new board rotated 90 degrees clockwise.
func (b *Board) Rotate() *Board {
	return b.Flip(UpDown).Transpose()
}

// Draw returns a visual ASCII representation of the board.
// Capital letters represent white pieces, lowercase represent black
// pieces, empty squares are shown as "-".
//
// Example output:
//
//	  A B C D E F G H
//	8 r n b q k b n r
//	7 p p p p p p p p
//	6 - - - - - - - -
//	5 - - - - - - - -
//	4 - - - - - - - -
//	3 - - - - - - - -
//	2 P P P P P P P P
//	1 R N B Q K B N R
func (b *Board) Draw() string {
	var sb strings.Builder
	sb.WriteString("\n  A B C D E F G H\n")
	for r := Rank8; r >= Rank1; r-- {
		sb.WriteString(r.String())
		for f := FileA; f <= FileH; f++ {
			sb.WriteString(" ")
			if p := b.squares[NewSquare(f, r)]; p == NoPiece {
				sb.WriteString("-")
			} else {
				sb.WriteString(p.String())
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// String implements the fmt.Stringer interface and returns the
// board as a FEN piece placement field:
// rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR.
func (b *Board) String() string {
	buf := make([]byte, 0, 71)
	for r := Rank8; r >= Rank1; r-- {
		if r < Rank8 {
			buf = append(buf, '/')
		}
		emptyCount := 0
		for f := FileA; f <= FileH; f++ {
			p := b.squares[NewSquare(f, r)]
			if p == NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				buf = append(buf, byte('0'+emptyCount))
				emptyCount = 0
			}
			buf = append(buf, p.fenChar())
		}
		if emptyCount > 0 {
			buf = append(buf, byte('0'+emptyCount))
		}
	}
	return string(buf)
}

// MarshalText implements the encoding.TextMarshaler interface and
// returns the FEN piece placement field.
func (b *Board) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
// and takes a FEN piece placement field.
func (b *Board) UnmarshalText(text []byte) error {
	cp, err := BoardFromFEN(string(text))
	if err != nil {
		return err
	}
	*b = *cp
	return nil
}
