package chess

import (
	"fmt"
	"strings"
)

// BoardFromFEN builds a board from the piece placement field of a
// FEN record: ranks from 8 to 1 separated by '/', digits counting
// consecutive empty squares, letters naming pieces with uppercase
// for white.  A full FEN record may be passed; fields after the
// placement (turn, castling rights, en passant square, clocks) are
// accepted as trailing tokens and ignored, they are not parsed into
// game state.  An error wrapping ErrMalformedPlacement is returned
// if there is a parsing error.
func BoardFromFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedPlacement)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: %d ranks", ErrMalformedPlacement, len(ranks))
	}

	b := &Board{}
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		if err := fenFormRank(b, r, rankStr); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// fenFormRank places one FEN rank string onto the board.
func fenFormRank(b *Board, r Rank, rankStr string) error {
	count := 0
	for i := 0; i < len(rankStr); i++ {
		c := rankStr[i]

		if c >= '1' && c <= '8' {
			count += int(c - '0')
			continue
		}

		if c >= 128 || fenCharToPiece[c] == NoPiece {
			return fmt.Errorf("%w: unrecognized character %q", ErrMalformedPlacement, c)
		}
		if count > 7 {
			return fmt.Errorf("%w: rank %s overflows", ErrMalformedPlacement, r)
		}
		b.Put(fenCharToPiece[c], NewSquare(File(count), r))
		count++
	}

	if count != 8 {
		return fmt.Errorf("%w: rank %s has %d files", ErrMalformedPlacement, r, count)
	}
	return nil
}

// Direct lookup array for FEN characters to pieces.
// Note: NoPiece is used for invalid characters.
//
//nolint:gochecknoglobals // this is a lookup table.
var fenCharToPiece = [128]Piece{
	'K': WhiteKing,
	'Q': WhiteQueen,
	'R': WhiteRook,
	'B': WhiteBishop,
	'N': WhiteKnight,
	'P': WhitePawn,
	'k': BlackKing,
	'q': BlackQueen,
	'r': BlackRook,
	'b': BlackBishop,
	'n': BlackKnight,
	'p': BlackPawn,
}
