package chess

// PseudoMoves returns the destination squares reachable by the piece
// on sq under movement and occupancy rules only.  No legality
// filtering is applied: the result may leave the own king in check,
// pins are ignored, and castling and en passant are not generated.
// Returns nil if sq is empty.
//
// The enemy king's square is never among the results.  A "capture"
// of the king cannot arise in a legal game, and the enumerator must
// not fabricate one when probing positions defensively; the square
// immediately before the king remains a valid destination.
func (b *Board) PseudoMoves(sq Square) []Square {
	p := b.Piece(sq)
	switch p.Type() {
	case Rook, Bishop, Queen:
		return b.slideMoves(sq, p.Color(), slideDirections(p.Type()))
	case Knight:
		return b.stepMoves(p.Color(), KnightOffsets(sq))
	case King:
		return b.stepMoves(p.Color(), KingNeighborhood(sq))
	case Pawn:
		return b.pawnMoves(sq, p.Color())
	}
	return nil
}

// slideMoves walks each ray nearest to farthest.  An empty square is
// a destination and the walk continues; the first occupied square
// ends the ray, counting as a destination only for an enemy
// non-king occupant.
func (b *Board) slideMoves(sq Square, c Color, dirs []direction) []Square {
	moves := make([]Square, 0, 16)
	for _, d := range dirs {
		for _, to := range ray(sq, d) {
			occupant := b.Piece(to)
			if occupant == NoPiece {
				moves = append(moves, to)
				continue
			}
			if occupant.Color() != c && occupant.Type() != King {
				moves = append(moves, to)
			}
			break
		}
	}
	return moves
}

// stepMoves filters a one-step candidate set: a destination must be
// empty or hold an enemy non-king piece.
func (b *Board) stepMoves(c Color, candidates []Square) []Square {
	moves := make([]Square, 0, len(candidates))
	for _, to := range candidates {
		occupant := b.Piece(to)
		if occupant == NoPiece || (occupant.Color() != c && occupant.Type() != King) {
			moves = append(moves, to)
		}
	}
	return moves
}

// pawnMoves generates pawn pushes and captures relative to color:
// one square forward if empty, two squares from the starting rank if
// both squares are empty, and diagonal captures only onto
// enemy-occupied squares.  En passant is out of scope.
func (b *Board) pawnMoves(sq Square, c Color) []Square {
	rankStep := 1
	startRank := Rank2
	if c == Black {
		rankStep = -1
		startRank = Rank7
	}

	moves := make([]Square, 0, 4)
	f, r := int(sq.File()), int(sq.Rank())

	if one, ok := squareAt(f, r+rankStep); ok && !b.IsOccupied(one) {
		moves = append(moves, one)
		if sq.Rank() == startRank {
			if two, ok := squareAt(f, r+2*rankStep); ok && !b.IsOccupied(two) {
				moves = append(moves, two)
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to, ok := squareAt(f+df, r+rankStep)
		if !ok {
			continue
		}
		occupant := b.Piece(to)
		if occupant != NoPiece && occupant.Color() != c && occupant.Type() != King {
			moves = append(moves, to)
		}
	}
	return moves
}
