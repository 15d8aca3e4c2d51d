package chess

import "fmt"

// A direction is a file/rank step pair.  Sliding pieces repeat the
// step until the board edge, stepping pieces apply it once.
type direction struct {
	fileStep int
	rankStep int
}

//nolint:gochecknoglobals // these are lookup tables.
var (
	// north, south, east, west
	orthogonalDirections = [4]direction{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	// northeast, southeast, southwest, northwest
	diagonalDirections = [4]direction{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}

	knightJumps = [8]direction{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
)

// Ray returns the squares reachable from sq by repeating the given
// file/rank step until the board edge, ordered nearest to farthest
// and excluding sq itself.  Coordinates that fall off the board are
// silently dropped, so the result is empty when the first step is
// already out of bounds.  Requesting a ray with both steps zero is
// an error (ErrInvalidDirection) rather than an infinite walk.
func Ray(sq Square, fileStep, rankStep int) ([]Square, error) {
	if fileStep == 0 && rankStep == 0 {
		return nil, fmt.Errorf("%w: both steps are zero", ErrInvalidDirection)
	}
	return ray(sq, direction{fileStep, rankStep}), nil
}

func ray(sq Square, d direction) []Square {
	squares := make([]Square, 0, 7)
	f, r := int(sq.File()), int(sq.Rank())
	for {
		f += d.fileStep
		r += d.rankStep
		to, ok := squareAt(f, r)
		if !ok {
			return squares
		}
		squares = append(squares, to)
	}
}

// OrthogonalRays returns the four straight rays from sq in the
// order north, south, east, west.  Rays that start off the board
// are empty, not nil-checked errors.
func OrthogonalRays(sq Square) [4][]Square {
	var rays [4][]Square
	for i, d := range orthogonalDirections {
		rays[i] = ray(sq, d)
	}
	return rays
}

// DiagonalRays returns the four diagonal rays from sq in the order
// northeast, southeast, southwest, northwest.
func DiagonalRays(sq Square) [4][]Square {
	var rays [4][]Square
	for i, d := range diagonalDirections {
		rays[i] = ray(sq, d)
	}
	return rays
}

// KnightOffsets returns the up to eight squares a knight can jump
// to from sq, clipped to the board.
func KnightOffsets(sq Square) []Square {
	return steps(sq, knightJumps[:])
}

// KingNeighborhood returns the up to eight squares adjacent to sq
// (Chebyshev distance one), clipped to the board.
func KingNeighborhood(sq Square) []Square {
	neighbors := make([]direction, 0, 8)
	neighbors = append(neighbors, orthogonalDirections[:]...)
	neighbors = append(neighbors, diagonalDirections[:]...)
	return steps(sq, neighbors)
}

func steps(sq Square, dirs []direction) []Square {
	squares := make([]Square, 0, len(dirs))
	f, r := int(sq.File()), int(sq.Rank())
	for _, d := range dirs {
		if to, ok := squareAt(f+d.fileStep, r+d.rankStep); ok {
			squares = append(squares, to)
		}
	}
	return squares
}

// slideDirections returns the ray directions a sliding piece type
// moves along, or nil for non-sliders.  Per-kind geometry is a
// closed dispatch table rather than per-piece behavior.
func slideDirections(t PieceType) []direction {
	switch t {
	case Rook:
		return orthogonalDirections[:]
	case Bishop:
		return diagonalDirections[:]
	case Queen:
		all := make([]direction, 0, 8)
		all = append(all, orthogonalDirections[:]...)
		all = append(all, diagonalDirections[:]...)
		return all
	}
	return nil
}
