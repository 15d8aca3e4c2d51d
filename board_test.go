package chess

import (
	"strings"
	"testing"
)

func TestPutAndClear(t *testing.T) {
	b := &Board{}
	b.Put(WhiteRook, A1)
	if b.Piece(A1) != WhiteRook {
		t.Fatalf("expected white rook on a1 but got %v", b.Piece(A1))
	}
	if !b.IsOccupied(A1) {
		t.Fatal("a1 should be occupied")
	}

	// overwrite discards the previous occupant
	b.Put(BlackQueen, A1)
	if b.Piece(A1) != BlackQueen {
		t.Fatalf("expected black queen on a1 but got %v", b.Piece(A1))
	}

	b.Clear(A1)
	if b.IsOccupied(A1) {
		t.Fatal("a1 should be empty after clear")
	}
	if b.Piece(A1) != NoPiece {
		t.Fatalf("expected NoPiece but got %v", b.Piece(A1))
	}
}

func TestNewBoardFromMap(t *testing.T) {
	b := NewBoard(map[Square]Piece{
		E1: WhiteKing,
		E8: BlackKing,
	})
	if b.Piece(E1) != WhiteKing || b.Piece(E8) != BlackKing {
		t.Fatal(b.Draw())
	}
}

func TestPiecesScanOrder(t *testing.T) {
	b := NewBoard(map[Square]Piece{
		A1: WhiteRook,
		H8: BlackRook,
		D4: WhiteQueen,
	})
	pieces := b.Pieces()
	if len(pieces) != 3 {
		t.Fatalf("expected 3 pieces but got %d", len(pieces))
	}
	// rank 8 first, rank 1 last
	wantOrder := []PlacedPiece{
		{Square: H8, Piece: BlackRook},
		{Square: D4, Piece: WhiteQueen},
		{Square: A1, Piece: WhiteRook},
	}
	for i, want := range wantOrder {
		if pieces[i] != want {
			t.Fatalf("index %d: expected %s on %s but got %s on %s",
				i, want.Piece, want.Square, pieces[i].Piece, pieces[i].Square)
		}
	}
}

func TestSquareMap(t *testing.T) {
	b := NewBoard(map[Square]Piece{A1: WhiteRook, C5: BlackPawn})
	m := b.SquareMap()
	if len(m) != 2 {
		t.Fatalf("expected 2 entries but got %d", len(m))
	}
	if m[A1] != WhiteRook || m[C5] != BlackPawn {
		t.Fatal(b.Draw())
	}
}

func TestCopyIsIndependent(t *testing.T) {
	b := NewBoard(map[Square]Piece{A1: WhiteRook})
	cp := b.Copy()
	cp.Clear(A1)
	if !b.IsOccupied(A1) {
		t.Fatal("clearing the copy must not mutate the original")
	}
}

func TestFlipAndRotate(t *testing.T) {
	b := NewBoard(map[Square]Piece{A1: WhiteRook})
	if got := b.Flip(UpDown).Piece(A8); got != WhiteRook {
		t.Fatalf("flip up-down: expected rook on a8 but got %v", got)
	}
	if got := b.Flip(LeftRight).Piece(H1); got != WhiteRook {
		t.Fatalf("flip left-right: expected rook on h1 but got %v", got)
	}
	if got := b.Transpose().Piece(H8); got != WhiteRook {
		t.Fatalf("transpose: expected rook on h8 but got %v", got)
	}
	if got := b.Rotate().Piece(A8); got != WhiteRook {
		t.Fatalf("rotate: expected rook on a8 but got %v", got)
	}
}

func TestDraw(t *testing.T) {
	b, err := BoardFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	if err != nil {
		t.Fatal(err)
	}
	drawing := b.Draw()
	for _, line := range []string{
		"A B C D E F G H",
		"8 r n b q k b n r",
		"2 P P P P P P P P",
		"4 - - - - - - - -",
	} {
		if !strings.Contains(drawing, line) {
			t.Fatalf("drawing missing %q:\n%s", line, drawing)
		}
	}
}

func TestBoardTextRoundTrip(t *testing.T) {
	const placement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
	b := &Board{}
	if err := b.UnmarshalText([]byte(placement)); err != nil {
		t.Fatal(err)
	}
	text, err := b.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != placement {
		t.Fatalf("expected %s but got %s", placement, text)
	}
}
