package chess

import "testing"

func TestPieceTypeAndColor(t *testing.T) {
	for _, p := range allPieces {
		if got := NewPiece(p.Type(), p.Color()); got != p {
			t.Fatalf("expected %v but got %v", p, got)
		}
	}
	if NewPiece(Rook, NoColor) != NoPiece {
		t.Fatal("colorless piece should be NoPiece")
	}
	if NewPiece(NoPieceType, White) != NoPiece {
		t.Fatal("typeless piece should be NoPiece")
	}
}

func TestPieceString(t *testing.T) {
	cases := map[Piece]string{
		WhiteKing:  "K",
		WhitePawn:  "P",
		BlackKing:  "k",
		BlackQueen: "q",
		NoPiece:    "",
	}
	for p, want := range cases {
		if got := p.String(); got != want {
			t.Fatalf("expected %q but got %q", want, got)
		}
	}
}

func TestColorOther(t *testing.T) {
	if White.Other() != Black || Black.Other() != White || NoColor.Other() != NoColor {
		t.Fatal("color inversion is wrong")
	}
}

func TestPieceFigurine(t *testing.T) {
	if WhiteRook.Figurine() != '♖' || BlackPawn.Figurine() != '♟' {
		t.Fatal("figurine glyphs are wrong")
	}
	if NoPiece.Figurine() != ' ' {
		t.Fatal("empty square figurine should be a space")
	}
}
