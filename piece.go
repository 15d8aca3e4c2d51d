package chess

// A Color is the color of a piece or side.
type Color int8

const (
	// NoColor represents the absence of color, e.g. the color of NoPiece.
	NoColor Color = iota
	// White represents the white side.
	White
	// Black represents the black side.
	Black
)

// Other returns the opposite color of the receiver.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// String implements the fmt.Stringer interface and returns
// the color's FEN letter ("w" or "b").
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	}
	return "-"
}

// Name returns a display friendly name.
func (c Color) Name() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "No Color"
}

// A PieceType is the type of a piece.
type PieceType int8

const (
	// NoPieceType represents the absence of a piece type.
	NoPieceType PieceType = iota
	// King represents a king.
	King
	// Queen represents a queen.
	Queen
	// Rook represents a rook.
	Rook
	// Bishop represents a bishop.
	Bishop
	// Knight represents a knight.
	Knight
	// Pawn represents a pawn.
	Pawn
)

// PieceTypes returns a slice of all piece types.
func PieceTypes() [6]PieceType {
	return [6]PieceType{King, Queen, Rook, Bishop, Knight, Pawn}
}

func (p PieceType) String() string {
	switch p {
	case King:
		return "k"
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	case Pawn:
		return "p"
	}
	return ""
}

// A Piece is a piece type with a color.
type Piece int8

const (
	// NoPiece represents an empty square.
	NoPiece Piece = iota
	// WhiteKing is a white king (K).
	WhiteKing
	// WhiteQueen is a white queen (Q).
	WhiteQueen
	// WhiteRook is a white rook (R).
	WhiteRook
	// WhiteBishop is a white bishop (B).
	WhiteBishop
	// WhiteKnight is a white knight (N).
	WhiteKnight
	// WhitePawn is a white pawn (P).
	WhitePawn
	// BlackKing is a black king (k).
	BlackKing
	// BlackQueen is a black queen (q).
	BlackQueen
	// BlackRook is a black rook (r).
	BlackRook
	// BlackBishop is a black bishop (b).
	BlackBishop
	// BlackKnight is a black knight (n).
	BlackKnight
	// BlackPawn is a black pawn (p).
	BlackPawn
)

//nolint:gochecknoglobals // this is a lookup table.
var allPieces = [12]Piece{
	WhiteKing, WhiteQueen, WhiteRook, WhiteBishop, WhiteKnight, WhitePawn,
	BlackKing, BlackQueen, BlackRook, BlackBishop, BlackKnight, BlackPawn,
}

// NewPiece returns the piece of the given type and color.
func NewPiece(t PieceType, c Color) Piece {
	if t == NoPieceType || c == NoColor {
		return NoPiece
	}
	if c == White {
		return Piece(t)
	}
	return Piece(t) + 6
}

// Type returns the piece's type.
func (p Piece) Type() PieceType {
	switch p {
	case WhiteKing, BlackKing:
		return King
	case WhiteQueen, BlackQueen:
		return Queen
	case WhiteRook, BlackRook:
		return Rook
	case WhiteBishop, BlackBishop:
		return Bishop
	case WhiteKnight, BlackKnight:
		return Knight
	case WhitePawn, BlackPawn:
		return Pawn
	}
	return NoPieceType
}

// Color returns the piece's color.
func (p Piece) Color() Color {
	switch {
	case p == NoPiece:
		return NoColor
	case p <= WhitePawn:
		return White
	}
	return Black
}

// String implements the fmt.Stringer interface and returns the
// piece's FEN letter, uppercase for white and lowercase for black.
func (p Piece) String() string {
	if p == NoPiece {
		return ""
	}
	return string(p.fenChar())
}

func (p Piece) fenChar() byte {
	if p.Color() == White {
		return whitePiecesToFEN[p.Type()]
	}
	return blackPiecesToFEN[p.Type()]
}

// Figurine returns the unicode chess glyph for the piece, or a
// space for NoPiece.
func (p Piece) Figurine() rune {
	return figurines[p]
}

var (
	// whitePiecesToFEN provides direct mapping for white pieces to FEN characters
	//nolint:gochecknoglobals // this is a lookup table.
	whitePiecesToFEN = [7]byte{
		0,   // NoPieceType
		'K', // King
		'Q', // Queen
		'R', // Rook
		'B', // Bishop
		'N', // Knight
		'P', // Pawn
	}

	// blackPiecesToFEN provides direct mapping for black pieces to FEN characters
	//nolint:gochecknoglobals // this is a lookup table.
	blackPiecesToFEN = [7]byte{
		0,   // NoPieceType
		'k', // King
		'q', // Queen
		'r', // Rook
		'b', // Bishop
		'n', // Knight
		'p', // Pawn
	}

	//nolint:gochecknoglobals // this is a lookup table.
	figurines = [13]rune{
		' ',
		0x2654, // WhiteKing
		0x2655, // WhiteQueen
		0x2656, // WhiteRook
		0x2657, // WhiteBishop
		0x2658, // WhiteKnight
		0x2659, // WhitePawn
		0x265A, // BlackKing
		0x265B, // BlackQueen
		0x265C, // BlackRook
		0x265D, // BlackBishop
		0x265E, // BlackKnight
		0x265F, // BlackPawn
	}
)
