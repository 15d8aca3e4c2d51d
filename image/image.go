/*
Package image renders a chess board to SVG.  Squares can be
recolored and individual squares highlighted, which pairs with
pseudo-move output to visualize where a piece can go.

Example usage:

	board, _ := chess.BoardFromFEN("8/8/8/8/3R4/8/8/8")

	f, _ := os.Create("rook.svg")
	defer f.Close()

	mark := image.MarkSquares(color.RGBA{R: 255, G: 255, B: 0, A: 1}, board.PseudoMoves(chess.D4)...)
	if err := image.SVG(f, board, mark); err != nil {
		log.Fatal(err)
	}
*/
package image

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	chess "chesskit"
)

const (
	squareSize  = 45
	boardSize   = 8 * squareSize
	defaultLite = "#ffce9e"
	defaultDark = "#d18b47"
)

// An Encoder holds the rendering configuration for one SVG board.
type Encoder struct {
	w     io.Writer
	light string
	dark  string
	marks map[chess.Square]string
}

// SVG writes the board to w as an SVG image.  Optional functions
// returned by SquareColors and MarkSquares configure the output.
func SVG(w io.Writer, b *chess.Board, opts ...func(*Encoder)) error {
	e := &Encoder{
		w:     w,
		light: defaultLite,
		dark:  defaultDark,
		marks: map[chess.Square]string{},
	}
	for _, f := range opts {
		if f != nil {
			f(e)
		}
	}
	return e.encode(b)
}

// SquareColors returns an option that sets the light and dark
// square colors.
func SquareColors(light, dark color.Color) func(*Encoder) {
	return func(e *Encoder) {
		e.light = colorToHex(light)
		e.dark = colorToHex(dark)
	}
}

// MarkSquares returns an option that highlights the given squares
// with the given color.
func MarkSquares(c color.Color, sqs ...chess.Square) func(*Encoder) {
	return func(e *Encoder) {
		for _, sq := range sqs {
			e.marks[sq] = colorToHex(c)
		}
	}
}

func (e *Encoder) encode(b *chess.Board) error {
	canvas := svg.New(e.w)
	canvas.Start(boardSize, boardSize)

	for r := chess.Rank8; r >= chess.Rank1; r-- {
		for f := chess.FileA; f <= chess.FileH; f++ {
			sq := chess.NewSquare(f, r)
			x, y := origin(sq)
			canvas.Rect(x, y, squareSize, squareSize, "fill: "+e.squareColor(sq))
		}
	}

	// marks are drawn over their squares; sorted so the output is
	// deterministic for a given configuration
	marked := maps.Keys(e.marks)
	slices.Sort(marked)
	for _, sq := range marked {
		x, y := origin(sq)
		style := fmt.Sprintf("fill-opacity:0.4;fill: %s", e.marks[sq])
		canvas.Rect(x, y, squareSize, squareSize, style)
	}

	for _, pp := range b.Pieces() {
		x, y := origin(pp.Square)
		style := fmt.Sprintf("font-size:%dpx;text-anchor:middle", squareSize-10)
		canvas.Text(x+squareSize/2, y+squareSize-10, string(pp.Piece.Figurine()), style)
	}

	canvas.End()
	return nil
}

// origin returns the top-left pixel of a square; rank 8 is at the
// top of the image.
func origin(sq chess.Square) (x, y int) {
	return int(sq.File()) * squareSize, int(chess.Rank8-sq.Rank()) * squareSize
}

func (e *Encoder) squareColor(sq chess.Square) string {
	if (int(sq.File())+int(sq.Rank()))%2 == 0 {
		return e.dark
	}
	return e.light
}

func colorToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
