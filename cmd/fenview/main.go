// fenview is a diagnostic tool that loads a FEN piece placement,
// draws the board, and lists pseudo-legal moves for a square.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	chess "chesskit"
	"chesskit/image"
)

var (
	fen     = flag.String("fen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", "FEN piece placement (extra FEN fields are ignored)")
	from    = flag.String("from", "", "square to enumerate pseudo-legal moves for, e.g. d4")
	svgPath = flag.String("svg", "", "write an SVG rendering of the board to this file")
)

func main() {
	flag.Parse()

	board, err := chess.BoardFromFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(board.Draw())

	var moves []chess.Square
	if *from != "" {
		sq, err := chess.ParseSquare(*from)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		moves = board.PseudoMoves(sq)
		fmt.Printf("%s %s: %d pseudo-legal moves\n", board.Piece(sq), sq, len(moves))
		for _, to := range moves {
			fmt.Println("  " + to.String())
		}
	}

	if *svgPath != "" {
		if err := writeSVG(*svgPath, board, moves); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func writeSVG(path string, board *chess.Board, moves []chess.Square) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	yellow := color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	return image.SVG(f, board, image.MarkSquares(yellow, moves...))
}
