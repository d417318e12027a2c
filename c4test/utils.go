package c4test

import (
	"strings"

	"github.com/janpfeifer/must"

	"github.com/nelhage/connect4/connect4"
	"github.com/nelhage/connect4/notation"
)

func Move(s string) int {
	return must.M1(notation.ParseMove(s))
}

func Moves(s string) []int {
	if s == "" {
		return nil
	}
	var ms []int
	for _, b := range strings.Fields(s) {
		ms = append(ms, Move(b))
	}
	return ms
}

func FormatMoves(ms []int) string {
	return notation.FormatMoves(ms)
}

// Board plays ms, alternating from red, on an empty board.
func Board(cfg connect4.Config, ms string) *connect4.Board {
	b := connect4.New(cfg)
	for _, m := range Moves(ms) {
		must.M(b.Drop(m, b.ToMove()))
	}
	return b
}

func Position(pos string) *connect4.Board {
	return must.M1(notation.ParsePosition(pos))
}
