// Package symmetry maps Connect Four positions and move sequences onto a
// canonical member of their mirror-image class.
package symmetry

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/nelhage/connect4/connect4"
	"github.com/nelhage/connect4/notation"
)

type Symmetry func(cols, col int) int

func identity(cols, col int) int { return col }

// MirrorColumn reflects col about the board's vertical center line.
func MirrorColumn(cols, col int) int {
	return cols - 1 - col
}

func symmetries() []Symmetry {
	return []Symmetry{identity, MirrorColumn}
}

// Mirror returns the left-right reflection of b.
func Mirror(b *connect4.Board) *connect4.Board {
	return Transform(MirrorColumn, b)
}

// Transform returns a copy of b with every column moved by s.
func Transform(s Symmetry, b *connect4.Board) *connect4.Board {
	cols := b.Columns()
	rows := make([][]connect4.Piece, b.Rows())
	for r := range rows {
		rows[r] = make([]connect4.Piece, cols)
		for c := 0; c < cols; c++ {
			rows[r][s(cols, c)] = b.At(r, c)
		}
	}
	out, err := connect4.FromRows(b.Config(), rows)
	if err != nil {
		panic(fmt.Sprintf("symmetry is not sane: %v", err))
	}
	return out
}

// Symmetric reports whether b is its own mirror image.
func Symmetric(b *connect4.Board) bool {
	return notation.FormatPosition(b) == notation.FormatPosition(Mirror(b))
}

// Canonical returns whichever of b and its mirror has the smaller
// position string, and whether the mirror was chosen. Symmetric
// positions are returned unmirrored.
func Canonical(b *connect4.Board) (*connect4.Board, bool) {
	m := Mirror(b)
	if notation.FormatPosition(m) < notation.FormatPosition(b) {
		return m, true
	}
	return b, false
}

// CanonicalMoves rewrites a game so that, whenever the position is
// symmetric, the move made is the leftmost of its mirror pair. Every
// later move is reflected consistently.
func CanonicalMoves(cfg connect4.Config, ms []int) ([]int, error) {
	b := connect4.New(cfg)
	cols := b.Columns()
	syms := symmetries()
	tfn := syms[0]
	out := make([]int, 0, len(ms))
	for ply, m := range ms {
		rm := tfn(cols, m)
		if Symmetric(b) {
			if alt := MirrorColumn(cols, rm); alt < rm {
				rm = alt
				if tfn(cols, 0) == 0 {
					tfn = syms[1]
				} else {
					tfn = syms[0]
				}
			}
		}
		if err := b.Drop(rm, b.ToMove()); err != nil {
			return nil, errors.Wrapf(err, "canonical: move %d: %s",
				ply, notation.FormatMove(rm))
		}
		out = append(out, rm)
	}
	return out, nil
}
