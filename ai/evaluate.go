package ai

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nelhage/connect4/connect4"
)

const (
	MaxEval int64 = 100000000
	MinEval       = -MaxEval
)

// Weights is a table of window scores. Four, Three and Two reward a
// window holding that many of the scored piece with the rest empty;
// BlockThree is subtracted for a window holding three opposing pieces
// and one empty cell; Center is awarded per own piece in a window that
// crosses the center column.
type Weights struct {
	Four       int
	Three      int
	Two        int
	BlockThree int
	Center     int
}

// AggressiveWeights drive the single-ply heuristic player.
var AggressiveWeights = Weights{
	Four:       100,
	Three:      10,
	Two:        5,
	BlockThree: 80,
	Center:     6,
}

// ConservativeWeights score the leaves of the minimax search.
var ConservativeWeights = Weights{
	Four:       100,
	Three:      5,
	Two:        2,
	BlockThree: 5,
	Center:     3,
}

func ScoreWindow(w *Weights, win connect4.Window, p connect4.Piece, center bool) int {
	mine := win.Count(p)
	empty := win.Count(connect4.Empty)
	theirs := win.Count(p.Flip())

	score := 0
	switch {
	case mine == 4:
		score += w.Four
	case mine == 3 && empty == 1:
		score += w.Three
	case mine == 2 && empty == 2:
		score += w.Two
	}
	if theirs == 3 && empty == 1 {
		score -= w.BlockThree
	}
	if center {
		score += w.Center * mine
	}
	return score
}

func MakeScorer(w *Weights) connect4.ScoreFunc {
	return func(win connect4.Window, p connect4.Piece, center bool) int {
		return ScoreWindow(w, win, p, center)
	}
}

var (
	AggressiveScore   = MakeScorer(&AggressiveWeights)
	ConservativeScore = MakeScorer(&ConservativeWeights)
)

func Evaluate(w *Weights, b *connect4.Board, p connect4.Piece) int64 {
	return b.EvaluateWindows(p, MakeScorer(w))
}

// ExplainScore writes, per direction, how many windows fell into each
// scoring class for p, and what they contributed.
func ExplainScore(w *Weights, out io.Writer, b *connect4.Board, p connect4.Piece) {
	type row struct {
		four, three, two, block, center int
		score                           int64
	}
	var rows [4]row
	b.Windows(func(d connect4.Direction, win connect4.Window, center bool) {
		r := &rows[d]
		mine := win.Count(p)
		empty := win.Count(connect4.Empty)
		switch {
		case mine == 4:
			r.four++
		case mine == 3 && empty == 1:
			r.three++
		case mine == 2 && empty == 2:
			r.two++
		}
		if win.Count(p.Flip()) == 3 && empty == 1 {
			r.block++
		}
		if center {
			r.center += mine
		}
		r.score += int64(ScoreWindow(w, win, p, center))
	})

	tw := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	fmt.Fprintf(tw, "%s\tfour\tthree\ttwo\tblock\tcenter\tscore\n", p)
	var total int64
	for d, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			connect4.Direction(d), r.four, r.three, r.two, r.block, r.center, r.score)
		total += r.score
	}
	fmt.Fprintf(tw, "total\t\t\t\t\t\t%d\n", total)
	tw.Flush()
}
