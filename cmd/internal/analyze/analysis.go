package analyze

import (
	"fmt"
	"io"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/cli"
	"github.com/nelhage/connect4/connect4"
	"github.com/nelhage/connect4/notation"
)

// Analysis prints a minimax analysis of one position.
type Analysis struct {
	Out     io.Writer
	Quiet   bool
	Explain bool
	// Static prints only the evaluation of the position itself.
	Static bool
}

func (a *Analysis) Run(b *connect4.Board, cfg ai.MinimaxConfig) {
	m := ai.NewMinimax(b, cfg)
	cfg = m.Config()
	if !a.Quiet {
		cli.RenderBoard(nil, a.Out, b)
	}
	if a.Explain {
		ai.ExplainScore(cfg.Weights, a.Out, b, cfg.Piece)
	}
	if a.Static {
		fmt.Fprintf(a.Out, " val=%d\n", ai.Evaluate(cfg.Weights, b, cfg.Piece))
		return
	}

	col, val, st := m.Analyze()
	fmt.Fprintf(a.Out, "AI analysis (%s, depth %d):\n", cfg.Piece, cfg.Depth)
	if col == connect4.NoColumn {
		fmt.Fprintf(a.Out, " move=none\n")
	} else {
		fmt.Fprintf(a.Out, " move=%s\n", notation.FormatMove(col))
	}
	fmt.Fprintf(a.Out, " value=%d\n", val)
	fmt.Fprintf(a.Out, " visited=%d evaluated=%d terminal=%d cut=%d time=%s\n",
		st.Visited, st.Evaluated, st.Terminal, st.Cutoffs, st.Elapsed)
	fmt.Fprintf(a.Out, "[Position \"%s\"]\n", notation.FormatPosition(b))

	if col == connect4.NoColumn || a.Quiet {
		return
	}
	after := b.Clone()
	if err := after.Drop(col, cfg.Piece); err != nil {
		fmt.Fprintf(a.Out, "illegal move %s: %v\n", notation.FormatMove(col), err)
		return
	}
	fmt.Fprintln(a.Out, "Resulting position:")
	cli.RenderBoard(nil, a.Out, after)
	if a.Explain {
		ai.ExplainScore(cfg.Weights, a.Out, after, cfg.Piece)
	}
	fmt.Fprintln(a.Out)
}
