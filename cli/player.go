package cli

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/net/context"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/connect4"
	"github.com/nelhage/connect4/notation"
)

// NewHumanPlayer prompts on out and reads columns from in until it
// gets one that is playable on b.
func NewHumanPlayer(out io.Writer, in *bufio.Reader, b *connect4.Board) ai.Player {
	return &humanPlayer{out, in, b}
}

type humanPlayer struct {
	out io.Writer
	in  *bufio.Reader
	b   *connect4.Board
}

func (h *humanPlayer) GetMove(ctx context.Context) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return connect4.NoColumn, err
		}
		fmt.Fprintf(h.out, "%s> ", h.b.ToMove())
		line, err := h.in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return connect4.NoColumn, err
		}
		col, perr := notation.ParseMove(line)
		if perr != nil {
			fmt.Fprintln(h.out, "parse error:", perr)
		} else if !h.b.IsEmptySlotIn(col) {
			fmt.Fprintf(h.out, "column %s is not playable\n", notation.FormatMove(col))
		} else {
			return col, nil
		}
		if err == io.EOF {
			return connect4.NoColumn, err
		}
	}
}
