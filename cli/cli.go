// Package cli runs an interactive Connect Four game on a terminal.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/context"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/connect4"
	"github.com/nelhage/connect4/notation"
)

type Glyphs struct {
	Red, Yellow, Empty string
	// Color paints the pieces with lipgloss styles.
	Color bool
}

var DefaultGlyphs = Glyphs{
	Red:    "R",
	Yellow: "Y",
	Empty:  ".",
}

var UnicodeGlyphs = Glyphs{
	Red:    "●",
	Yellow: "○",
	Empty:  "·",
}

var ColorGlyphs = Glyphs{
	Red:    "●",
	Yellow: "●",
	Empty:  "·",
	Color:  true,
}

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	resultStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("13")).
			Foreground(lipgloss.Color("0")).
			Padding(0, 1)
)

// CLI plays one game between Red and Yellow. Both players must have
// been constructed on Board; CLI applies their moves to it.
type CLI struct {
	moves []int

	Board  *connect4.Board
	Glyphs *Glyphs
	Out    io.Writer
	Red    ai.Player
	Yellow ai.Player
}

// Play runs the game to completion and returns the winner, or Empty on
// a draw.
func (c *CLI) Play(ctx context.Context) (connect4.Piece, error) {
	c.moves = nil
	for {
		c.render()
		if over, winner := c.Board.GameOver(); over {
			c.announce(winner)
			return winner, nil
		}
		toMove := c.Board.ToMove()
		p := c.Red
		if toMove == connect4.Yellow {
			p = c.Yellow
		}
		col, err := p.GetMove(ctx)
		if err != nil {
			return connect4.Empty, fmt.Errorf("%s: %w", toMove, err)
		}
		if err := c.Board.Drop(col, toMove); err != nil {
			fmt.Fprintln(c.Out, "illegal move:", err)
			continue
		}
		c.moves = append(c.moves, col)
		if toMove == connect4.Red {
			fmt.Fprintf(c.Out, "%d. %s\n", len(c.moves)/2+1, notation.FormatMove(col))
		} else {
			fmt.Fprintf(c.Out, "%d. ... %s\n", len(c.moves)/2, notation.FormatMove(col))
		}
	}
}

func (c *CLI) Moves() []int {
	return c.moves
}

func (c *CLI) render() {
	RenderBoard(c.Glyphs, c.Out, c.Board)
}

func (c *CLI) announce(winner connect4.Piece) {
	msg := "Game Over! Draw."
	if winner != connect4.Empty {
		msg = fmt.Sprintf("Game Over! %s wins.", winner)
	}
	if c.Glyphs != nil && c.Glyphs.Color {
		msg = resultStyle.Render(msg)
	}
	fmt.Fprintln(c.Out, msg)
}

func glyph(g *Glyphs, p connect4.Piece) string {
	switch p {
	case connect4.Red:
		if g.Color {
			return redStyle.Render(g.Red)
		}
		return g.Red
	case connect4.Yellow:
		if g.Color {
			return yellowStyle.Render(g.Yellow)
		}
		return g.Yellow
	case connect4.Empty:
		return g.Empty
	}
	panic(fmt.Sprintf("bad piece %v", p))
}

func RenderBoard(g *Glyphs, out io.Writer, b *connect4.Board) {
	if g == nil {
		g = &DefaultGlyphs
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "[%s to play]\n", b.ToMove())
	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', 0)
	for row := b.Rows() - 1; row >= 0; row-- {
		fmt.Fprintf(w, "%d.\t", row+1)
		cells := make([]string, b.Columns())
		for col := range cells {
			cells[col] = glyph(g, b.At(row, col))
		}
		fmt.Fprintf(w, "|%s|\n", strings.Join(cells, " "))
	}
	fmt.Fprintf(w, "\t")
	labels := make([]string, b.Columns())
	for col := range labels {
		labels[col] = notation.FormatMove(col)
	}
	fmt.Fprintf(w, " %s\n", strings.Join(labels, " "))
	w.Flush()
}
