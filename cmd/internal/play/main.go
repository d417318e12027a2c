package play

import (
	"bufio"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/pkg/errors"
	"golang.org/x/net/context"
	"k8s.io/klog/v2"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/cli"
	"github.com/nelhage/connect4/cmd/internal/config"
	"github.com/nelhage/connect4/cmd/internal/opt"
	"github.com/nelhage/connect4/connect4"
	"github.com/nelhage/connect4/notation"
)

type Command struct {
	Env *config.Config

	red     string
	yellow  string
	rows    int
	columns int
	depth   int
	out     string

	unicode bool
	color   bool
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Connect Four from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play Connect Four on the command-line, against a human or AI.
Players are "human", "random[:seed]", "simple[:seed]" or "minimax[:depth]".
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	env := c.Env
	if env == nil {
		env = config.FromEnv()
	}
	flags.StringVar(&c.red, "red", "human", "red player")
	flags.StringVar(&c.yellow, "yellow", "minimax", "yellow player")
	flags.IntVar(&c.rows, "rows", env.Rows, "board rows")
	flags.IntVar(&c.columns, "columns", env.Columns, "board columns")
	flags.IntVar(&c.depth, "depth", env.Depth, "search depth for a bare \"minimax\" player")
	flags.StringVar(&c.out, "out", "", "write the game record to file")

	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
	flags.BoolVar(&c.color, "color", false, "render board in colour")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := connect4.Config{Rows: c.rows, Columns: c.columns}
	if err := cfg.Validate(); err != nil {
		klog.Errorf("board: %v", err)
		return subcommands.ExitUsageError
	}
	b := connect4.New(cfg)
	in := bufio.NewReader(os.Stdin)
	red, err := c.parsePlayer(in, c.red, b, connect4.Red)
	if err != nil {
		klog.Errorf("-red: %v", err)
		return subcommands.ExitUsageError
	}
	yellow, err := c.parsePlayer(in, c.yellow, b, connect4.Yellow)
	if err != nil {
		klog.Errorf("-yellow: %v", err)
		return subcommands.ExitUsageError
	}
	st := &cli.CLI{
		Board:  b,
		Out:    os.Stdout,
		Red:    red,
		Yellow: yellow,
		Glyphs: c.glyphs(),
	}
	winner, err := st.Play(ctx)
	if err != nil {
		klog.Errorf("play: %v", err)
		return subcommands.ExitFailure
	}
	if c.out != "" {
		rec := &notation.Record{}
		rec.SetTag("Size", notation.FormatSize(cfg))
		rec.SetTag("Player1", c.red)
		rec.SetTag("Player2", c.yellow)
		rec.AddMoves(st.Moves())
		rec.AddResult(winner)
		if err := os.WriteFile(c.out, []byte(rec.Render()), 0644); err != nil {
			klog.Errorf("write %s: %v", c.out, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func (c *Command) glyphs() *cli.Glyphs {
	switch {
	case c.color:
		return &cli.ColorGlyphs
	case c.unicode:
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

func (c *Command) parsePlayer(in *bufio.Reader, s string, b *connect4.Board, piece connect4.Piece) (ai.Player, error) {
	if s == "human" {
		return cli.NewHumanPlayer(os.Stdout, in, b), nil
	}
	p, err := opt.NewPlayer(s, b, piece, c.depth)
	if err != nil {
		return nil, errors.Wrap(err, "parse player")
	}
	return p, nil
}
