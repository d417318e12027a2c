package analyze

import (
	"flag"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/pkg/errors"
	"golang.org/x/net/context"
	"k8s.io/klog/v2"

	"github.com/nelhage/connect4/cmd/internal/config"
	"github.com/nelhage/connect4/cmd/internal/opt"
	"github.com/nelhage/connect4/connect4"
	"github.com/nelhage/connect4/notation"
)

type Command struct {
	Env *config.Config

	/* Output options */
	quiet   bool
	explain bool
	eval    bool

	/* Options to select the position */
	move      int
	variation string
	piece     string

	/* Options for the minimax engine */
	mmopt opt.Minimax
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Evaluate a position or the end of a game record" }
func (*Command) Usage() string {
	return `analyze [options] POSITION|FILE

Evaluate a position with the minimax engine. The argument is either a
position such as "x7/x7/x7/x7/x7/x2,1,x4" or a game record file.

By default the final position of a record is analyzed; use -move to
select an earlier one and -variation to play additional moves first.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	env := c.Env
	if env == nil {
		env = config.FromEnv()
	}
	flags.BoolVar(&c.quiet, "quiet", false, "don't print board diagrams")
	flags.BoolVar(&c.explain, "explain", false, "explain scoring")
	flags.BoolVar(&c.eval, "evaluate", false, "only show static evaluation")

	flags.IntVar(&c.move, "move", -1, "number of moves of the record to replay (-1 for all)")
	flags.StringVar(&c.variation, "variation", "", "apply the listed moves after the given position")
	flags.StringVar(&c.piece, "piece", "", "piece to analyze for (1|2, default: side to move)")

	c.mmopt.AddFlags(flags, env.Depth)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() != 1 {
		klog.Error("analyze: need exactly one position or file")
		return subcommands.ExitUsageError
	}
	b, err := c.load(flag.Arg(0))
	if err != nil {
		klog.Errorf("analyze: %v", err)
		return subcommands.ExitFailure
	}
	piece := b.ToMove()
	if c.piece != "" {
		if piece, err = notation.ParsePiece(c.piece); err != nil {
			klog.Errorf("-piece: %v", err)
			return subcommands.ExitUsageError
		}
	}
	cfg, err := c.mmopt.BuildConfig(piece)
	if err != nil {
		klog.Errorf("analyze: %v", err)
		return subcommands.ExitUsageError
	}
	a := &Analysis{
		Out:     os.Stdout,
		Quiet:   c.quiet,
		Explain: c.explain,
		Static:  c.eval,
	}
	a.Run(b, cfg)
	return subcommands.ExitSuccess
}

func (c *Command) load(arg string) (*connect4.Board, error) {
	var b *connect4.Board
	if strings.Contains(arg, "/") && !fileExists(arg) {
		var err error
		if b, err = notation.ParsePosition(arg); err != nil {
			return nil, err
		}
	} else {
		rec, err := notation.ParseFile(arg)
		if err != nil {
			return nil, errors.Wrap(err, "parse")
		}
		if b, err = rec.PositionAtMove(c.move); err != nil {
			return nil, errors.Wrap(err, "find move")
		}
	}
	if c.variation != "" {
		for _, s := range strings.Fields(c.variation) {
			col, err := notation.ParseMove(s)
			if err != nil {
				return nil, errors.Wrap(err, "-variation")
			}
			if err := b.Drop(col, b.ToMove()); err != nil {
				return nil, errors.Wrapf(err, "-variation: %s", s)
			}
		}
	}
	return b, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
