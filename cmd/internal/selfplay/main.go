package selfplay

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"golang.org/x/net/context"
	"k8s.io/klog/v2"

	"github.com/nelhage/connect4/cmd/internal/config"
	"github.com/nelhage/connect4/connect4"
	"github.com/nelhage/connect4/logs"
	"github.com/nelhage/connect4/notation"
)

type Command struct {
	Env *config.Config

	rows, columns int
	p1            string
	p2            string
	depth         int
	seed          int64

	games  int
	cutoff int
	swap   bool

	threads int

	out      string
	summary  string
	db       string
	dbDriver string
	verbose  bool
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two AIs against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	env := c.Env
	if env == nil {
		env = config.FromEnv()
	}
	flags.IntVar(&c.rows, "rows", env.Rows, "board rows")
	flags.IntVar(&c.columns, "columns", env.Columns, "board columns")
	flags.StringVar(&c.p1, "p1", "minimax", "player1")
	flags.StringVar(&c.p2, "p2", "simple", "player2")
	flags.IntVar(&c.depth, "depth", env.Depth, "search depth for a bare \"minimax\" player")

	flags.Int64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.games, "games", 10, "number of games to play per color")
	flags.IntVar(&c.cutoff, "cutoff", 0, "cut games off after how many plies (0 for none)")
	flags.BoolVar(&c.swap, "swap", true, "swap colors each game")
	flags.IntVar(&c.threads, "threads", 4, "number of parallel threads")
	flags.StringVar(&c.out, "out", "", "directory to write game records to")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.StringVar(&c.db, "db", env.DB, "record games in this database")
	flags.StringVar(&c.dbDriver, "db-driver", env.DBDriver, "database driver (sqlite3|postgres)")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}
	board := connect4.Config{Rows: c.rows, Columns: c.columns}
	if err := board.Validate(); err != nil {
		klog.Errorf("board: %v", err)
		return subcommands.ExitUsageError
	}

	cfg := &Config{
		Games:   c.games,
		Verbose: c.verbose,
		Board:   board,
		P1:      c.p1,
		P2:      c.p2,
		Depth:   c.depth,
		Swap:    c.swap,
		Threads: c.threads,
		Seed:    c.seed,
		Cutoff:  c.cutoff,
	}

	start := time.Now()
	st, err := Simulate(ctx, cfg)
	if err != nil {
		klog.Errorf("selfplay: %v", err)
		return subcommands.ExitFailure
	}

	if c.out != "" {
		if c.summary == "" {
			c.summary = path.Join(c.out, "summary.json")
		}
		for i := range st.Games {
			if err := writeGame(c.out, &st.Games[i]); err != nil {
				klog.Errorf("write game: %v", err)
			}
		}
	}
	if c.summary != "" {
		if err := c.writeSummary(c.summary, &st); err != nil {
			klog.Errorf("writing summary: %v", err)
		}
	}
	if c.db != "" {
		if err := storeGames(c.dbDriver, c.db, st.Games); err != nil {
			klog.Errorf("store games: %v", err)
			return subcommands.ExitFailure
		}
	}

	klog.Infof("done games=%d seed=%d ties=%d cutoff=%d red=%d yellow=%d time=%s",
		st.Count(), c.seed, st.Ties, st.Cutoff, st.Red, st.Yellow, time.Since(start))
	writeTable(os.Stderr, &st)
	return subcommands.ExitSuccess
}

func writeTable(out *os.File, st *Stats) {
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\tred\tyellow\tsum\n")
	fmt.Fprintf(tw, "p1\t%d\t%d\t%d\n", st.Players[0].RedWins, st.Players[0].YellowWins, st.Players[0].Wins)
	fmt.Fprintf(tw, "p2\t%d\t%d\t%d\n", st.Players[1].RedWins, st.Players[1].YellowWins, st.Players[1].Wins)
	fmt.Fprintf(tw, "sum\t%d\t%d\t%d\n",
		st.Players[0].RedWins+st.Players[1].RedWins,
		st.Players[0].YellowWins+st.Players[1].YellowWins,
		st.Players[0].Wins+st.Players[1].Wins,
	)
	tw.Flush()
}

// Record renders a finished game with its player and result tags.
func (r *Result) Record() *notation.Record {
	rec := &notation.Record{}
	rec.SetTag("Size", notation.FormatSize(r.Board.Config()))
	rec.SetTag("Player1", r.Red())
	rec.SetTag("Player2", r.Yellow())
	rec.AddMoves(r.Moves)
	if over, _ := r.Board.GameOver(); over {
		rec.AddResult(r.Winner)
	}
	return rec
}

func writeGame(d string, r *Result) error {
	if err := os.MkdirAll(d, 0755); err != nil {
		return err
	}
	p := path.Join(d, fmt.Sprintf("%d.txt", r.Index))
	return os.WriteFile(p, []byte(r.Record().Render()), 0644)
}

func storeGames(driver, dsn string, games []Result) error {
	repo, err := logs.Open(driver, dsn)
	if err != nil {
		return err
	}
	defer repo.Close()
	var gs []*logs.Game
	for i := range games {
		gs = append(gs, logGame(&games[i]))
	}
	return repo.InsertGames(gs)
}

func logGame(r *Result) *logs.Game {
	cfg := r.Board.Config()
	g := logs.Game{
		Rows:     cfg.Rows,
		Columns:  cfg.Columns,
		Player1:  r.Red(),
		Player2:  r.Yellow(),
		Result:   "*",
		Moves:    len(r.Moves),
		MoveList: notation.FormatMoves(r.Moves),
	}
	if over, _ := r.Board.GameOver(); over {
		g.Result = notation.FormatResult(r.Winner)
	}
	if r.Winner != connect4.Empty {
		g.Winner = r.Winner.String()
	}
	return logs.NewGame(g)
}

type Summary struct {
	Cmdline []string
	Player1 string
	Player2 string
	Seed    int64
	Stats   *Stats
}

func (c *Command) writeSummary(path string, stats *Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	summary := Summary{
		Cmdline: os.Args,
		Player1: c.p1,
		Player2: c.p2,
		Seed:    c.seed,
		Stats:   stats,
	}

	bs, err := json.MarshalIndent(&summary, "", "  ")
	if err != nil {
		return err
	}
	_, err = f.Write(bs)
	return err
}
