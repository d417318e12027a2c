package selfplay

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/cmd/internal/opt"
	"github.com/nelhage/connect4/connect4"
)

type Config struct {
	Games int

	Verbose bool

	Board  connect4.Config
	P1, P2 string
	// Depth is the search depth of a bare "minimax" player.
	Depth int

	Swap    bool
	Threads int
	Seed    int64
	// Cutoff ends a game undecided after this many plies; 0 plays
	// until the board is full.
	Cutoff int
}

type Stats struct {
	Players [2]struct {
		Wins       int
		RedWins    int
		YellowWins int
	}
	Red, Yellow int
	Ties        int
	Cutoff      int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.Red + s.Yellow + s.Ties + s.Cutoff
}

type gameSpec struct {
	c       *Config
	i       int
	seed    int64
	p1color connect4.Piece
}

type Result struct {
	spec    gameSpec
	Index   int
	P1Color connect4.Piece
	Board   *connect4.Board
	Moves   []int
	Winner  connect4.Piece
}

// Red and Yellow return the player specs that played each colour.
func (r *Result) Red() string {
	if r.P1Color == connect4.Red {
		return r.spec.c.P1
	}
	return r.spec.c.P2
}

func (r *Result) Yellow() string {
	if r.P1Color == connect4.Red {
		return r.spec.c.P2
	}
	return r.spec.c.P1
}

// Simulate plays every configured game on c.Threads workers and
// tallies the results. Games are returned in the order they finish.
func Simulate(ctx context.Context, c *Config) (Stats, error) {
	if c.Threads < 1 {
		c.Threads = 1
	}
	var st Stats
	grp, ctx := errgroup.WithContext(ctx)
	gc := make(chan gameSpec)
	rc := make(chan Result)

	grp.Go(func() error {
		defer close(gc)
		r := rand.New(rand.NewSource(c.Seed))
		n := c.Games
		if c.Swap {
			n *= 2
		}
		for g := 0; g < n; g++ {
			p1color := connect4.Red
			if c.Swap && g%2 == 1 {
				p1color = connect4.Yellow
			}
			spec := gameSpec{c: c, i: g, seed: r.Int63(), p1color: p1color}
			select {
			case gc <- spec:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for i := 0; i < c.Threads; i++ {
		grp.Go(func() error {
			return worker(ctx, gc, rc)
		})
	}
	var err error
	done := make(chan struct{})
	go func() {
		err = grp.Wait()
		close(rc)
		close(done)
	}()

	for r := range rc {
		st.record(r)
	}
	<-done
	return st, err
}

func (st *Stats) record(r Result) {
	if r.spec.c.Verbose {
		klog.Infof("game n=%d plies=%d p1=%s winner=%s",
			r.Index, len(r.Moves), r.P1Color, r.Winner)
	}
	switch {
	case r.Winner == connect4.Red:
		st.Red++
	case r.Winner == connect4.Yellow:
		st.Yellow++
	case r.Board.Full():
		st.Ties++
	default:
		st.Cutoff++
	}
	if r.Winner != connect4.Empty {
		pst := &st.Players[0]
		if r.Winner != r.P1Color {
			pst = &st.Players[1]
		}
		if r.Winner == connect4.Red {
			pst.RedWins++
		} else {
			pst.YellowWins++
		}
		pst.Wins++
	}
	st.Games = append(st.Games, r)
}

func worker(ctx context.Context, games <-chan gameSpec, out chan<- Result) error {
	for g := range games {
		r, err := play(ctx, g)
		if err != nil {
			return errors.Wrapf(err, "game %d", g.i)
		}
		select {
		case out <- r:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func play(ctx context.Context, g gameSpec) (Result, error) {
	b := connect4.New(g.c.Board)
	r := rand.New(rand.NewSource(g.seed))
	red, yellow := g.c.P1, g.c.P2
	if g.p1color != connect4.Red {
		red, yellow = yellow, red
	}
	rp, err := newPlayer(red, b, connect4.Red, g.c.Depth, r.Int63())
	if err != nil {
		return Result{}, err
	}
	yp, err := newPlayer(yellow, b, connect4.Yellow, g.c.Depth, r.Int63())
	if err != nil {
		return Result{}, err
	}

	res := Result{spec: g, Index: g.i, P1Color: g.p1color, Board: b}
	for g.c.Cutoff == 0 || len(res.Moves) < g.c.Cutoff {
		if over, winner := b.GameOver(); over {
			res.Winner = winner
			break
		}
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		p := rp
		if b.ToMove() == connect4.Yellow {
			p = yp
		}
		col, err := p.GetMove(ctx)
		if err != nil {
			return Result{}, err
		}
		if err := b.Drop(col, b.ToMove()); err != nil {
			return Result{}, err
		}
		res.Moves = append(res.Moves, col)
	}
	if _, winner := b.GameOver(); winner != connect4.Empty {
		res.Winner = winner
	}
	return res, nil
}

// newPlayer seeds unseeded random strategies from the game's generator
// so that a run is reproducible from its -seed.
func newPlayer(spec string, b *connect4.Board, piece connect4.Piece, depth int, seed int64) (ai.Player, error) {
	if !strings.Contains(spec, ":") && (spec == "random" || spec == "rand" || spec == "simple") {
		spec = fmt.Sprintf("%s:%d", spec, seed&(1<<62-1)|1)
	}
	return opt.NewPlayer(spec, b, piece, depth)
}
