package ai

import (
	"fmt"
	"time"

	"golang.org/x/net/context"
	"k8s.io/klog/v2"

	"github.com/nelhage/connect4/connect4"
)

const (
	DefaultDepth = 4

	inf = MaxEval + 1
)

type MinimaxConfig struct {
	// Piece is the piece the AI plays. Defaults to Yellow.
	Piece connect4.Piece
	// Depth is the number of plies searched. Zero selects
	// DefaultDepth; there is no depth-0 search, use Evaluate for a
	// static score.
	Depth int
	// Weights score positions at the depth limit. Defaults to
	// ConservativeWeights.
	Weights *Weights

	// NoPrune disables alpha-beta cutoffs.
	NoPrune bool
}

type Stats struct {
	Depth     int
	Visited   uint64
	Evaluated uint64
	Terminal  uint64
	Cutoffs   uint64
	Elapsed   time.Duration
}

// MinimaxAI searches a fixed number of plies with alpha-beta pruning.
type MinimaxAI struct {
	cfg      MinimaxConfig
	b        *connect4.Board
	me, them connect4.Piece
	score    connect4.ScoreFunc

	st Stats
}

func NewMinimax(b *connect4.Board, cfg MinimaxConfig) *MinimaxAI {
	if cfg.Piece == connect4.Empty {
		cfg.Piece = connect4.Yellow
	}
	if !cfg.Piece.Valid() {
		panic(fmt.Sprintf("NewMinimax: bad piece %d", cfg.Piece))
	}
	if cfg.Depth == 0 {
		cfg.Depth = DefaultDepth
	}
	if cfg.Weights == nil {
		cfg.Weights = &ConservativeWeights
	}
	return &MinimaxAI{
		cfg:   cfg,
		b:     b,
		me:    cfg.Piece,
		them:  cfg.Piece.Flip(),
		score: MakeScorer(cfg.Weights),
	}
}

func (m *MinimaxAI) Config() MinimaxConfig {
	return m.cfg
}

func (m *MinimaxAI) GetMove(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return connect4.NoColumn, err
	}
	if m.b.Full() {
		return connect4.NoColumn, ErrNoLegalMoves
	}
	col, _, _ := m.Analyze()
	if col == connect4.NoColumn {
		return col, ErrGameOver
	}
	return col, nil
}

// Analyze searches the current position and returns the chosen column
// and its value. The column is NoColumn when the position is already
// terminal.
func (m *MinimaxAI) Analyze() (int, int64, Stats) {
	m.st = Stats{Depth: m.cfg.Depth}
	scratch := m.b.Clone()
	start := time.Now()
	col, v := m.minimax(scratch, m.cfg.Depth, -inf, inf, true)
	m.st.Elapsed = time.Since(start)
	if klog.V(1).Enabled() {
		klog.Infof("[minimax] piece=%s depth=%d col=%d val=%d time=%s visited=%d evaluated=%d terminal=%d cut=%d",
			m.me, m.cfg.Depth, col, v, m.st.Elapsed,
			m.st.Visited, m.st.Evaluated, m.st.Terminal, m.st.Cutoffs)
	}
	return col, v, m.st
}

// evaluate scores a leaf from the point of view of the maximizing
// piece.
func (m *MinimaxAI) evaluate(b *connect4.Board, terminal bool) int64 {
	m.st.Evaluated++
	if !terminal {
		return b.EvaluateWindows(m.me, m.score)
	}
	m.st.Terminal++
	switch {
	case b.IsMoveWinning(m.me):
		return MaxEval
	case b.IsMoveWinning(m.them):
		return MinEval
	}
	return 0
}

// minimax searches b to depth plies. Each child is played on b and
// taken back before the next, so every call sees exactly the moves of
// its ancestors. Ties keep the lowest column.
func (m *MinimaxAI) minimax(b *connect4.Board, depth int, α, β int64, maximizing bool) (int, int64) {
	terminal := b.IsTerminal(m.me, m.them)
	if depth == 0 || terminal {
		return connect4.NoColumn, m.evaluate(b, terminal)
	}
	m.st.Visited++

	best := connect4.NoColumn
	piece := m.me
	value := -inf
	if !maximizing {
		piece = m.them
		value = inf
	}
	for col := 0; col < b.Columns(); col++ {
		if !b.IsEmptySlotIn(col) {
			continue
		}
		if err := b.Drop(col, piece); err != nil {
			panic(fmt.Sprintf("minimax: drop %d: %v", col, err))
		}
		_, v := m.minimax(b, depth-1, α, β, !maximizing)
		if err := b.Undo(col); err != nil {
			panic(fmt.Sprintf("minimax: undo %d: %v", col, err))
		}

		if maximizing {
			if v > value {
				value, best = v, col
			}
			α = max(α, value)
		} else {
			if v < value {
				value, best = v, col
			}
			β = min(β, value)
		}
		if α >= β && !m.cfg.NoPrune {
			m.st.Cutoffs++
			break
		}
	}
	return best, value
}
