package ai

import (
	"math"
	"math/rand"
	"time"

	"golang.org/x/net/context"
	"k8s.io/klog/v2"

	"github.com/nelhage/connect4/connect4"
)

// SimpleAI looks one move ahead: it plays the column whose resulting
// board scores best under its weights.
type SimpleAI struct {
	b       *connect4.Board
	piece   connect4.Piece
	weights *Weights
	r       *rand.Rand
}

func NewSimple(b *connect4.Board, piece connect4.Piece, seed int64) *SimpleAI {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SimpleAI{
		b:       b,
		piece:   piece,
		weights: &AggressiveWeights,
		r:       rand.New(rand.NewSource(seed)),
	}
}

// WithWeights replaces the scoring table.
func (s *SimpleAI) WithWeights(w *Weights) *SimpleAI {
	s.weights = w
	return s
}

func (s *SimpleAI) GetMove(ctx context.Context) (int, error) {
	open := s.b.ValidLocations()
	if len(open) == 0 {
		return connect4.NoColumn, ErrNoLegalMoves
	}
	best := open[s.r.Intn(len(open))]
	bestScore := int64(math.MinInt64)

	scratch := s.b.Clone()
	for _, col := range open {
		if err := scratch.Drop(col, s.piece); err != nil {
			return connect4.NoColumn, err
		}
		score := Evaluate(s.weights, scratch, s.piece)
		if err := scratch.Undo(col); err != nil {
			return connect4.NoColumn, err
		}
		klog.V(2).Infof("[simple] piece=%s col=%d score=%d", s.piece, col, score)
		if score > bestScore {
			bestScore = score
			best = col
		}
	}
	return best, nil
}
