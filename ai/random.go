package ai

import (
	"math/rand"
	"time"

	"golang.org/x/net/context"

	"github.com/nelhage/connect4/connect4"
)

// RandomAI plays a uniformly random column with room.
type RandomAI struct {
	b *connect4.Board
	r *rand.Rand
}

func NewRandom(b *connect4.Board, seed int64) *RandomAI {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomAI{
		b: b,
		r: rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomAI) GetMove(ctx context.Context) (int, error) {
	if r.b.Full() {
		return connect4.NoColumn, ErrNoLegalMoves
	}
	col := connect4.NoColumn
	for !r.b.IsEmptySlotIn(col) {
		col = r.r.Intn(r.b.Columns())
	}
	return col, nil
}
