package ai

import (
	"golang.org/x/net/context"

	"github.com/nelhage/connect4/connect4"
)

// Player picks a column for the board it was constructed with. GetMove
// never modifies that board; the caller plays the returned column.
type Player interface {
	GetMove(ctx context.Context) (int, error)
}

const (
	// ErrNoLegalMoves is returned when asked for a move on a full
	// board.
	ErrNoLegalMoves connect4.Error = "no legal moves"
	// ErrGameOver is returned when asked for a move on a board
	// where a player has already won.
	ErrGameOver connect4.Error = "game is over"
)
