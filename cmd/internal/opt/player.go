package opt

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/connect4"
)

// NewPlayer builds a computer player for piece on b from a spec of the
// form NAME[:ARG]: "random[:seed]", "simple[:seed]" or
// "minimax[:depth]". A bare "minimax" searches to depth.
func NewPlayer(spec string, b *connect4.Board, piece connect4.Piece, depth int) (ai.Player, error) {
	name, arg, _ := strings.Cut(spec, ":")
	var n int64
	if arg != "" {
		var err error
		n, err = strconv.ParseInt(arg, 10, 64)
		if err != nil || n < 0 {
			return nil, errors.Errorf("bad argument in player %q", spec)
		}
	}
	switch name {
	case "random", "rand":
		return ai.NewRandom(b, n), nil
	case "simple":
		return ai.NewSimple(b, piece, n), nil
	case "minimax":
		if arg != "" {
			if n == 0 {
				return nil, errors.Errorf("bad depth in player %q", spec)
			}
			depth = int(n)
		}
		return ai.NewMinimax(b, ai.MinimaxConfig{
			Piece: piece,
			Depth: depth,
		}), nil
	}
	return nil, errors.Errorf("unknown player %q", spec)
}
