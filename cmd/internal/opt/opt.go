package opt

import (
	"encoding/json"
	"flag"

	"github.com/pkg/errors"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/connect4"
)

type Minimax struct {
	Depth   int
	Weights string
	Preset  string
	NoPrune bool
}

func (o *Minimax) AddFlags(flags *flag.FlagSet, depth int) {
	flags.IntVar(&o.Depth, "depth", depth, "minimax depth")
	flags.StringVar(&o.Preset, "preset", "conservative", "evaluation weights preset (aggressive|conservative)")
	flags.StringVar(&o.Weights, "weights", "", "JSON-encoded evaluation weights, overriding terms of -preset")
	flags.BoolVar(&o.NoPrune, "no-prune", false, "disable alpha-beta pruning")
}

func (o *Minimax) BuildConfig(piece connect4.Piece) (ai.MinimaxConfig, error) {
	w, err := o.weights()
	if err != nil {
		return ai.MinimaxConfig{}, err
	}
	switch {
	case o.Depth == 0:
		return ai.MinimaxConfig{}, errors.New("depth 0 does not search; use -evaluate for the static score")
	case o.Depth < 0:
		return ai.MinimaxConfig{}, errors.Errorf("bad depth %d", o.Depth)
	}
	return ai.MinimaxConfig{
		Piece:   piece,
		Depth:   o.Depth,
		Weights: w,
		NoPrune: o.NoPrune,
	}, nil
}

// weights resolves -preset, then lets -weights override individual
// terms of it.
func (o *Minimax) weights() (*ai.Weights, error) {
	base, err := Preset(o.Preset)
	if err != nil {
		return nil, err
	}
	if o.Weights == "" {
		return base, nil
	}
	w := *base
	if err := json.Unmarshal([]byte(o.Weights), &w); err != nil {
		return nil, errors.Wrap(err, "parse weights")
	}
	return &w, nil
}

// Preset looks up a named weight table.
func Preset(name string) (*ai.Weights, error) {
	switch name {
	case "", "conservative":
		return &ai.ConservativeWeights, nil
	case "aggressive":
		return &ai.AggressiveWeights, nil
	}
	return nil, errors.Errorf("unknown weights preset %q", name)
}
