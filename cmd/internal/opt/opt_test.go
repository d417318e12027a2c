package opt

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/connect4"
)

func TestBuildConfig(t *testing.T) {
	var o Minimax
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	o.AddFlags(flags, 5)
	require.NoError(t, flags.Parse([]string{"-preset", "aggressive", "-no-prune"}))

	cfg, err := o.BuildConfig(connect4.Red)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Depth)
	assert.Equal(t, connect4.Red, cfg.Piece)
	assert.Same(t, &ai.AggressiveWeights, cfg.Weights)
	assert.True(t, cfg.NoPrune)
}

func TestBuildConfigWeights(t *testing.T) {
	o := Minimax{Depth: 2, Weights: `{"Four": 1000, "Three": 7, "Center": 1}`}
	cfg, err := o.BuildConfig(connect4.Yellow)
	require.NoError(t, err)
	assert.Equal(t, &ai.Weights{Four: 1000, Three: 7, Two: 2, BlockThree: 5, Center: 1}, cfg.Weights)
	assert.Equal(t, ai.Weights{Four: 100, Three: 5, Two: 2, BlockThree: 5, Center: 3}, ai.ConservativeWeights)

	o = Minimax{Depth: 2, Preset: "aggressive", Weights: `{"Three": 6}`}
	cfg, err = o.BuildConfig(connect4.Yellow)
	require.NoError(t, err)
	want := ai.AggressiveWeights
	want.Three = 6
	assert.Equal(t, &want, cfg.Weights)
	assert.Equal(t, 10, ai.AggressiveWeights.Three)

	o = Minimax{Depth: 2, Weights: `{`}
	_, err = o.BuildConfig(connect4.Yellow)
	assert.Error(t, err)

	o = Minimax{Depth: 2, Preset: "reckless"}
	_, err = o.BuildConfig(connect4.Yellow)
	assert.Error(t, err)
}

func TestBuildConfigDepthZero(t *testing.T) {
	var o Minimax
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	o.AddFlags(flags, 4)
	require.NoError(t, flags.Parse([]string{"-depth", "0"}))

	_, err := o.BuildConfig(connect4.Red)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-evaluate")

	o.Depth = -3
	_, err = o.BuildConfig(connect4.Red)
	assert.Error(t, err)
}

func TestNewPlayer(t *testing.T) {
	b := connect4.New(connect4.DefaultConfig)
	cases := []struct {
		spec string
		ok   bool
	}{
		{"random", true},
		{"rand:4", true},
		{"simple:9", true},
		{"minimax", true},
		{"minimax:3", true},
		{"minimax:x", false},
		{"minimax:0", false},
		{"simple:-1", false},
		{"human", false},
		{"mcts", false},
	}
	for _, tc := range cases {
		p, err := NewPlayer(tc.spec, b, connect4.Red, ai.DefaultDepth)
		if tc.ok {
			assert.NoError(t, err, tc.spec)
			assert.NotNil(t, p, tc.spec)
		} else {
			assert.Error(t, err, tc.spec)
		}
	}

	p, err := NewPlayer("minimax:3", b, connect4.Red, 6)
	require.NoError(t, err)
	mm := p.(*ai.MinimaxAI)
	assert.Equal(t, 3, mm.Config().Depth)
	assert.Equal(t, connect4.Red, mm.Config().Piece)
}

func TestNewPlayerDefaultDepth(t *testing.T) {
	b := connect4.New(connect4.DefaultConfig)
	p, err := NewPlayer("minimax", b, connect4.Yellow, 6)
	require.NoError(t, err)
	assert.Equal(t, 6, p.(*ai.MinimaxAI).Config().Depth)

	p, err = NewPlayer("minimax", b, connect4.Yellow, 0)
	require.NoError(t, err)
	assert.Equal(t, ai.DefaultDepth, p.(*ai.MinimaxAI).Config().Depth)
}
