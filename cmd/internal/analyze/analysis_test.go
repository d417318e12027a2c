package analyze

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/c4test"
	"github.com/nelhage/connect4/connect4"
)

func TestAnalysisBlocks(t *testing.T) {
	var out bytes.Buffer
	a := &Analysis{Out: &out, Quiet: true}
	a.Run(c4test.Position("x7/x7/x7/x7/x7/1,1,1,x4"), ai.MinimaxConfig{Piece: connect4.Yellow, Depth: 3})
	assert.Contains(t, out.String(), "AI analysis (yellow, depth 3):")
	assert.Contains(t, out.String(), " move=d\n")
	assert.NotContains(t, out.String(), "Resulting position")
}

func TestAnalysisTerminal(t *testing.T) {
	var out bytes.Buffer
	a := &Analysis{Out: &out, Quiet: true}
	a.Run(c4test.Position("x7/x7/x7/x7/x7/2,2,2,2,1,1,1"), ai.MinimaxConfig{Piece: connect4.Red})
	assert.Contains(t, out.String(), " move=none\n")
	assert.Contains(t, out.String(), " value=-100000000\n")
}

func TestAnalysisStatic(t *testing.T) {
	var out bytes.Buffer
	a := &Analysis{Out: &out, Quiet: true, Static: true}
	a.Run(c4test.Board(connect4.DefaultConfig, "d"), ai.MinimaxConfig{Piece: connect4.Red})
	assert.Equal(t, " val=21\n", out.String())
}

func TestAnalysisRender(t *testing.T) {
	var out bytes.Buffer
	a := &Analysis{Out: &out}
	a.Run(connect4.New(connect4.DefaultConfig), ai.MinimaxConfig{Piece: connect4.Red, Depth: 1})
	assert.Contains(t, out.String(), "Resulting position:")
	assert.Contains(t, out.String(), "1. |. . . R . . .|")
}

func TestLoad(t *testing.T) {
	c := &Command{move: -1}
	b, err := c.load("x7/x7/x7/x7/x7/x3,1,x3")
	require.NoError(t, err)
	assert.Equal(t, 1, b.Moves())

	path := filepath.Join(t.TempDir(), "game.txt")
	require.NoError(t, os.WriteFile(path, []byte("[Size \"6x7\"]\n\n1. d d 2. c\n"), 0644))
	b, err = c.load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Moves())

	c = &Command{move: 1, variation: "e"}
	b, err = c.load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Moves())
	assert.Equal(t, connect4.Yellow, b.At(0, 4))

	c = &Command{move: -1, variation: "z"}
	_, err = c.load(path)
	assert.Error(t, err)
}
