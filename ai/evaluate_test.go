package ai

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nelhage/connect4/c4test"
	"github.com/nelhage/connect4/connect4"
)

const (
	e = connect4.Empty
	r = connect4.Red
	y = connect4.Yellow
)

func TestScoreWindow(t *testing.T) {
	cases := []struct {
		win          connect4.Window
		center       bool
		aggr, conser int
	}{
		{connect4.Window{r, r, r, r}, false, 100, 100},
		{connect4.Window{r, r, r, r}, true, 124, 112},
		{connect4.Window{r, r, e, r}, false, 10, 5},
		{connect4.Window{r, r, e, r}, true, 28, 14},
		{connect4.Window{e, r, r, e}, false, 5, 2},
		{connect4.Window{e, r, r, e}, true, 17, 8},
		{connect4.Window{y, y, e, y}, false, -80, -5},
		{connect4.Window{y, y, e, y}, true, -80, -5},
		{connect4.Window{r, y, y, y}, true, 6, 3},
		{connect4.Window{r, y, y, e}, false, 0, 0},
		{connect4.Window{r, e, e, e}, false, 0, 0},
		{connect4.Window{r, e, e, e}, true, 6, 3},
		{connect4.Window{r, r, r, y}, false, 0, 0},
		{connect4.Window{e, e, e, e}, true, 0, 0},
	}
	for i, tc := range cases {
		if got := ScoreWindow(&AggressiveWeights, tc.win, r, tc.center); got != tc.aggr {
			t.Errorf("%d: aggressive(%v, center=%v)=%d want %d", i, tc.win, tc.center, got, tc.aggr)
		}
		if got := ScoreWindow(&ConservativeWeights, tc.win, r, tc.center); got != tc.conser {
			t.Errorf("%d: conservative(%v, center=%v)=%d want %d", i, tc.win, tc.center, got, tc.conser)
		}
	}
}

func TestScoreWindowSymmetric(t *testing.T) {
	win := connect4.Window{y, y, e, y}
	if got := AggressiveScore(win, y, false); got != 10 {
		t.Errorf("yellow three=%d", got)
	}
	if got := ConservativeScore(win, r, false); got != -5 {
		t.Errorf("red facing three=%d", got)
	}
}

func TestEvaluateEmpty(t *testing.T) {
	b := connect4.New(connect4.DefaultConfig)
	for _, w := range []*Weights{&AggressiveWeights, &ConservativeWeights} {
		if v := Evaluate(w, b, r); v != 0 {
			t.Errorf("empty board evaluates to %d", v)
		}
	}
}

func TestEvaluateCenter(t *testing.T) {
	center := c4test.Board(connect4.DefaultConfig, "d")
	side := c4test.Board(connect4.DefaultConfig, "c")
	// (0,3) lies in seven windows, all crossing the center; (0,2)
	// lies in five, four of which do.
	if v := Evaluate(&ConservativeWeights, center, r); v != 21 {
		t.Errorf("center=%d", v)
	}
	if v := Evaluate(&ConservativeWeights, side, r); v != 12 {
		t.Errorf("side=%d", v)
	}
	if v := Evaluate(&AggressiveWeights, center, r); v != 42 {
		t.Errorf("aggressive center=%d", v)
	}
}

func TestExplainScore(t *testing.T) {
	b := c4test.Position("x7/x7/x7/x7/x7/1,1,1,x4")
	var out bytes.Buffer
	ExplainScore(&ConservativeWeights, &out, b, y)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[1], "horizontal") || !strings.HasPrefix(lines[5], "total") {
		t.Errorf("bad layout:\n%s", out.String())
	}
	if !strings.HasSuffix(lines[5], "-5") {
		t.Errorf("total line %q", lines[5])
	}
}
