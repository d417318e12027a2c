package symmetry

import (
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/nelhage/connect4/c4test"
	"github.com/nelhage/connect4/connect4"
	"github.com/nelhage/connect4/notation"
)

func TestMirrorColumn(t *testing.T) {
	for col, want := range []int{6, 5, 4, 3, 2, 1, 0} {
		if got := MirrorColumn(7, col); got != want {
			t.Errorf("MirrorColumn(7, %d) = %d != %d", col, got, want)
		}
	}
}

func TestMirror(t *testing.T) {
	b := c4test.Position("x7/x7/x7/x7/1,x6/1,2,x5")
	m := Mirror(b)
	if got, want := notation.FormatPosition(m), "x7/x7/x7/x7/x6,1/x5,2,1"; got != want {
		t.Fatalf("Mirror = %q != %q", got, want)
	}
	if m.Moves() != b.Moves() {
		t.Errorf("mirror has %d moves, want %d", m.Moves(), b.Moves())
	}
	if back := notation.FormatPosition(Mirror(m)); back != notation.FormatPosition(b) {
		t.Errorf("mirror is not an involution: %q", back)
	}
}

func TestSymmetric(t *testing.T) {
	cases := []struct {
		moves string
		want  bool
	}{
		{"", true},
		{"d", true},
		{"d d", true},
		{"c", false},
		{"c e", false},
		{"a g", false},
	}
	for _, tc := range cases {
		b := c4test.Board(connect4.DefaultConfig, tc.moves)
		if got := Symmetric(b); got != tc.want {
			t.Errorf("Symmetric(%q) = %v != %v", tc.moves, got, tc.want)
		}
	}
}

func TestCanonical(t *testing.T) {
	left := c4test.Board(connect4.DefaultConfig, "a")
	right := c4test.Board(connect4.DefaultConfig, "g")

	cl, ml := Canonical(left)
	cr, mr := Canonical(right)
	if notation.FormatPosition(cl) != notation.FormatPosition(cr) {
		t.Fatalf("mirror images canonicalize differently: %q vs %q",
			notation.FormatPosition(cl), notation.FormatPosition(cr))
	}
	if ml == mr {
		t.Errorf("exactly one of a board and its mirror should be flipped")
	}

	center := c4test.Board(connect4.DefaultConfig, "d")
	if c, mirrored := Canonical(center); mirrored || c != center {
		t.Errorf("symmetric board was mirrored")
	}
}

func TestCanonicalMoves(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"", ""},
		{"a", "a"},
		{"g", "a"},
		{"d d", "d d"},
		{"g a", "a g"},
		{"e c", "c e"},
		{"d e c", "d c e"},
		{"d c e", "d c e"},
		{"d d e c b", "d d c e f"},
		{"f f b", "b b f"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			out, err := CanonicalMoves(connect4.DefaultConfig, c4test.Moves(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			if got := c4test.FormatMoves(out); got != tc.out {
				t.Fatalf("CanonicalMoves(%q) = %q != %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestCanonicalMovesIllegal(t *testing.T) {
	_, err := CanonicalMoves(connect4.DefaultConfig, c4test.Moves("a a a a a a a"))
	if err == nil {
		t.Fatal("expected an error for an overfull column")
	}
	if !errors.Is(err, connect4.ErrColumnFull) {
		t.Errorf("err = %v, want ErrColumnFull", err)
	}
	if errors.Cause(err) != connect4.ErrColumnFull {
		t.Errorf("Cause(%v) = %v", err, errors.Cause(err))
	}
	if !strings.HasPrefix(err.Error(), "canonical: move 6: a: ") {
		t.Errorf("err = %q", err)
	}
}
