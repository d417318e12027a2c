package connect4

import "testing"

func TestWindowsCount(t *testing.T) {
	b := New(DefaultConfig)
	counts := map[Direction]int{}
	centers := 0
	b.Windows(func(d Direction, w Window, center bool) {
		counts[d]++
		if center {
			centers++
		}
		if w.Count(Empty) != WindowLength {
			t.Errorf("non-empty window on empty board: %v", w)
		}
	})
	want := map[Direction]int{
		Horizontal:   24,
		Vertical:     21,
		Diagonal:     12,
		AntiDiagonal: 12,
	}
	for d, n := range want {
		if counts[d] != n {
			t.Errorf("%s: %d windows, want %d", d, counts[d], n)
		}
	}
	// Every horizontal and diagonal window on a 7-wide board crosses
	// column 3; of the vertical ones only column 3's own do.
	if centers != 24+3+12+12 {
		t.Errorf("center windows=%d", centers)
	}
}

func TestEvaluateWindows(t *testing.T) {
	b := New(DefaultConfig)
	if err := b.Drop(3, Red); err != nil {
		t.Fatal(err)
	}
	var seen, centered int
	total := b.EvaluateWindows(Red, func(w Window, p Piece, center bool) int {
		if p != Red {
			t.Errorf("scored for %s", p)
		}
		if w.Count(Red) == 1 {
			seen++
			if center {
				centered++
			}
		}
		return w.Count(p)
	})
	// (0,3) is in 4 horizontal, 1 vertical and 1 window on each
	// diagonal.
	if seen != 7 || centered != 7 || total != 7 {
		t.Errorf("seen=%d centered=%d total=%d", seen, centered, total)
	}
}

func TestWindowCount(t *testing.T) {
	w := Window{Red, Red, Empty, Yellow}
	if w.Count(Red) != 2 || w.Count(Empty) != 1 || w.Count(Yellow) != 1 {
		t.Errorf("Count: %v", w)
	}
}
