package connect4

import "testing"

func BenchmarkDropUndo(b *testing.B) {
	bd := New(DefaultConfig)
	for i := 0; i < b.N; i++ {
		col := i % bd.Columns()
		if err := bd.Drop(col, Red); err != nil {
			b.Fatal(err)
		}
		if err := bd.Undo(col); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsTerminal(b *testing.B) {
	bd := New(DefaultConfig)
	for _, col := range []int{3, 3, 2, 4, 4, 2, 5, 1} {
		if err := bd.Drop(col, bd.ToMove()); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bd.IsTerminal(Red, Yellow)
	}
}

func BenchmarkEvaluateWindows(b *testing.B) {
	bd := New(DefaultConfig)
	for _, col := range []int{3, 3, 2, 4, 4, 2, 5, 1} {
		if err := bd.Drop(col, bd.ToMove()); err != nil {
			b.Fatal(err)
		}
	}
	score := func(w Window, p Piece, center bool) int {
		return w.Count(p)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bd.EvaluateWindows(Red, score)
	}
}
