package connect4

// Window is a line of WindowLength consecutive cells.
type Window [WindowLength]Piece

// Count returns the number of cells in w holding p.
func (w *Window) Count(p Piece) int {
	n := 0
	for _, c := range w {
		if c == p {
			n++
		}
	}
	return n
}

// ScoreFunc scores a single window for piece p. center is set when
// the window contains a cell of the board's center column.
type ScoreFunc func(w Window, p Piece, center bool) int

type Direction int

const (
	Horizontal Direction = iota
	Vertical
	Diagonal     // up and to the right
	AntiDiagonal // up and to the left
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	case AntiDiagonal:
		return "anti-diagonal"
	}
	return "unknown"
}

func (d Direction) delta() (dr, dc int) {
	switch d {
	case Horizontal:
		return 0, 1
	case Vertical:
		return 1, 0
	case Diagonal:
		return 1, 1
	default:
		return 1, -1
	}
}

// Windows calls fn for every window on the board: horizontal rows
// first, then vertical, then both diagonals.
func (b *Board) Windows(fn func(d Direction, w Window, center bool)) {
	center := b.Center()
	for _, d := range [...]Direction{Horizontal, Vertical, Diagonal, AntiDiagonal} {
		dr, dc := d.delta()
		for row := 0; row+dr*(WindowLength-1) < b.cfg.Rows; row++ {
			for col := 0; col < b.cfg.Columns; col++ {
				end := col + dc*(WindowLength-1)
				if end < 0 || end >= b.cfg.Columns {
					continue
				}
				var w Window
				inCenter := false
				for i := range w {
					c := col + i*dc
					w[i] = b.At(row+i*dr, c)
					if c == center {
						inCenter = true
					}
				}
				fn(d, w, inCenter)
			}
		}
	}
}

// EvaluateWindows scores every window on the board for p with fn and
// returns the total.
func (b *Board) EvaluateWindows(p Piece, fn ScoreFunc) int64 {
	var total int64
	b.Windows(func(_ Direction, w Window, center bool) {
		total += int64(fn(w, p, center))
	})
	return total
}
