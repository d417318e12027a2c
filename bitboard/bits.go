package bitboard

import "math/bits"

// Constants describes a column-major bitboard layout. Column c occupies
// bits [c*Height, (c+1)*Height); the top bit of each column is a
// sentinel that is never set, so shifts never carry a line from one
// column into the next.
type Constants struct {
	Rows, Columns uint
	Height        uint

	// Mask has every playable cell set.
	Mask uint64
}

// MaxBits is the number of cells (sentinels included) a layout may use.
const MaxBits = 64

func Fits(rows, columns uint) bool {
	return (rows+1)*columns <= MaxBits
}

func Precompute(rows, columns uint) Constants {
	c := Constants{
		Rows:    rows,
		Columns: columns,
		Height:  rows + 1,
	}
	for i := uint(0); i < columns; i++ {
		c.Mask |= ColumnMask(&c, i)
	}
	return c
}

func Bit(c *Constants, row, col uint) uint64 {
	return 1 << (col*c.Height + row)
}

func ColumnMask(c *Constants, col uint) uint64 {
	return ((1 << c.Rows) - 1) << (col * c.Height)
}

// HasFour reports whether b contains four set bits in a line, in any
// of the four directions.
func HasFour(c *Constants, b uint64) bool {
	for _, s := range [...]uint{1, c.Height, c.Height - 1, c.Height + 1} {
		m := b & (b >> s)
		if m&(m>>(2*s)) != 0 {
			return true
		}
	}
	return false
}

func Popcount(x uint64) int {
	return bits.OnesCount64(x)
}
