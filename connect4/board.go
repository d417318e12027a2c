package connect4

import (
	"fmt"

	"github.com/nelhage/connect4/bitboard"
)

const (
	WindowLength = 4

	DefaultRows    = 6
	DefaultColumns = 7

	// NoColumn is returned where a column is expected but none
	// exists. IsEmptySlotIn(NoColumn) is always false.
	NoColumn = -1

	// MaxColumns is the widest board whose bitboard fits in a
	// uint64 with a sentinel row per column.
	MaxColumns = bitboard.MaxBits / (WindowLength + 1)
)

type Config struct {
	Rows    int
	Columns int
}

var DefaultConfig = Config{Rows: DefaultRows, Columns: DefaultColumns}

func (c Config) withDefaults() Config {
	if c.Rows == 0 {
		c.Rows = DefaultRows
	}
	if c.Columns == 0 {
		c.Columns = DefaultColumns
	}
	return c
}

func (c Config) Validate() error {
	c = c.withDefaults()
	if c.Rows < WindowLength || c.Columns < WindowLength {
		return fmt.Errorf("%w: %dx%d is smaller than a window", ErrBadConfig, c.Rows, c.Columns)
	}
	if !bitboard.Fits(uint(c.Rows), uint(c.Columns)) {
		return fmt.Errorf("%w: %dx%d does not fit in a bitboard", ErrBadConfig, c.Rows, c.Columns)
	}
	return nil
}

// Board is a Connect Four grid. Row 0 is the bottom row. Pieces are
// only added or removed at the top of a column, so every column is a
// contiguous run of pieces starting at row 0.
type Board struct {
	cfg Config
	c   bitboard.Constants

	red, yellow uint64
}

// New returns an empty board. Zero fields of cfg take their default
// values; New panics if the resulting configuration is invalid.
func New(cfg Config) *Board {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return &Board{
		cfg: cfg,
		c:   bitboard.Precompute(uint(cfg.Rows), uint(cfg.Columns)),
	}
}

// FromRows builds a board from rows listed bottom-first.
func FromRows(cfg Config, rows [][]Piece) (*Board, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(rows) != cfg.Rows {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrBadConfig, len(rows), cfg.Rows)
	}
	b := New(cfg)
	for r, row := range rows {
		if len(row) != cfg.Columns {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadConfig, r, len(row), cfg.Columns)
		}
		for col, p := range row {
			if p == Empty {
				continue
			}
			if b.Height(col) != r {
				return nil, fmt.Errorf("%w: row %d column %d", ErrFloatingPiece, r, col)
			}
			if err := b.Drop(col, p); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

func (b *Board) Config() Config { return b.cfg }
func (b *Board) Rows() int      { return b.cfg.Rows }
func (b *Board) Columns() int   { return b.cfg.Columns }

// Center returns the index of the center column.
func (b *Board) Center() int { return b.cfg.Columns / 2 }

// Moves returns the number of pieces on the board.
func (b *Board) Moves() int { return bitboard.Popcount(b.red | b.yellow) }

// ToMove returns the piece whose turn it is, assuming Red moved first.
func (b *Board) ToMove() Piece {
	if b.Moves()%2 == 0 {
		return Red
	}
	return Yellow
}

// Clone returns an independent copy of b.
func (b *Board) Clone() *Board {
	n := *b
	return &n
}

func (b *Board) inRange(col int) bool {
	return col >= 0 && col < b.cfg.Columns
}

// Height returns the number of pieces in col, or 0 for a column out
// of range.
func (b *Board) Height(col int) int {
	if !b.inRange(col) {
		return 0
	}
	return b.height(col)
}

func (b *Board) height(col int) int {
	return bitboard.Popcount((b.red | b.yellow) & bitboard.ColumnMask(&b.c, uint(col)))
}

func (b *Board) At(row, col int) Piece {
	if row < 0 || row >= b.cfg.Rows || !b.inRange(col) {
		return Empty
	}
	bit := bitboard.Bit(&b.c, uint(row), uint(col))
	switch {
	case b.red&bit != 0:
		return Red
	case b.yellow&bit != 0:
		return Yellow
	}
	return Empty
}

// IsEmptySlotIn reports whether col exists and has room for another
// piece.
func (b *Board) IsEmptySlotIn(col int) bool {
	return b.inRange(col) && b.height(col) < b.cfg.Rows
}

// ValidLocations returns, in ascending order, every column with room
// for another piece.
func (b *Board) ValidLocations() []int {
	out := make([]int, 0, b.cfg.Columns)
	for col := 0; col < b.cfg.Columns; col++ {
		if b.height(col) < b.cfg.Rows {
			out = append(out, col)
		}
	}
	return out
}

func (b *Board) Full() bool {
	return b.red|b.yellow == b.c.Mask
}

// Drop places p in the lowest empty row of col. The board is left
// unchanged on error.
func (b *Board) Drop(col int, p Piece) error {
	if !b.inRange(col) {
		return ErrColumnOutOfRange
	}
	if !p.Valid() {
		return ErrInvalidPiece
	}
	h := b.height(col)
	if h >= b.cfg.Rows {
		return ErrColumnFull
	}
	bit := bitboard.Bit(&b.c, uint(h), uint(col))
	if p == Red {
		b.red |= bit
	} else {
		b.yellow |= bit
	}
	return nil
}

// Undo removes the top piece of col.
func (b *Board) Undo(col int) error {
	if !b.inRange(col) {
		return ErrColumnOutOfRange
	}
	h := b.height(col)
	if h == 0 {
		return ErrColumnEmpty
	}
	bit := bitboard.Bit(&b.c, uint(h-1), uint(col))
	b.red &^= bit
	b.yellow &^= bit
	return nil
}

func (b *Board) bits(p Piece) uint64 {
	switch p {
	case Red:
		return b.red
	case Yellow:
		return b.yellow
	}
	return 0
}

// IsMoveWinning reports whether p has four in a row anywhere on the
// board.
func (b *Board) IsMoveWinning(p Piece) bool {
	return p.Valid() && bitboard.HasFour(&b.c, b.bits(p))
}

// IsTerminal reports whether either piece has won or the board is
// full.
func (b *Board) IsTerminal(x, y Piece) bool {
	return b.IsMoveWinning(x) || b.IsMoveWinning(y) || b.Full()
}

// Winner returns the piece that has four in a row, if any.
func (b *Board) Winner() (Piece, bool) {
	switch {
	case b.IsMoveWinning(Red):
		return Red, true
	case b.IsMoveWinning(Yellow):
		return Yellow, true
	}
	return Empty, false
}

// GameOver reports whether the game has ended, and the winner (Empty
// for a draw).
func (b *Board) GameOver() (bool, Piece) {
	if w, ok := b.Winner(); ok {
		return true, w
	}
	return b.Full(), Empty
}

func (b *Board) String() string {
	return fmt.Sprintf("Board{%dx%d moves=%d}", b.cfg.Rows, b.cfg.Columns, b.Moves())
}
