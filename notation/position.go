package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/nelhage/connect4/connect4"
)

// ParsePosition parses a board written as rows from the top down,
// separated by '/'. Each row is a comma-separated list of cells: '1'
// for red, '2' for yellow, and 'x' or 'xN' for one or N empty cells.
// The empty 6x7 board is "x7/x7/x7/x7/x7/x7".
func ParsePosition(s string) (*connect4.Board, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty position")
	}
	var rows [][]connect4.Piece
	for i, r := range strings.Split(s, "/") {
		row, err := parseRow(r)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i+1)
		}
		rows = append([][]connect4.Piece{row}, rows...)
	}
	cfg := connect4.Config{Rows: len(rows), Columns: len(rows[0])}
	for i, r := range rows {
		if len(r) != cfg.Columns {
			return nil, errors.Errorf("row %d has %d cells, want %d", len(rows)-i, len(r), cfg.Columns)
		}
	}
	b, err := connect4.FromRows(cfg, rows)
	if err != nil {
		return nil, errors.Wrap(err, "bad position")
	}
	return b, nil
}

func parseRow(row string) ([]connect4.Piece, error) {
	var out []connect4.Piece
	for _, bit := range strings.Split(row, ",") {
		bit = strings.TrimSpace(bit)
		switch {
		case bit == "":
			return nil, errors.New("empty cell")
		case bit[0] == 'x':
			count := 1
			if len(bit) > 1 {
				n, err := strconv.Atoi(bit[1:])
				if err != nil || n < 1 {
					return nil, errors.Errorf("bad run: %q", bit)
				}
				count = n
			}
			if count > connect4.MaxColumns-len(out) {
				return nil, errors.Errorf("row wider than %d columns", connect4.MaxColumns)
			}
			for i := 0; i < count; i++ {
				out = append(out, connect4.Empty)
			}
		case len(out) >= connect4.MaxColumns:
			return nil, errors.Errorf("row wider than %d columns", connect4.MaxColumns)
		case bit == "1":
			out = append(out, connect4.Red)
		case bit == "2":
			out = append(out, connect4.Yellow)
		default:
			return nil, errors.Errorf("malformed cell: %q", bit)
		}
	}
	return out, nil
}

func FormatPosition(b *connect4.Board) string {
	var rows []string
	for r := b.Rows() - 1; r >= 0; r-- {
		rows = append(rows, formatRow(b, r))
	}
	return strings.Join(rows, "/")
}

func formatRow(b *connect4.Board, row int) string {
	var bits []string
	for col := 0; col < b.Columns(); {
		var i int
		for i = 0; col+i < b.Columns() && b.At(row, col+i) == connect4.Empty; i++ {
		}
		switch i {
		case 0:
			bits = append(bits, formatPiece(b.At(row, col)))
			col++
		case 1:
			bits = append(bits, "x")
		default:
			bits = append(bits, fmt.Sprintf("x%d", i))
		}
		col += i
	}
	return strings.Join(bits, ",")
}

func formatPiece(p connect4.Piece) string {
	if p == connect4.Red {
		return "1"
	}
	return "2"
}

// ParsePiece accepts "1"/"red" and "2"/"yellow".
func ParsePiece(s string) (connect4.Piece, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "red", "r":
		return connect4.Red, nil
	case "2", "yellow", "y":
		return connect4.Yellow, nil
	}
	return connect4.Empty, errors.Errorf("bad piece: %q", s)
}

// ParseMove parses a column as a letter ('a' is the leftmost column)
// or as a 1-based number.
func ParseMove(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return connect4.NoColumn, errors.New("empty move")
	}
	if len(s) == 1 && s[0] >= 'a' && s[0] <= 'z' {
		return int(s[0] - 'a'), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return connect4.NoColumn, errors.Errorf("bad move: %q", s)
	}
	return n - 1, nil
}

func FormatMove(col int) string {
	if col < 0 || col >= 26 {
		return "?"
	}
	return string(rune('a' + col))
}

// FormatMoves renders a space-separated move list.
func FormatMoves(cols []int) string {
	bits := make([]string, len(cols))
	for i, col := range cols {
		bits[i] = FormatMove(col)
	}
	return strings.Join(bits, " ")
}
