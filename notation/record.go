package notation

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/nelhage/connect4/connect4"
)

type Tag struct {
	Name  string
	Value string
}

type Op interface {
	op()

	Source() string
}

type opCommon struct {
	src string
}

func (o opCommon) Source() string {
	return o.src
}

func (o opCommon) op() {}

type MoveNumber struct {
	opCommon
	Number int
}

type Move struct {
	opCommon
	Column int
}

type Comment struct {
	opCommon
	Comment string
}

// GameOver records the end of a game; Winner is Empty for a draw.
type GameOver struct {
	opCommon
	Winner connect4.Piece
}

// Record is a game: tags, then numbered moves. Red moves first unless
// a Position tag supplies another starting board.
type Record struct {
	Tags []Tag
	Ops  []Op
}

func ParseRecord(r io.Reader) (*Record, error) {
	buf := bufio.NewReader(r)
	var rec Record
	if err := readTags(buf, &rec); err != nil && err != io.EOF {
		return nil, err
	}
	if err := readMoves(buf, &rec); err != nil && err != io.EOF {
		return nil, err
	}
	return &rec, nil
}

func ParseFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rec, err := ParseRecord(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return rec, nil
}

func (r *Record) FindTag(name string) string {
	for _, t := range r.Tags {
		if t.Name == name {
			return t.Value
		}
	}
	return ""
}

func (r *Record) SetTag(name, value string) {
	for i := range r.Tags {
		if r.Tags[i].Name == name {
			r.Tags[i].Value = value
			return
		}
	}
	r.Tags = append(r.Tags, Tag{Name: name, Value: value})
}

// FormatSize renders a configuration as the value of a Size tag.
func FormatSize(cfg connect4.Config) string {
	return fmt.Sprintf("%dx%d", cfg.Rows, cfg.Columns)
}

func ParseSize(s string) (connect4.Config, error) {
	bits := strings.Split(strings.ToLower(s), "x")
	if len(bits) != 2 {
		return connect4.Config{}, errors.Errorf("bad size: %q", s)
	}
	rows, err := strconv.Atoi(bits[0])
	if err != nil {
		return connect4.Config{}, errors.Errorf("bad size: %q", s)
	}
	cols, err := strconv.Atoi(bits[1])
	if err != nil {
		return connect4.Config{}, errors.Errorf("bad size: %q", s)
	}
	cfg := connect4.Config{Rows: rows, Columns: cols}
	if err := cfg.Validate(); err != nil {
		return connect4.Config{}, err
	}
	return cfg, nil
}

func (r *Record) InitialPosition() (*connect4.Board, error) {
	if pos := r.FindTag("Position"); pos != "" {
		b, err := ParsePosition(pos)
		if err != nil {
			return nil, errors.Wrap(err, "bad Position tag")
		}
		return b, nil
	}
	cfg := connect4.DefaultConfig
	if size := r.FindTag("Size"); size != "" {
		var err error
		if cfg, err = ParseSize(size); err != nil {
			return nil, err
		}
	}
	return connect4.New(cfg), nil
}

func (r *Record) Moves() []int {
	var out []int
	for _, op := range r.Ops {
		if m, ok := op.(*Move); ok {
			out = append(out, m.Column)
		}
	}
	return out
}

// PositionAtMove replays the first n moves (all of them if n < 0).
func (r *Record) PositionAtMove(n int) (*connect4.Board, error) {
	b, err := r.InitialPosition()
	if err != nil {
		return nil, err
	}
	for i, col := range r.Moves() {
		if n >= 0 && i >= n {
			break
		}
		if err := b.Drop(col, b.ToMove()); err != nil {
			return nil, errors.Wrapf(err, "move %d (%s)", i+1, FormatMove(col))
		}
	}
	return b, nil
}

func (r *Record) Position() (*connect4.Board, error) {
	return r.PositionAtMove(-1)
}

// AddMoves appends numbered moves. The first move of each pair is
// preceded by its move number.
func (r *Record) AddMoves(cols []int) {
	n := len(r.Moves())
	for _, col := range cols {
		if n%2 == 0 {
			r.Ops = append(r.Ops, &MoveNumber{Number: n/2 + 1})
		}
		r.Ops = append(r.Ops, &Move{Column: col})
		n++
	}
}

func (r *Record) AddResult(winner connect4.Piece) {
	r.Ops = append(r.Ops, &GameOver{Winner: winner})
	r.SetTag("Result", FormatResult(winner))
}

// FormatResult renders the value of a Result tag.
func FormatResult(w connect4.Piece) string {
	switch w {
	case connect4.Red:
		return "1-0"
	case connect4.Yellow:
		return "0-1"
	}
	return "1/2-1/2"
}

func readTags(r *bufio.Reader, rec *Record) error {
	for {
		if e := skipWS(r); e != nil {
			return e
		}
		c, e := r.ReadByte()
		if e != nil {
			return e
		}
		if c != '[' {
			return r.UnreadByte()
		}
		line, e := r.ReadString(']')
		if e != nil {
			return errors.Wrap(e, "unterminated tag")
		}
		line = line[:len(line)-1]
		bits := strings.SplitN(line, " ", 2)
		if len(bits) != 2 {
			return errors.Errorf("bad tag: %q", line)
		}
		rec.Tags = append(rec.Tags, Tag{
			Name:  bits[0],
			Value: strings.Trim(bits[1], "\""),
		})
	}
}

func readMoves(r *bufio.Reader, rec *Record) error {
	s := bufio.NewScanner(r)
	s.Split(splitMoves)
	for s.Scan() {
		tok := s.Text()
		common := opCommon{tok}
		switch {
		case tok[0] == '{':
			rec.Ops = append(rec.Ops, &Comment{common, tok[1 : len(tok)-1]})
		case tok == "1-0":
			rec.Ops = append(rec.Ops, &GameOver{common, connect4.Red})
		case tok == "0-1":
			rec.Ops = append(rec.Ops, &GameOver{common, connect4.Yellow})
		case tok == "1/2-1/2":
			rec.Ops = append(rec.Ops, &GameOver{common, connect4.Empty})
		case tok[len(tok)-1] == '.':
			n, e := strconv.Atoi(tok[:len(tok)-1])
			if e != nil {
				return errors.Errorf("bad move number: %q", tok)
			}
			rec.Ops = append(rec.Ops, &MoveNumber{common, n})
		default:
			col, e := ParseMove(tok)
			if e != nil {
				return e
			}
			rec.Ops = append(rec.Ops, &Move{common, col})
		}
	}
	return s.Err()
}

func splitMoves(buf []byte, atEOF bool) (int, []byte, error) {
	start := 0
	for start < len(buf) && unicode.IsSpace(rune(buf[start])) {
		start++
	}
	if start == len(buf) {
		return start, nil, nil
	}
	if buf[start] == '{' {
		for i := start; i < len(buf); i++ {
			if buf[i] == '}' {
				return i + 1, buf[start : i+1], nil
			}
		}
	} else {
		for i := start; i < len(buf); i++ {
			if unicode.IsSpace(rune(buf[i])) {
				return i + 1, buf[start:i], nil
			}
		}
	}
	if atEOF {
		return len(buf), buf[start:], nil
	}
	return start, nil, nil
}

func skipWS(r *bufio.Reader) error {
	for {
		c, e := r.ReadByte()
		if e != nil {
			return e
		}
		if !unicode.IsSpace(rune(c)) {
			return r.UnreadByte()
		}
	}
}

func (r *Record) Render() string {
	var out bytes.Buffer
	for _, tag := range r.Tags {
		fmt.Fprintf(&out, "[%s \"%s\"]\n",
			tag.Name, strings.Replace(tag.Value, "\"", "", -1),
		)
	}
	out.WriteString("\n")

	for _, op := range r.Ops {
		switch o := op.(type) {
		case *MoveNumber:
			fmt.Fprintf(&out, "\n%d.", o.Number)
		case *Move:
			fmt.Fprintf(&out, " %s", FormatMove(o.Column))
		case *Comment:
			fmt.Fprintf(&out, " {%s}", o.Comment)
		case *GameOver:
			fmt.Fprintf(&out, "\n%s\n", FormatResult(o.Winner))
		}
	}
	return out.String()
}
