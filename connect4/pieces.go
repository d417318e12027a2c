package connect4

type Piece int8

const (
	Empty  Piece = 0
	Red    Piece = 1
	Yellow Piece = 2
)

func (p Piece) Valid() bool {
	return p == Red || p == Yellow
}

// Flip returns the opponent of p. Flip of Empty is Empty.
func (p Piece) Flip() Piece {
	switch p {
	case Red:
		return Yellow
	case Yellow:
		return Red
	}
	return Empty
}

func (p Piece) String() string {
	switch p {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Empty:
		return "empty"
	}
	return "invalid"
}

type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrColumnFull       Error = "column is full"
	ErrColumnOutOfRange Error = "column out of range"
	ErrColumnEmpty      Error = "column is empty"
	ErrInvalidPiece     Error = "invalid piece"
	ErrFloatingPiece    Error = "piece above an empty cell"
	ErrBadConfig        Error = "bad board configuration"
)
