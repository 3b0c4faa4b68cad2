package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules/internal/errors"
)

// Position is a square on the board. File and Rank both run from 1 to 8;
// file 1 is the a-file and rank 1 is White's back rank.
type Position struct {
	File uint8
	Rank uint8
}

// NewPosition returns the square at file, rank or ErrOutOfBounds.
func NewPosition(file, rank int) (Position, error) {
	if file < 1 || file > BoardSize || rank < 1 || rank > BoardSize {
		return Position{}, fmt.Errorf("file %d rank %d: %w", file, rank, errors.ErrOutOfBounds)
	}
	return Position{File: uint8(file), Rank: uint8(rank)}, nil
}

// MustPosition is like NewPosition but panics on an invalid square.
// Intended for fixtures and constant tables.
func MustPosition(file, rank int) Position {
	p, err := NewPosition(file, rank)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseSquare converts a square name such as "e4" to a Position.
func ParseSquare(name string) (Position, error) {
	if len(name) != 2 {
		return Position{}, fmt.Errorf("square %q: %w", name, errors.ErrOutOfBounds)
	}
	return NewPosition(int(name[0]-'a')+1, int(name[1]-'0'))
}

// MoveIn returns the neighbouring square in direction d, or ErrOutOfBounds
// when p sits on the edge the direction points off.
func (p Position) MoveIn(d Direction) (Position, error) {
	df, dr := d.Vector()
	return NewPosition(int(p.File)+df, int(p.Rank)+dr)
}

// Advance steps one square towards the opposing back rank of colour.
func (p Position) Advance(colour Colour) (Position, error) {
	if colour == White {
		return p.MoveIn(Up)
	}
	return p.MoveIn(Down)
}

// Valid reports whether p lies on the board. The zero Position does not.
func (p Position) Valid() bool {
	return p.File >= 1 && p.File <= BoardSize && p.Rank >= 1 && p.Rank <= BoardSize
}

// String returns the square name, e.g. "e4".
func (p Position) String() string {
	if !p.Valid() {
		return "??"
	}
	return string([]byte{'a' + p.File - 1, '0' + p.Rank})
}

// AllPositions returns the 64 squares, a1 through h8 rank by rank.
func AllPositions() []Position {
	ps := make([]Position, 0, BoardSize*BoardSize)
	for rank := uint8(1); rank <= BoardSize; rank++ {
		for file := uint8(1); file <= BoardSize; file++ {
			ps = append(ps, Position{File: file, Rank: rank})
		}
	}
	return ps
}

// Direction is one of the eight compass steps on the board.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
	UpLeft
	UpRight
	DownLeft
	DownRight
)

// directionVectors holds (file, rank) deltas indexed by Direction.
var directionVectors = [...][2]int{
	Left:      {-1, 0},
	Right:     {1, 0},
	Up:        {0, 1},
	Down:      {0, -1},
	UpLeft:    {-1, 1},
	UpRight:   {1, 1},
	DownLeft:  {-1, -1},
	DownRight: {1, -1},
}

// Vector returns the file and rank delta of a single step.
func (d Direction) Vector() (file, rank int) {
	v := directionVectors[d]
	return v[0], v[1]
}

// String returns the direction name.
func (d Direction) String() string {
	names := [...]string{"Left", "Right", "Up", "Down", "UpLeft", "UpRight", "DownLeft", "DownRight"}
	if int(d) < len(names) {
		return names[d]
	}
	return "Unknown"
}

// Orthogonal is a straight direction. Only straight directions have a
// diagonal decomposition, so the type cannot hold a diagonal.
type Orthogonal struct {
	dir Direction
}

// Straights are the four orthogonal directions.
var Straights = [4]Orthogonal{{Left}, {Right}, {Up}, {Down}}

// Diagonals are the four diagonal directions.
var Diagonals = [4]Direction{UpLeft, UpRight, DownLeft, DownRight}

// AllDirections lists straights first, then diagonals.
var AllDirections = [8]Direction{Left, Right, Up, Down, UpLeft, UpRight, DownLeft, DownRight}

// Direction returns o as a plain Direction.
func (o Orthogonal) Direction() Direction {
	return o.dir
}

// Diagonals returns the two diagonal directions that share o's component.
// A knight jump is a step in o followed by a step in either of them.
func (o Orthogonal) Diagonals() [2]Direction {
	switch o.dir {
	case Left:
		return [2]Direction{UpLeft, DownLeft}
	case Right:
		return [2]Direction{UpRight, DownRight}
	case Up:
		return [2]Direction{UpLeft, UpRight}
	default:
		return [2]Direction{DownLeft, DownRight}
	}
}

func (o Orthogonal) String() string {
	return o.dir.String()
}
