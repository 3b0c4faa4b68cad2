package chess

import (
	"fmt"
	"strings"
)

// Board is the 8x8 placement grid. It holds at most one figure per square
// and knows nothing about legality: callers only apply moves drawn from
// generated move lists.
//
// Board is a plain value; assigning it copies every square, and two boards
// compare equal with == exactly when their placements and moved flags match.
type Board struct {
	// squares[file-1][rank-1]
	squares [BoardSize][BoardSize]Figure
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.setupInitialPosition()
	return b
}

// setupInitialPosition sets up the standard chess starting position.
func (b *Board) setupInitialPosition() {
	b.Clear()

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.squares[file][0] = W(backRank[file])
		b.squares[file][1] = W(Pawn)
		b.squares[file][6] = B(Pawn)
		b.squares[file][7] = B(backRank[file])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.squares = [BoardSize][BoardSize]Figure{}
}

// Get returns the figure at pos and whether the square is occupied.
func (b *Board) Get(pos Position) (Figure, bool) {
	f := b.squares[pos.File-1][pos.Rank-1]
	return f, !f.IsEmpty()
}

// Place puts fig on pos, replacing whatever stood there.
func (b *Board) Place(pos Position, fig Figure) {
	b.squares[pos.File-1][pos.Rank-1] = fig
}

// Remove empties pos and returns the figure that stood there, if any.
func (b *Board) Remove(pos Position) (Figure, bool) {
	f, ok := b.Get(pos)
	b.squares[pos.File-1][pos.Rank-1] = Figure{}
	return f, ok
}

// Apply performs m. Normal and Take mark the moved piece as moved.
func (b *Board) Apply(m Move) {
	switch m := m.(type) {
	case Normal:
		fig, _ := b.Remove(m.From)
		fig.Moved = true
		b.Place(m.To, fig)
	case Take:
		fig, _ := b.Remove(m.From)
		b.Remove(m.To)
		fig.Moved = true
		b.Place(m.To, fig)
	case Castle:
		king, _ := b.Remove(m.KingFrom)
		rook, _ := b.Remove(m.RookFrom)
		king.Moved, rook.Moved = true, true
		b.Place(m.KingTo, king)
		b.Place(m.RookTo, rook)
	case Promote:
		b.Remove(m.From)
		b.Place(m.To, m.Replacement)
	default:
		panic(fmt.Sprintf("chess: unknown move type %T", m))
	}
}

// Reverse undoes m, which must be the last move applied to b.
func (b *Board) Reverse(m Move) {
	switch m := m.(type) {
	case Normal:
		fig, _ := b.Remove(m.To)
		fig.Moved = m.WasMoved
		b.Place(m.From, fig)
	case Take:
		fig, _ := b.Remove(m.To)
		fig.Moved = m.WasMoved
		b.Place(m.From, fig)
		b.Place(m.To, m.Captured)
	case Castle:
		king, _ := b.Remove(m.KingTo)
		rook, _ := b.Remove(m.RookTo)
		king.Moved, rook.Moved = false, false
		b.Place(m.KingFrom, king)
		b.Place(m.RookFrom, rook)
	case Promote:
		b.Remove(m.To)
		// A promoting pawn has always advanced at least once.
		b.Place(m.From, Figure{Piece: Pawn, Colour: m.Replacement.Colour, Moved: true})
	default:
		panic(fmt.Sprintf("chess: unknown move type %T", m))
	}
}

// Count returns the number of figures on the board.
func (b *Board) Count() int {
	n := 0
	for file := range b.squares {
		for rank := range b.squares[file] {
			if !b.squares[file][rank].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Occupied returns the squares holding a figure of colour, a1 through h8.
func (b *Board) Occupied(colour Colour) []Position {
	var ps []Position
	for _, p := range AllPositions() {
		if f, ok := b.Get(p); ok && f.Colour == colour {
			ps = append(ps, p)
		}
	}
	return ps
}

// FindKing returns the square of colour's king.
func (b *Board) FindKing(colour Colour) (Position, bool) {
	for _, p := range AllPositions() {
		if f, ok := b.Get(p); ok && f.Piece == King && f.Colour == colour {
			return p, true
		}
	}
	return Position{}, false
}

// Grid returns a copy of the squares indexed [file-1][rank-1].
func (b *Board) Grid() [BoardSize][BoardSize]Figure {
	return b.squares
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// String draws the board from White's side, rank 8 at the top, using FEN
// letters and '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize; rank >= 1; rank-- {
		fmt.Fprintf(&sb, "%d ", rank)
		for file := 1; file <= BoardSize; file++ {
			f := b.squares[file-1][rank-1]
			if f.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(f.Letter())
			}
			if file < BoardSize {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
