// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type.
type Piece int

const (
	NoPiece Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter converts a piece letter of either case to a piece type.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return NoPiece
	}
}

// Figure is a piece on the board: its kind, its owner and whether it has
// moved yet. The zero Figure stands for an empty square.
type Figure struct {
	Piece  Piece
	Colour Colour
	Moved  bool
}

// NewFigure returns an unmoved figure.
func NewFigure(colour Colour, piece Piece) Figure {
	return Figure{Piece: piece, Colour: colour}
}

// W creates an unmoved white figure.
func W(piece Piece) Figure {
	return NewFigure(White, piece)
}

// B creates an unmoved black figure.
func B(piece Piece) Figure {
	return NewFigure(Black, piece)
}

// IsEmpty reports whether f stands for an empty square.
func (f Figure) IsEmpty() bool {
	return f.Piece == NoPiece
}

// Letter returns the FEN letter of the figure: uppercase for White,
// lowercase for Black.
func (f Figure) Letter() byte {
	l := f.Piece.Letter()
	if f.Colour == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight".
func (f Figure) String() string {
	if f.IsEmpty() {
		return "Empty"
	}
	return f.Colour.String() + " " + f.Piece.String()
}

// GameStatus is the outcome state of a position for the side to move.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Ongoing"
	}
}

// BoardSize is the number of files and ranks.
const BoardSize = 8
