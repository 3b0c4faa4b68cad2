package chess

import "fmt"

// Move is one reversible board transformation. The set of variants is
// closed: Normal, Take, Castle and Promote. Each carries everything
// Board.Apply and Board.Reverse need, so undoing a move never consults
// history kept elsewhere.
type Move interface {
	// Source is the square the moving piece starts on.
	Source() Position
	// Target is the square the moving piece ends on.
	Target() Position
	// IsCapture reports whether an enemy figure leaves the board.
	IsCapture() bool

	sealed()
}

// Normal relocates a piece onto an empty square.
type Normal struct {
	From, To Position
	WasMoved bool // moved flag of the piece before the move
}

// Take relocates a piece onto a square held by an enemy figure, which is removed.
type Take struct {
	From, To Position
	Captured Figure
	WasMoved bool
}

// Castle relocates king and rook together. Both are unmoved beforehand.
type Castle struct {
	KingFrom, RookFrom Position
	KingTo, RookTo     Position
}

// Promote replaces the pawn on From with Replacement on To.
type Promote struct {
	From, To    Position
	Replacement Figure
}

func (m Normal) Source() Position { return m.From }
func (m Normal) Target() Position { return m.To }
func (m Normal) IsCapture() bool { return false }
func (m Take) Source() Position { return m.From }
func (m Take) Target() Position { return m.To }
func (m Take) IsCapture() bool { return true }
func (m Castle) Source() Position { return m.KingFrom }
func (m Castle) Target() Position { return m.KingTo }
func (m Castle) IsCapture() bool { return false }
func (m Promote) Source() Position { return m.From }
func (m Promote) Target() Position { return m.To }
func (m Promote) IsCapture() bool { return false }

func (Normal) sealed() {}
func (Take) sealed() {}
func (Castle) sealed() {}
func (Promote) sealed() {}

func (m Normal) String() string {
	return fmt.Sprintf("%s-%s", m.From, m.To)
}

func (m Take) String() string {
	return fmt.Sprintf("%sx%s", m.From, m.To)
}

func (m Castle) String() string {
	return fmt.Sprintf("castle %s-%s/%s-%s", m.KingFrom, m.KingTo, m.RookFrom, m.RookTo)
}

func (m Promote) String() string {
	return fmt.Sprintf("%s-%s=%c", m.From, m.To, m.Replacement.Piece.Letter())
}

// CapturedKing reports whether m takes a king.
func CapturedKing(m Move) bool {
	t, ok := m.(Take)
	return ok && t.Captured.Piece == King
}
