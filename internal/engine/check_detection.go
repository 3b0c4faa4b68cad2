package engine

import "github.com/lgbarn/chessrules/internal/chess"

// IsInCheck returns true if the given colour's king is in check: some enemy
// figure has a pseudo-legal move that captures it.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	enemy := colour.Opposite()
	for _, pos := range board.Occupied(enemy) {
		// Raw moves only; filtering here would recurse without end.
		for _, m := range generate(board, pos, false) {
			if chess.CapturedKing(m) {
				return true
			}
		}
	}
	return false
}

// leavesInCheck reports whether playing m leaves colour's king capturable.
// The move is tried on a scratch copy, so board is never modified.
func leavesInCheck(board *chess.Board, m chess.Move, colour chess.Colour) bool {
	scratch := *board
	scratch.Apply(m)
	return IsInCheck(&scratch, colour)
}

// WithMove applies m to board, runs fn and reverses m again before
// returning, even if fn panics. Use it for in-place exploration such as
// perft where a full copy per move is not wanted.
func WithMove(board *chess.Board, m chess.Move, fn func()) {
	board.Apply(m)
	defer board.Reverse(m)
	fn()
}
