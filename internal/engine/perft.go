package engine

import "github.com/lgbarn/chessrules/internal/chess"

// Perft counts the leaf positions reachable in exactly depth plies with
// colour to move. The board is explored in place and restored before
// Perft returns.
func Perft(board *chess.Board, colour chess.Colour, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := AllLegalMoves(board, colour)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		WithMove(board, m, func() {
			nodes += Perft(board, colour.Opposite(), depth-1)
		})
	}
	return nodes
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Divide runs Perft below each legal root move separately.
func Divide(board *chess.Board, colour chess.Colour, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	moves := AllLegalMoves(board, colour)
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		var nodes uint64
		WithMove(board, m, func() {
			nodes = Perft(board, colour.Opposite(), depth-1)
		})
		entries = append(entries, DivideEntry{Move: m, Nodes: nodes})
	}
	return entries
}

// Perft counts leaf positions below the game's current position.
func (g *Game) Perft(depth int) uint64 {
	board := g.board
	return Perft(&board, g.toMove, depth)
}
