package engine

import "github.com/lgbarn/chessrules/internal/chess"

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, pos := range board.Occupied(colour) {
		if len(LegalMoves(board, pos)) > 0 {
			return true
		}
	}
	return false
}

// AllLegalMoves returns every legal move of colour, in square order a1..h8.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, pos := range board.Occupied(colour) {
		moves = append(moves, LegalMoves(board, pos)...)
	}
	return moves
}

// findMove returns the move in moves going from from to to.
func findMove(moves []chess.Move, from, to chess.Position) (chess.Move, bool) {
	for _, m := range moves {
		if m.Source() == from && m.Target() == to {
			return m, true
		}
	}
	return nil, false
}

// IsCheckmate returns true if colour is in check with no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if colour is not in check but has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// Status classifies the position for colour to move.
func Status(board *chess.Board, colour chess.Colour) chess.GameStatus {
	if HasLegalMoves(board, colour) {
		return chess.Ongoing
	}
	if IsInCheck(board, colour) {
		return chess.Checkmate
	}
	return chess.Stalemate
}
