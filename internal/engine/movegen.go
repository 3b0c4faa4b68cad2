// Package engine provides chess move generation, check detection and the
// turn state machine that validates and applies move requests.
package engine

import "github.com/lgbarn/chessrules/internal/chess"

// PseudoLegalMoves returns the moves of the figure on from that obey its
// movement geometry, ignoring whether they expose its own king.
// It returns nil for an empty square.
func PseudoLegalMoves(board *chess.Board, from chess.Position) []chess.Move {
	return generate(board, from, false)
}

// LegalMoves returns the pseudo-legal moves of the figure on from that do
// not leave its own king capturable.
func LegalMoves(board *chess.Board, from chess.Position) []chess.Move {
	return generate(board, from, true)
}

// generate produces the moves of the figure on from. With checkForMate set,
// moves that leave the mover in check are dropped.
func generate(board *chess.Board, from chess.Position, checkForMate bool) []chess.Move {
	fig, ok := board.Get(from)
	if !ok {
		return nil
	}

	var moves []chess.Move
	switch fig.Piece {
	case chess.Pawn:
		moves = pawnMoves(board, from, fig)
	case chess.Knight:
		moves = knightMoves(board, from, fig)
	case chess.Bishop:
		moves = slidingMoves(board, from, fig, chess.Diagonals[:], 0)
	case chess.Rook:
		moves = slidingMoves(board, from, fig, straightDirections(), 0)
	case chess.Queen:
		moves = slidingMoves(board, from, fig, chess.AllDirections[:], 0)
	case chess.King:
		moves = slidingMoves(board, from, fig, chess.AllDirections[:], 1)
	}

	if !checkForMate {
		return moves
	}
	legal := moves[:0]
	for _, m := range moves {
		if !leavesInCheck(board, m, fig.Colour) {
			legal = append(legal, m)
		}
	}
	return legal
}

func straightDirections() []chess.Direction {
	dirs := make([]chess.Direction, 0, len(chess.Straights))
	for _, o := range chess.Straights {
		dirs = append(dirs, o.Direction())
	}
	return dirs
}

// slidingMoves walks each ray from from until it leaves the board or hits a
// figure. An enemy figure ends the ray with a capture, a friendly one ends it
// without. maxSteps of 0 means unlimited.
func slidingMoves(board *chess.Board, from chess.Position, fig chess.Figure, dirs []chess.Direction, maxSteps int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		pos := from
		for step := 1; maxSteps == 0 || step <= maxSteps; step++ {
			next, err := pos.MoveIn(dir)
			if err != nil {
				break // Off the board
			}
			pos = next

			target, occupied := board.Get(pos)
			if !occupied {
				moves = append(moves, chess.Normal{From: from, To: pos, WasMoved: fig.Moved})
				continue
			}
			if target.Colour != fig.Colour {
				moves = append(moves, chess.Take{From: from, To: pos, Captured: target, WasMoved: fig.Moved})
			}
			break // Blocked
		}
	}
	return moves
}

// knightMoves steps once orthogonally, then once along each diagonal that
// continues away from the start, tracing the eight L-shaped jumps.
func knightMoves(board *chess.Board, from chess.Position, fig chess.Figure) []chess.Move {
	var moves []chess.Move
	for _, o := range chess.Straights {
		step, err := from.MoveIn(o.Direction())
		if err != nil {
			continue
		}
		for _, d := range o.Diagonals() {
			to, err := step.MoveIn(d)
			if err != nil {
				continue
			}
			if m, ok := stepMove(board, from, to, fig); ok {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// stepMove builds the move of fig from from onto to: Normal on an empty
// square, Take on an enemy figure, nothing on a friendly one.
func stepMove(board *chess.Board, from, to chess.Position, fig chess.Figure) (chess.Move, bool) {
	target, occupied := board.Get(to)
	switch {
	case !occupied:
		return chess.Normal{From: from, To: to, WasMoved: fig.Moved}, true
	case target.Colour != fig.Colour:
		return chess.Take{From: from, To: to, Captured: target, WasMoved: fig.Moved}, true
	default:
		return nil, false
	}
}

// pawnMoves generates straight advances onto empty squares (two squares for
// an unmoved pawn with a clear path) and diagonal captures of enemy figures.
func pawnMoves(board *chess.Board, from chess.Position, fig chess.Figure) []chess.Move {
	var moves []chess.Move

	if one, err := from.Advance(fig.Colour); err == nil {
		if _, occupied := board.Get(one); !occupied {
			moves = append(moves, chess.Normal{From: from, To: one, WasMoved: fig.Moved})
			if !fig.Moved {
				if two, err := one.Advance(fig.Colour); err == nil {
					if _, occupied := board.Get(two); !occupied {
						moves = append(moves, chess.Normal{From: from, To: two, WasMoved: fig.Moved})
					}
				}
			}
		}
	}

	for _, d := range pawnCaptureDirections(fig.Colour) {
		to, err := from.MoveIn(d)
		if err != nil {
			continue
		}
		if target, occupied := board.Get(to); occupied && target.Colour != fig.Colour {
			moves = append(moves, chess.Take{From: from, To: to, Captured: target, WasMoved: fig.Moved})
		}
	}
	return moves
}

func pawnCaptureDirections(colour chess.Colour) [2]chess.Direction {
	if colour == chess.White {
		return [2]chess.Direction{chess.UpLeft, chess.UpRight}
	}
	return [2]chess.Direction{chess.DownLeft, chess.DownRight}
}
