package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = chess.InitialPlacement + " w - - 0 1"

// Game owns a board and the colour to move. It is the only entry point for
// changing the position: every request goes through AttemptMove, which
// either applies a legal move and passes the turn or leaves the game
// untouched.
//
// A Game is not safe for concurrent use.
type Game struct {
	// ID identifies the game session to the presentation layer.
	ID string

	board   chess.Board
	toMove  chess.Colour
	history []chess.Move
}

// NewGame creates a game in the standard starting position with White to move.
func NewGame() *Game {
	return &Game{
		ID:     uuid.NewString(),
		board:  *chess.NewInitialBoard(),
		toMove: chess.White,
	}
}

// NewGameFromFEN creates a game from a FEN string. Only the placement and
// side-to-move fields are read; castling and en passant fields are ignored.
func NewGameFromFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board, err := chess.ParsePlacement(parts[0])
	if err != nil {
		return nil, err
	}

	toMove := chess.White
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
		case "b":
			toMove = chess.Black
		default:
			return nil, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
		}
	}

	return &Game{
		ID:     uuid.NewString(),
		board:  *board,
		toMove: toMove,
	}, nil
}

// AttemptMove moves the figure on from to to if that is a legal move for the
// side to move, then passes the turn. Rejections wrap ErrNoPiece,
// ErrWrongColour or ErrIllegalDestination in a *errors.MoveError and leave
// the game unchanged.
func (g *Game) AttemptMove(from, to chess.Position) error {
	fig, ok := g.board.Get(from)
	if !ok {
		return g.reject(errors.ErrNoPiece, from, to)
	}
	if fig.Colour != g.toMove {
		return g.reject(errors.ErrWrongColour, from, to)
	}

	m, ok := findMove(LegalMoves(&g.board, from), from, to)
	if !ok {
		return g.reject(errors.ErrIllegalDestination, from, to)
	}

	g.board.Apply(m)
	g.history = append(g.history, m)
	g.toMove = g.toMove.Opposite()
	return nil
}

func (g *Game) reject(err error, from, to chess.Position) error {
	return &errors.MoveError{
		Err:  err,
		From: from.String(),
		To:   to.String(),
		Ply:  len(g.history) + 1,
	}
}

// Undo takes back the last applied move and returns it.
// It reports false when no move has been played.
func (g *Game) Undo() (chess.Move, bool) {
	if len(g.history) == 0 {
		return nil, false
	}
	last := len(g.history) - 1
	m := g.history[last]
	g.history = g.history[:last]
	g.board.Reverse(m)
	g.toMove = g.toMove.Opposite()
	return m, true
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return IsInCheck(&g.board, g.toMove)
}

// HasLegalMoves reports whether the side to move can move at all.
func (g *Game) HasLegalMoves() bool {
	return HasLegalMoves(&g.board, g.toMove)
}

// Status combines HasLegalMoves and InCheck into the game outcome.
func (g *Game) Status() chess.GameStatus {
	return Status(&g.board, g.toMove)
}

// Turn returns the colour to move.
func (g *Game) Turn() chess.Colour {
	return g.toMove
}

// At returns the figure on pos, if any.
func (g *Game) At(pos chess.Position) (chess.Figure, bool) {
	return g.board.Get(pos)
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// LegalMoves returns the legal moves of the figure on pos. Figures of the
// side not to move have none.
func (g *Game) LegalMoves(pos chess.Position) []chess.Move {
	fig, ok := g.board.Get(pos)
	if !ok || fig.Colour != g.toMove {
		return nil
	}
	return LegalMoves(&g.board, pos)
}

// LegalMoveCount returns the number of legal moves of the side to move.
func (g *Game) LegalMoveCount() int {
	return len(AllLegalMoves(&g.board, g.toMove))
}

// History returns the moves applied so far, oldest first.
func (g *Game) History() []chess.Move {
	return append([]chess.Move(nil), g.history...)
}

// Ply returns the number of moves applied so far.
func (g *Game) Ply() int {
	return len(g.history)
}

// FEN returns the position as a FEN string. Castling and en passant fields
// are always "-"; the fullmove number is derived from the applied moves.
func (g *Game) FEN() string {
	side := "w"
	if g.toMove == chess.Black {
		side = "b"
	}
	return fmt.Sprintf("%s %s - - 0 %d", g.board.Placement(), side, len(g.history)/2+1)
}
