package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
)

// Sq converts a square name such as "e4" to a Position.
// It panics on a malformed name, which is always a bug in the test itself.
func Sq(name string) chess.Position {
	p, err := chess.ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return p
}

// MustGameFromFEN creates a game from fen.
// It calls t.Fatal if the FEN does not parse.
func MustGameFromFEN(t *testing.T, fen string) *engine.Game {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q): %v", fen, err)
	}
	return g
}

// MustBoard creates a board from a FEN piece placement.
func MustBoard(t *testing.T, placement string) *chess.Board {
	t.Helper()
	b, err := chess.ParsePlacement(placement)
	if err != nil {
		t.Fatalf("ParsePlacement(%q): %v", placement, err)
	}
	return b
}

// MustPlay applies a sequence of moves given as square-name pairs, e.g.
// "e2", "e4", "e7", "e5". It calls t.Fatal on the first rejection.
func MustPlay(t *testing.T, g *engine.Game, squares ...string) {
	t.Helper()
	if len(squares)%2 != 0 {
		t.Fatalf("MustPlay needs from/to pairs, got %d squares", len(squares))
	}
	for i := 0; i < len(squares); i += 2 {
		if err := g.AttemptMove(Sq(squares[i]), Sq(squares[i+1])); err != nil {
			t.Fatalf("AttemptMove(%s, %s): %v", squares[i], squares[i+1], err)
		}
	}
}
