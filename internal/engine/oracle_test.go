package engine_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/testutil"
)

// oracleFENs have no castling rights and no en passant square, so both
// generators agree on the rules in play. Promotions appear as a single
// from/to pair on each side.
var oracleFENs = []string{
	engine.InitialFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w - - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1",
	"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
	"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
}

// squareName converts a dragontoothmg square index to a square name.
func squareName(sq uint8) string {
	return chess.MustPosition(int(sq%8)+1, int(sq/8)+1).String()
}

func oracleMoves(fen string) (moves []string, inCheck bool) {
	board := dragontoothmg.ParseFen(fen)
	seen := make(map[string]bool)
	for _, m := range board.GenerateLegalMoves() {
		key := squareName(m.From()) + squareName(m.To())
		if !seen[key] {
			seen[key] = true
			moves = append(moves, key)
		}
	}
	sort.Strings(moves)
	return moves, board.OurKingInCheck()
}

func ourMoves(g *engine.Game) []string {
	var moves []string
	for _, m := range engine.AllLegalMoves(g.Board(), g.Turn()) {
		moves = append(moves, m.Source().String()+m.Target().String())
	}
	sort.Strings(moves)
	return moves
}

func compareWithOracle(t *testing.T, g *engine.Game) {
	t.Helper()
	fen := g.FEN()
	want, wantCheck := oracleMoves(fen)
	testutil.AssertEqual(t, ourMoves(g), want, "legal moves in %s", fen)
	if got := g.InCheck(); got != wantCheck {
		t.Errorf("InCheck() = %v; want %v in %s", got, wantCheck, fen)
	}
}

func TestLegalMovesMatchOracle(t *testing.T) {
	for _, fen := range oracleFENs {
		t.Run(fen, func(t *testing.T) {
			compareWithOracle(t, testutil.MustGameFromFEN(t, fen))
		})
	}
}

// promotes reports whether m puts a pawn on its last rank.
func promotes(g *engine.Game, m chess.Move) bool {
	fig, _ := g.At(m.Source())
	if fig.Piece != chess.Pawn {
		return false
	}
	r := m.Target().Rank
	return r == 1 || r == chess.BoardSize
}

func TestRandomGamesMatchOracle(t *testing.T) {
	games, plies := 20, 120
	if testing.Short() {
		games, plies = 3, 40
	}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < games; i++ {
		g := engine.NewGame()
		for ply := 0; ply < plies; ply++ {
			compareWithOracle(t, g)
			if t.Failed() {
				t.Fatalf("game %d diverged at ply %d: %v", i, ply, g.History())
			}

			var candidates []chess.Move
			for _, m := range engine.AllLegalMoves(g.Board(), g.Turn()) {
				if !promotes(g, m) {
					candidates = append(candidates, m)
				}
			}
			if len(candidates) == 0 {
				break
			}
			m := candidates[rng.Intn(len(candidates))]
			if err := g.AttemptMove(m.Source(), m.Target()); err != nil {
				t.Fatalf("game %d ply %d: AttemptMove(%v): %v", i, ply, m, err)
			}
		}
	}
}
