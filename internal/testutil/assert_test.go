package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chessrules/internal/chess"
	"github.com/lgbarn/chessrules/internal/errors"
)

// These tests verify the assertion helpers work correctly.
// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage helper which is internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.W(chess.Queen), chess.W(chess.Queen), "value should be %s", "equal")
}

func TestAssertSameMoves_IgnoresOrder(t *testing.T) {
	a := chess.Normal{From: Sq("e2"), To: Sq("e3")}
	b := chess.Normal{From: Sq("e2"), To: Sq("e4")}
	c := chess.Take{From: Sq("d4"), To: Sq("e5"), Captured: chess.B(chess.Pawn), WasMoved: true}

	AssertSameMoves(t, []chess.Move{a, b, c}, []chess.Move{c, b, a})
	AssertSameMoves(t, nil, []chess.Move{})
}

func TestAssertBoardsEqual_Success(t *testing.T) {
	AssertBoardsEqual(t, chess.NewInitialBoard(), MustBoard(t, chess.InitialPlacement))
}

func TestAssertErrorIs_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", errors.ErrNoPiece), errors.ErrMoveRejected)
}

func TestAssertTrueFalse_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, false)
	AssertFalse(t, 1 == 2)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"empty args", []interface{}{}, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
