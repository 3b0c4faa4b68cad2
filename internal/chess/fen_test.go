package chess

import (
	"testing"

	"github.com/lgbarn/chessrules/internal/errors"
)

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		wantCount int
		wantErr   bool
	}{
		{"initial", InitialPlacement, 32, false},
		{"kings only", "4k3/8/8/8/8/8/8/4K3", 2, false},
		{"empty", "8/8/8/8/8/8/8/8", 0, false},
		{"invalid piece", "4x3/8/8/8/8/8/8/4K3", 0, true},
		{"too few ranks", "8/8/8/8/8/8/8", 0, true},
		{"too many ranks", "8/8/8/8/8/8/8/8/8", 0, true},
		{"short rank", "7/8/8/8/8/8/8/8", 0, true},
		{"long rank", "8p/8/8/8/8/8/8/8", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParsePlacement(tt.placement)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrInvalidFEN) {
					t.Errorf("ParsePlacement(%q) error = %v; want ErrInvalidFEN", tt.placement, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePlacement(%q) unexpected error: %v", tt.placement, err)
			}
			if got := b.Count(); got != tt.wantCount {
				t.Errorf("Count() = %d; want %d", got, tt.wantCount)
			}
		})
	}
}

func TestParsePlacementMatchesInitialBoard(t *testing.T) {
	b, err := ParsePlacement(InitialPlacement)
	if err != nil {
		t.Fatal(err)
	}
	if *b != *NewInitialBoard() {
		t.Errorf("ParsePlacement(initial) differs from NewInitialBoard():\n%s", b)
	}
}

func TestParsePlacementMovedPawns(t *testing.T) {
	b, err := ParsePlacement("4k3/1p6/8/3P4/8/8/4P3/4K3")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		square    string
		wantMoved bool
	}{
		{"e2", false}, // white pawn on home rank
		{"d5", true},  // white pawn advanced
		{"b7", false}, // black pawn on home rank
		{"e1", false}, // kings never marked
		{"e8", false},
	}
	for _, tt := range tests {
		fig, ok := b.Get(sq(tt.square))
		if !ok {
			t.Fatalf("no figure on %s", tt.square)
		}
		if fig.Moved != tt.wantMoved {
			t.Errorf("%s Moved = %v; want %v", tt.square, fig.Moved, tt.wantMoved)
		}
	}
}

func TestPlacementRoundTrip(t *testing.T) {
	placements := []string{
		InitialPlacement,
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R",
		"8/5k2/8/8/8/8/5K2/4R3",
		"6k1/5ppp/8/8/8/8/8/R5K1",
	}
	for _, p := range placements {
		b, err := ParsePlacement(p)
		if err != nil {
			t.Fatalf("ParsePlacement(%q): %v", p, err)
		}
		if got := b.Placement(); got != p {
			t.Errorf("Placement() = %q; want %q", got, p)
		}
	}
}
