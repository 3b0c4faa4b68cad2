package chess

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules/internal/errors"
)

// InitialPlacement is the piece-placement field of the standard starting position.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement creates a board from the piece-placement field of a FEN
// string. Pawns standing off their home rank are marked as moved; every
// other figure starts unmoved.
func ParsePlacement(placement string) (*Board, error) {
	board := NewBoard()
	rank := BoardSize
	file := 1

	for _, c := range placement {
		switch {
		case c == '/':
			if file != BoardSize+1 {
				return nil, fmt.Errorf("rank %d has %d files: %w", rank, file-1, errors.ErrInvalidFEN)
			}
			rank--
			file = 1
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			piece := PieceFromLetter(byte(c))
			if piece == NoPiece {
				return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			pos, err := NewPosition(file, rank)
			if err != nil {
				return nil, fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := White
			if unicode.IsLower(c) {
				colour = Black
			}
			fig := NewFigure(colour, piece)
			if piece == Pawn {
				fig.Moved = pos.Rank != pawnHomeRank(colour)
			}
			board.Place(pos, fig)
			file++
		}
	}

	if rank != 1 || file != BoardSize+1 {
		return nil, fmt.Errorf("incomplete placement %q: %w", placement, errors.ErrInvalidFEN)
	}
	return board, nil
}

// Placement returns the piece-placement field of a FEN string for b.
func (b *Board) Placement() string {
	var sb strings.Builder

	for rank := BoardSize; rank >= 1; rank-- {
		emptyCount := 0
		for file := 1; file <= BoardSize; file++ {
			fig := b.squares[file-1][rank-1]
			if fig.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(fig.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

func pawnHomeRank(colour Colour) uint8 {
	if colour == White {
		return 2
	}
	return 7
}
