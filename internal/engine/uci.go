package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// FormatMove renders m in long algebraic (UCI) notation: origin square,
// destination square, and a lowercase piece letter for promotions.
func FormatMove(m chess.Move) string {
	s := chess.From(m).String() + chess.To(m).String()
	switch m := m.(type) {
	case chess.Promotion:
		return s + promotionLetter(m.Promoted.Kind)
	case chess.PromotionCapture:
		return s + promotionLetter(m.Promoted.Kind)
	}
	return s
}

func promotionLetter(kind chess.PieceKind) string {
	switch kind {
	case chess.Queen:
		return "q"
	case chess.Rook:
		return "r"
	case chess.Bishop:
		return "b"
	case chess.Knight:
		return "n"
	}
	panic(fmt.Sprintf("not a promotion piece: %v", kind))
}

// FindMove resolves a UCI move string against the legal moves of the
// position. A string that names no legal move yields ErrIllegalMove,
// whether it is malformed or merely not playable here.
func FindMove(state *chess.GameState, uci string) (chess.Move, error) {
	for _, m := range LegalMoves(state) {
		if FormatMove(m) == uci {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", errors.ErrIllegalMove, uci)
}
