package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// IsInCheck reports whether the side to move is in check: whether any
// pseudo-legal move of the opponent lands on that side's king. It
// panics if the side to move has no king; states built through the
// FEN decoder or ApplyMove always have one.
func IsInCheck(state *chess.GameState) bool {
	kingPos, ok := state.Board.FindKing(state.Turn)
	if !ok {
		panic(fmt.Sprintf("no %v king on the board", state.Turn))
	}
	for _, m := range PseudoLegalMoves(state, state.Turn.Opposite()) {
		if chess.To(m) == kingPos {
			return true
		}
	}
	return false
}

// squareAttacked reports whether any pseudo-legal move of the opponent
// of the side to move targets pos. Used to keep a castling king from
// crossing an attacked square.
func squareAttacked(state *chess.GameState, pos chess.Position) bool {
	for _, m := range PseudoLegalMoves(state, state.Turn.Opposite()) {
		if chess.To(m) == pos {
			return true
		}
	}
	return false
}
