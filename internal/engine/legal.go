package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// LegalMoves filters the pseudo-legal moves of the side to move down
// to those that do not leave its own king in check. Each candidate is
// tried on a clone of the state. Castle moves additionally require the
// king to be out of check now and the crossed square to be safe; the
// destination square is covered by the ordinary self-check test.
func LegalMoves(state *chess.GameState) []chess.Move {
	var legal []chess.Move
	for _, m := range PseudoLegalMoves(state, state.Turn) {
		if castle, ok := m.(chess.Castle); ok {
			if IsInCheck(state) {
				continue
			}
			if squareAttacked(state, castle.RookTo) {
				continue
			}
		}
		next := state.Clone()
		ApplyMove(next, m)
		if IsInCheck(next) {
			continue
		}
		legal = append(legal, m)
	}
	return legal
}
