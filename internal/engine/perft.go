package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given
// depth. It is a correctness probe for the generator, not a search;
// the well-known node counts pin down every rule interaction at once.
func Perft(state *chess.GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(state)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next := state.Clone()
		ApplyMove(next, m)
		AdvanceTurn(next)
		nodes += Perft(next, depth-1)
	}
	return nodes
}
