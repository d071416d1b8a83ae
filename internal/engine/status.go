package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// IsCheckmate reports whether the side to move is in check with no
// legal reply.
func IsCheckmate(state *chess.GameState) bool {
	return IsInCheck(state) && len(LegalMoves(state)) == 0
}

// IsStalemate reports whether the side to move has no legal move while
// not in check.
func IsStalemate(state *chess.GameState) bool {
	return !IsInCheck(state) && len(LegalMoves(state)) == 0
}

// IsFiftyMoveRule reports whether the halfmove clock has reached 100
// plies, making the position claimable as a draw.
func IsFiftyMoveRule(state *chess.GameState) bool {
	return state.HalfmoveClock >= 100
}
