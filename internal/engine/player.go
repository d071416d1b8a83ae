package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// Player supplies moves for one side of a game. Implementations are
// not required to return a legal move; the caller validates against
// LegalMoves and decides how to handle an illegal choice.
type Player interface {
	GetMove(state *chess.GameState) chess.Move
}
