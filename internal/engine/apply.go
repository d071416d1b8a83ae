package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// ApplyMove executes m on state: it updates the board, the capture
// log, castling rights, the en-passant target and the halfmove clock.
// It does not flip the side to move or the fullmove counter; callers
// driving a game call AdvanceTurn after each applied move.
//
// The move is trusted. Applying a move that does not come from the
// generator for this state leaves the state undefined, and applying a
// move whose origin square is empty panics.
func ApplyMove(state *chess.GameState, m chess.Move) {
	state.HalfmoveClock++
	state.HasEnPassant = false

	switch m := m.(type) {
	case chess.Normal:
		piece := movePiece(state, m.From, m.To)
		if piece.Kind == chess.Pawn {
			state.HalfmoveClock = 0
		}
		waiveCastlingRights(state, m.From, piece)

	case chess.Capture:
		piece := movePiece(state, m.From, m.To)
		state.CapturedPieces = append(state.CapturedPieces, m.Captured)
		state.HalfmoveClock = 0
		waiveCastlingRights(state, m.From, piece)
		waiveCastlingRights(state, m.To, m.Captured)

	case chess.EnPassant:
		movePiece(state, m.From, m.To)
		captured := mustGet(state, m.Captured)
		state.CapturedPieces = append(state.CapturedPieces, captured)
		state.Board.Clear(m.Captured)
		state.HalfmoveClock = 0

	case chess.DoublePawnPush:
		movePiece(state, m.From, m.To)
		state.EnPassant = m.EnPassant
		state.HasEnPassant = true
		state.HalfmoveClock = 0

	case chess.Promotion:
		state.Board.Clear(m.From)
		state.Board.Set(m.To, m.Promoted)
		state.HalfmoveClock = 0

	case chess.PromotionCapture:
		state.Board.Clear(m.From)
		state.CapturedPieces = append(state.CapturedPieces, m.Captured)
		state.Board.Set(m.To, m.Promoted)
		state.HalfmoveClock = 0
		waiveCastlingRights(state, m.To, m.Captured)

	case chess.Castle:
		king := movePiece(state, m.From, m.To)
		movePiece(state, m.RookFrom, m.RookTo)
		state.ClearCastle(king.Color, chess.KingSide)
		state.ClearCastle(king.Color, chess.QueenSide)

	default:
		panic(fmt.Sprintf("unknown move variant %T", m))
	}
}

// AdvanceTurn passes the move to the other side, bumping the fullmove
// counter when Black has just moved.
func AdvanceTurn(state *chess.GameState) {
	if state.Turn == chess.Black {
		state.FullmoveNumber++
	}
	state.Turn = state.Turn.Opposite()
}

func movePiece(state *chess.GameState, from, to chess.Position) chess.Piece {
	piece := mustGet(state, from)
	state.Board.Clear(from)
	state.Board.Set(to, piece)
	return piece
}

func mustGet(state *chess.GameState, pos chess.Position) chess.Piece {
	piece, ok := state.Board.Get(pos)
	if !ok {
		panic(fmt.Sprintf("no piece on %v", pos))
	}
	return piece
}
