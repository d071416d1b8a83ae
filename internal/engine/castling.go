package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// castleMoves synthesizes castle moves for color on its own back rank.
// The rights bit, the king and rook standing on their home squares,
// and the emptiness of the squares strictly between them are checked
// here; attack safety (king in check, king's path attacked) is the
// legality filter's job. The occupancy check matters for decoded
// states: a rights bit can claim a castle whose pieces are long gone.
func castleMoves(state *chess.GameState, color chess.PieceColor) []chess.Move {
	rank := homeRank(color)
	king := chess.NewPosition(rank, 4)
	if !holdsPiece(state, king, chess.Piece{Kind: chess.King, Color: color}) {
		return nil
	}

	var moves []chess.Move
	if state.CanCastle(color, chess.KingSide) {
		rookHome := chess.NewPosition(rank, 7)
		rookTarget := chess.NewPosition(rank, 5)
		kingTarget := chess.NewPosition(rank, 6)
		if holdsPiece(state, rookHome, chess.Piece{Kind: chess.Rook, Color: color}) &&
			squaresEmpty(state, rookTarget, kingTarget) {
			moves = append(moves, chess.Castle{
				From:     king,
				To:       kingTarget,
				RookFrom: rookHome,
				RookTo:   rookTarget,
			})
		}
	}
	if state.CanCastle(color, chess.QueenSide) {
		rookHome := chess.NewPosition(rank, 0)
		knightSquare := chess.NewPosition(rank, 1)
		kingTarget := chess.NewPosition(rank, 2)
		rookTarget := chess.NewPosition(rank, 3)
		if holdsPiece(state, rookHome, chess.Piece{Kind: chess.Rook, Color: color}) &&
			squaresEmpty(state, knightSquare, kingTarget, rookTarget) {
			moves = append(moves, chess.Castle{
				From:     king,
				To:       kingTarget,
				RookFrom: rookHome,
				RookTo:   rookTarget,
			})
		}
	}
	return moves
}

func holdsPiece(state *chess.GameState, pos chess.Position, want chess.Piece) bool {
	piece, ok := state.Board.Get(pos)
	return ok && piece == want
}

func squaresEmpty(state *chess.GameState, positions ...chess.Position) bool {
	for _, pos := range positions {
		if _, occupied := state.Board.Get(pos); occupied {
			return false
		}
	}
	return true
}

// homeRank is the back rank of the given colour.
func homeRank(color chess.PieceColor) uint8 {
	if color == chess.Black {
		return 7
	}
	return 0
}

// waiveCastlingRights clears the rights bits affected by a piece
// moving away from, or being captured on, the given square. Callers
// invoke it once for the moved piece and once for any captured piece;
// a rook captured on its home corner waives rights exactly as if it
// had moved.
func waiveCastlingRights(state *chess.GameState, pos chess.Position, piece chess.Piece) {
	switch piece.Kind {
	case chess.Rook:
		if pos.Rank() != homeRank(piece.Color) {
			return
		}
		switch pos.File() {
		case 0:
			state.ClearCastle(piece.Color, chess.QueenSide)
		case 7:
			state.ClearCastle(piece.Color, chess.KingSide)
		}
	case chess.King:
		state.ClearCastle(piece.Color, chess.KingSide)
		state.ClearCastle(piece.Color, chess.QueenSide)
	}
}
