package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// promotionKinds lists the pieces a pawn may promote to, in the order
// the promotion variants are generated.
var promotionKinds = [4]chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// pawnProfile captures the colour-dependent constants of pawn movement.
type pawnProfile struct {
	color         chess.PieceColor
	startRank     uint8
	promotionRank uint8
	pushDir       int // rank delta of a single push
}

func pawnProfileFor(color chess.PieceColor) pawnProfile {
	if color == chess.White {
		return pawnProfile{color: chess.White, startRank: 1, promotionRank: 7, pushDir: 1}
	}
	return pawnProfile{color: chess.Black, startRank: 6, promotionRank: 0, pushDir: -1}
}

func pawnMoves(state *chess.GameState, from chess.Position, prof pawnProfile) []chess.Move {
	moves := pawnPushes(state, from, prof)
	return append(moves, pawnCaptures(state, from, prof)...)
}

// pawnPushes generates the single push (blocked by any occupant) and,
// from the start rank, the double push (blocked by an occupant on
// either square). A push onto the promotion rank becomes the four
// promotion variants instead of a Normal move.
func pawnPushes(state *chess.GameState, from chess.Position, prof pawnProfile) []chess.Move {
	var moves []chess.Move
	push := chess.NewPosition(uint8(int(from.Rank())+prof.pushDir), from.File())
	if _, occupied := state.Board.Get(push); occupied {
		return nil
	}
	if from.Rank() == prof.startRank {
		double := chess.NewPosition(uint8(int(from.Rank())+2*prof.pushDir), from.File())
		if _, occupied := state.Board.Get(double); !occupied {
			moves = append(moves, chess.DoublePawnPush{From: from, To: double, EnPassant: push})
		}
	}
	if push.Rank() == prof.promotionRank {
		moves = append(moves, pawnPromotions(from, push, prof.color)...)
	} else {
		moves = append(moves, chess.Normal{From: from, To: push})
	}
	return moves
}

// pawnCaptures generates the two diagonal captures, including captures
// onto the en-passant target square. An en-passant move captures the
// pawn one rank behind the target, not the target square itself.
func pawnCaptures(state *chess.GameState, from chess.Position, prof pawnProfile) []chess.Move {
	var moves []chess.Move
	for _, df := range [2]int{-1, 1} {
		file := int(from.File()) + df
		if file < 0 || file > 7 {
			continue
		}
		target := chess.NewPosition(uint8(int(from.Rank())+prof.pushDir), uint8(file))
		if piece, occupied := state.Board.Get(target); occupied {
			if piece.Color == prof.color {
				continue
			}
			if target.Rank() == prof.promotionRank {
				moves = append(moves, pawnPromotionCaptures(from, target, piece, prof.color)...)
			} else {
				moves = append(moves, chess.Capture{From: from, To: target, Captured: piece})
			}
		} else if ep, ok := state.EnPassantTarget(); ok && ep == target {
			captured := chess.NewPosition(from.Rank(), target.File())
			moves = append(moves, chess.EnPassant{From: from, To: target, Captured: captured})
		}
	}
	return moves
}

func pawnPromotions(from, to chess.Position, color chess.PieceColor) []chess.Move {
	moves := make([]chess.Move, 0, len(promotionKinds))
	for _, kind := range promotionKinds {
		moves = append(moves, chess.Promotion{
			From:     from,
			To:       to,
			Promoted: chess.Piece{Kind: kind, Color: color},
		})
	}
	return moves
}

func pawnPromotionCaptures(from, to chess.Position, captured chess.Piece, color chess.PieceColor) []chess.Move {
	moves := make([]chess.Move, 0, len(promotionKinds))
	for _, kind := range promotionKinds {
		moves = append(moves, chess.PromotionCapture{
			From:     from,
			To:       to,
			Captured: captured,
			Promoted: chess.Piece{Kind: kind, Color: color},
		})
	}
	return moves
}
