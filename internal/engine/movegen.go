// Package engine implements the chess rules: move generation, check
// detection, the legality filter, move application and the FEN codec.
package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
)

// Fixed offset tables for the leaper pieces and the ray directions for
// the sliders, as {rank delta, file delta} pairs.
var (
	knightOffsets = [8][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
		{0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
	bishopDirections = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	rookDirections   = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// PseudoLegalMoves enumerates, for every square holding a piece of
// color, all moves that obey piece geometry and occupancy, ignoring
// whether the mover's own king ends up in check. Castle moves are
// appended last. Squares are scanned in board order (rank-major, low
// index first); callers must not depend on the exact ordering.
func PseudoLegalMoves(state *chess.GameState, color chess.PieceColor) []chess.Move {
	var moves []chess.Move
	for i := 0; i < 64; i++ {
		moves = append(moves, MovesForSquare(state, chess.PositionFromIndex(i), color)...)
	}
	return append(moves, castleMoves(state, color)...)
}

// MovesForSquare returns the pseudo-legal moves for the piece of the
// given color on pos. An empty square, or a square held by the other
// color, yields no moves. Castle moves are synthesized separately and
// never appear here.
func MovesForSquare(state *chess.GameState, pos chess.Position, color chess.PieceColor) []chess.Move {
	piece, ok := state.Board.Get(pos)
	if !ok || piece.Color != color {
		return nil
	}
	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(state, pos, pawnProfileFor(color))
	case chess.Knight:
		return offsetMoves(state, pos, color, knightOffsets[:])
	case chess.Bishop:
		return slidingMoves(state, pos, color, bishopDirections[:])
	case chess.Rook:
		return slidingMoves(state, pos, color, rookDirections[:])
	case chess.Queen:
		moves := slidingMoves(state, pos, color, bishopDirections[:])
		return append(moves, slidingMoves(state, pos, color, rookDirections[:])...)
	case chess.King:
		return offsetMoves(state, pos, color, kingOffsets[:])
	}
	return nil
}

// appendTarget adds the move from->to: a Capture when the target holds
// an enemy piece, a Normal when it is empty, nothing when it holds a
// friendly piece. The second return reports whether the target was
// occupied, which ends a slider's ray.
func appendTarget(moves []chess.Move, state *chess.GameState, from, to chess.Position, color chess.PieceColor) ([]chess.Move, bool) {
	if piece, ok := state.Board.Get(to); ok {
		if piece.Color != color {
			moves = append(moves, chess.Capture{From: from, To: to, Captured: piece})
		}
		return moves, true
	}
	return append(moves, chess.Normal{From: from, To: to}), false
}

// offsetMoves tries each fixed offset from pos, bounds-checked against
// the board edges.
func offsetMoves(state *chess.GameState, pos chess.Position, color chess.PieceColor, offsets [][2]int) []chess.Move {
	var moves []chess.Move
	for _, off := range offsets {
		rank := int(pos.Rank()) + off[0]
		file := int(pos.File()) + off[1]
		if rank < 0 || rank > 7 || file < 0 || file > 7 {
			continue
		}
		moves, _ = appendTarget(moves, state, pos, chess.NewPosition(uint8(rank), uint8(file)), color)
	}
	return moves
}

// slidingMoves casts rays from pos in each direction. A ray stops
// before a friendly square (excluded entirely) and on an enemy square
// (included as a Capture).
func slidingMoves(state *chess.GameState, pos chess.Position, color chess.PieceColor, directions [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range directions {
		rank := int(pos.Rank()) + dir[0]
		file := int(pos.File()) + dir[1]
		for rank >= 0 && rank <= 7 && file >= 0 && file <= 7 {
			var blocked bool
			moves, blocked = appendTarget(moves, state, pos, chess.NewPosition(uint8(rank), uint8(file)), color)
			if blocked {
				break
			}
			rank += dir[0]
			file += dir[1]
		}
	}
	return moves
}
