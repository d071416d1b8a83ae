package chess

import "fmt"

// Square is one board cell: a piece plus an occupancy flag. The zero
// value is an empty square.
type Square struct {
	Piece    Piece
	Occupied bool
}

// Board is a flat array of 64 squares indexed directly by Position.
// It is pure data and carries no rule knowledge; assigning a Board
// value copies the whole grid.
type Board struct {
	Squares [64]Square
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// Get returns the piece on pos and whether the square is occupied.
func (b *Board) Get(pos Position) (Piece, bool) {
	sq := b.Squares[pos.Index()]
	return sq.Piece, sq.Occupied
}

// Set places a piece on pos, replacing whatever was there.
func (b *Board) Set(pos Position, piece Piece) {
	b.Squares[pos.Index()] = Square{Piece: piece, Occupied: true}
}

// Clear empties the square at pos.
func (b *Board) Clear(pos Position) {
	b.Squares[pos.Index()] = Square{}
}

// Rank returns the 8 squares of the given rank, low file first.
func (b *Board) Rank(rank uint8) [8]Square {
	if rank > 7 {
		panic(fmt.Sprintf("invalid rank: %d", rank))
	}
	var result [8]Square
	copy(result[:], b.Squares[int(rank)*8:int(rank)*8+8])
	return result
}

// File returns the 8 squares of the given file, low rank first.
func (b *Board) File(file uint8) [8]Square {
	if file > 7 {
		panic(fmt.Sprintf("invalid file: %d", file))
	}
	var result [8]Square
	for rank := 0; rank < 8; rank++ {
		result[rank] = b.Squares[rank*8+int(file)]
	}
	return result
}

// FindKing locates the king of the given colour, scanning in board
// order. The second return is false when no such king is on the board.
func (b *Board) FindKing(color PieceColor) (Position, bool) {
	for i, sq := range b.Squares {
		if sq.Occupied && sq.Piece.Kind == King && sq.Piece.Color == color {
			return PositionFromIndex(i), true
		}
	}
	return 0, false
}
