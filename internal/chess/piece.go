package chess

// PieceKind identifies one of the six chess piece types.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the name of the piece kind.
func (k PieceKind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// PieceColor is the colour of a piece or player.
type PieceColor uint8

const (
	Black PieceColor = iota
	White
)

// String returns the string representation of a colour.
func (c PieceColor) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c PieceColor) Opposite() PieceColor {
	if c == White {
		return Black
	}
	return White
}

// Piece is an immutable kind+colour pair. Two pieces of the same kind
// and colour are indistinguishable.
type Piece struct {
	Kind  PieceKind
	Color PieceColor
}

// W builds a white piece of the given kind.
func W(kind PieceKind) Piece {
	return Piece{Kind: kind, Color: White}
}

// B builds a black piece of the given kind.
func B(kind PieceKind) Piece {
	return Piece{Kind: kind, Color: Black}
}
