package chess

import "fmt"

// Move is a closed set of move variants. Each variant carries exactly
// the data needed to replay it and holds no reference into any
// GameState. Variant values are comparable, so Move interface values
// compare by value as well.
//
// Every place a Move is applied or inspected switches exhaustively
// over the variants and panics on an unknown one; adding a variant
// means updating every such switch.
type Move interface {
	move()
}

// Normal moves a piece to an empty square.
type Normal struct {
	From, To Position
}

// Capture moves a piece onto an enemy-occupied square.
type Capture struct {
	From, To Position
	Captured Piece
}

// EnPassant captures a pawn in passing. Captured is the square of the
// captured pawn, which is not the destination square.
type EnPassant struct {
	From, To Position
	Captured Position
}

// DoublePawnPush advances a pawn two ranks from its start rank.
// EnPassant is the skipped square a future en-passant capture targets.
type DoublePawnPush struct {
	From, To  Position
	EnPassant Position
}

// Promotion pushes a pawn onto its promotion rank, replacing it with
// the promoted piece.
type Promotion struct {
	From, To Position
	Promoted Piece
}

// PromotionCapture is a capturing promotion.
type PromotionCapture struct {
	From, To           Position
	Captured, Promoted Piece
}

// Castle moves king and rook together.
type Castle struct {
	From, To         Position
	RookFrom, RookTo Position
}

func (Normal) move()           {}
func (Capture) move()          {}
func (EnPassant) move()        {}
func (DoublePawnPush) move()   {}
func (Promotion) move()        {}
func (PromotionCapture) move() {}
func (Castle) move()           {}

// From returns the origin square of any move variant.
func From(m Move) Position {
	switch m := m.(type) {
	case Normal:
		return m.From
	case Capture:
		return m.From
	case EnPassant:
		return m.From
	case DoublePawnPush:
		return m.From
	case Promotion:
		return m.From
	case PromotionCapture:
		return m.From
	case Castle:
		return m.From
	default:
		panic(fmt.Sprintf("unknown move variant %T", m))
	}
}

// To returns the destination square of any move variant. For a Castle
// this is the king's destination.
func To(m Move) Position {
	switch m := m.(type) {
	case Normal:
		return m.To
	case Capture:
		return m.To
	case EnPassant:
		return m.To
	case DoublePawnPush:
		return m.To
	case Promotion:
		return m.To
	case PromotionCapture:
		return m.To
	case Castle:
		return m.To
	default:
		panic(fmt.Sprintf("unknown move variant %T", m))
	}
}
