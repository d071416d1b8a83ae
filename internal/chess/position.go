// Package chess provides the core value types of the rules engine:
// squares, pieces, the board, moves, and the aggregate game state.
package chess

import "fmt"

// Position identifies a single board square. Rank and file are packed
// into rank*8+file, so the numeric value of a Position is also its flat
// index into the board's square array. That identity is relied on
// throughout the engine; no translation layer sits between the two.
type Position uint8

// NewPosition builds a Position from a rank and file in [0,8).
// Out-of-range coordinates are a programming error and panic.
func NewPosition(rank, file uint8) Position {
	if rank > 7 {
		panic(fmt.Sprintf("invalid rank: %d", rank))
	}
	if file > 7 {
		panic(fmt.Sprintf("invalid file: %d", file))
	}
	return Position(rank<<3 | file)
}

// PositionFromIndex converts a flat square index in [0,64) back to a Position.
func PositionFromIndex(index int) Position {
	if index < 0 || index > 63 {
		panic(fmt.Sprintf("invalid square index: %d", index))
	}
	return Position(index)
}

// Rank returns the rank in [0,8), with 0 being White's back rank.
func (p Position) Rank() uint8 {
	return uint8(p) >> 3
}

// File returns the file in [0,8), with 0 being the a-file.
func (p Position) File() uint8 {
	return uint8(p) & 0b111
}

// Index returns the flat square index in [0,64).
func (p Position) Index() int {
	return int(p)
}

// ParsePosition parses algebraic square notation, "a1" through "h8".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("position %q must be 2 characters long", s)
	}
	if s[0] < 'a' || s[0] > 'h' {
		return 0, fmt.Errorf("position %q: invalid file", s)
	}
	if s[1] < '1' || s[1] > '8' {
		return 0, fmt.Errorf("position %q: invalid rank", s)
	}
	return NewPosition(s[1]-'1', s[0]-'a'), nil
}

// String returns the algebraic notation of the square.
func (p Position) String() string {
	return string([]byte{'a' + p.File(), '1' + p.Rank()})
}
