package engine

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// mustParse decodes a FEN fixture, failing the test on error.
func mustParse(t *testing.T, fen string) *chess.GameState {
	t.Helper()
	state, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("parsing %q: %v", fen, err)
	}
	return state
}

// uciMoves renders moves in long algebraic notation, sorted.
func uciMoves(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, FormatMove(m))
	}
	slices.Sort(out)
	return out
}

// at is shorthand for building a square from algebraic notation.
func at(t *testing.T, s string) chess.Position {
	t.Helper()
	pos, err := chess.ParsePosition(s)
	if err != nil {
		t.Fatalf("bad square %q: %v", s, err)
	}
	return pos
}
