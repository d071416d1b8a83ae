package engine

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"start position white", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", false},
		{"start position black", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1", false},
		{"scatter 001 white", "8/4NP2/5Bp1/1Q6/2Kp1R2/1r2p2b/pq1bk3/1r6 w - - 0 1", false},
		{"scatter 001 black", "8/4NP2/5Bp1/1Q6/2Kp1R2/1r2p2b/pq1bk3/1r6 b - - 0 1", false},
		{"scatter 002 white", "8/2K2n2/p7/2bP1bP1/1B3P1p/8/Q2p1Rk1/1r5N w - - 0 1", false},
		{"scatter 002 black", "8/2K2n2/p7/2bP1bP1/1B3P1p/8/Q2p1Rk1/1r5N b - - 0 1", true},
		{"scatter 003 white", "1b1R1Q2/2P1B1kN/5P1n/8/r3p3/K2p4/1P2PP2/8 w - - 0 1", true},
		{"scatter 003 black", "1b1R1Q2/2P1B1kN/5P1n/8/r3p3/K2p4/1P2PP2/8 b - - 0 1", true},
		{"scatter 004 white", "nR2Q3/N7/1p2P3/2K5/2rP4/2P1pq2/pP1p4/7k w - - 0 1", true},
		{"scatter 004 black", "nR2Q3/N7/1p2P3/2K5/2rP4/2P1pq2/pP1p4/7k b - - 0 1", false},
		{"scatter 005 white", "8/k1b2Rn1/5p2/8/K1Bp1n2/PpP2p1P/8/1rB5 w - - 0 1", false},
		{"scatter 005 black", "8/k1b2Rn1/5p2/8/K1Bp1n2/PpP2p1P/8/1rB5 b - - 0 1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := mustParse(t, tt.fen)
			testutil.AssertEqual(t, IsInCheck(state), tt.want)
		})
	}
}

func TestIsInCheckPanicsWithoutKing(t *testing.T) {
	state := mustParse(t, "4k3/8/8/8/8/8/8/8 w - - 0 1")
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	IsInCheck(state)
}
