// crosscheck.go - Legal move verification against an independent generator
package main

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore-go/internal/analysis"
)

// crossCheckReport regenerates the legal move list for the original
// record with a bitboard-based generator and compares the two move
// sets. Both lists are in long algebraic notation, so sorted string
// comparison suffices.
func crossCheckReport(fen string, report *analysis.Report) error {
	board := dragontoothmg.ParseFen(fen)
	reference := make([]string, 0, len(report.LegalMoves))
	for _, m := range board.GenerateLegalMoves() {
		reference = append(reference, m.String())
	}
	slices.Sort(reference)

	if !slices.Equal(reference, report.LegalMoves) {
		return fmt.Errorf("cross-check mismatch: got %v, reference %v", report.LegalMoves, reference)
	}
	return nil
}
