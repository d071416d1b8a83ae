// Package analysis produces position reports: the legal move list and
// the game-status verdicts for a FEN record.
package analysis

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// Report summarizes one position. LegalMoves is in long algebraic
// notation, sorted lexically so reports compare stably.
type Report struct {
	FEN            string   `json:"fen"`
	Turn           string   `json:"turn"`
	LegalMoves     []string `json:"legalMoves"`
	InCheck        bool     `json:"inCheck"`
	Checkmate      bool     `json:"checkmate"`
	Stalemate      bool     `json:"stalemate"`
	FiftyMoveDraw  bool     `json:"fiftyMoveDraw"`
	HalfmoveClock  int      `json:"halfmoveClock"`
	FullmoveNumber int      `json:"fullmoveNumber"`
}

// Analyze decodes fen and reports on the position. Both kings must be
// present; a kingless position is rejected here rather than panicking
// inside check detection.
func Analyze(fen string) (*Report, error) {
	state, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return AnalyzeState(state)
}

// AnalyzeState reports on an already-decoded position.
func AnalyzeState(state *chess.GameState) (*Report, error) {
	for _, color := range [2]chess.PieceColor{chess.White, chess.Black} {
		if _, ok := state.Board.FindKing(color); !ok {
			return nil, fmt.Errorf("position has no %v king", color)
		}
	}

	moves := engine.LegalMoves(state)
	uci := make([]string, 0, len(moves))
	for _, m := range moves {
		uci = append(uci, engine.FormatMove(m))
	}
	slices.Sort(uci)

	inCheck := engine.IsInCheck(state)
	return &Report{
		FEN:            engine.FormatFEN(state),
		Turn:           state.Turn.String(),
		LegalMoves:     uci,
		InCheck:        inCheck,
		Checkmate:      inCheck && len(moves) == 0,
		Stalemate:      !inCheck && len(moves) == 0,
		FiftyMoveDraw:  engine.IsFiftyMoveRule(state),
		HalfmoveClock:  state.HalfmoveClock,
		FullmoveNumber: state.FullmoveNumber,
	}, nil
}
