package engine

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestParseFENInitialPosition(t *testing.T) {
	state := mustParse(t, InitialFEN)

	testutil.AssertEqual(t, state.Turn, chess.White)
	testutil.AssertEqual(t, state.CastlingRights, chess.AllCastlingRights)
	testutil.AssertFalse(t, state.HasEnPassant)
	testutil.AssertEqual(t, state.HalfmoveClock, 0)
	testutil.AssertEqual(t, state.FullmoveNumber, 1)

	piece, ok := state.Board.Get(at(t, "e1"))
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, piece, chess.W(chess.King))
	piece, ok = state.Board.Get(at(t, "d8"))
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, piece, chess.B(chess.Queen))
	for file := uint8(0); file < 8; file++ {
		piece, ok = state.Board.Get(chess.NewPosition(1, file))
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, piece, chess.W(chess.Pawn))
	}
	_, ok = state.Board.Get(at(t, "e4"))
	testutil.AssertFalse(t, ok)
}

func TestParseFENAfterFirstMove(t *testing.T) {
	state := mustParse(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")

	testutil.AssertEqual(t, state.Turn, chess.Black)
	ep, ok := state.EnPassantTarget()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, ep, at(t, "e3"))

	piece, ok := state.Board.Get(at(t, "e4"))
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, piece, chess.W(chess.Pawn))
	_, ok = state.Board.Get(at(t, "e2"))
	testutil.AssertFalse(t, ok)
}

func TestParseFENCastleLetterOrderIrrelevant(t *testing.T) {
	a := mustParse(t, "8/8/8/8/8/8/8/8 w KQkq - 0 0")
	b := mustParse(t, "8/8/8/8/8/8/8/8 w QKqk - 0 0")
	testutil.AssertEqual(t, a, b)
}

func TestParseFENTrailingEmptyCountOptional(t *testing.T) {
	a := mustParse(t, "p7/1p6/2p5/3p4/4p3/5p2/6p1/ w - - 0 0")
	b := mustParse(t, "p7/1p/2p/3p/4p/5p/6p/8 w - - 0 0")
	testutil.AssertEqual(t, a, b)
}

func TestParseFENEmptyBoard(t *testing.T) {
	state := mustParse(t, "/////// w - - 0 0")
	testutil.AssertEqual(t, state.Board, chess.NewBoard())
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want error
	}{
		{"empty string", "", errors.ErrNotEnoughFields},
		{"five fields", "8/8/8/8/8/8/8/8 w KQkq - 0", errors.ErrNotEnoughFields},
		{"seven fields", "8/8/8/8/8/8/8/8 w KQkq - 0 1 x", errors.ErrNotEnoughFields},
		{"bad piece letter", "8/8/8/8/3x4/8/8/8 w - - 0 1", errors.ErrInvalidPiece},
		{"turn too long", "8/8/8/8/8/8/8/8 bb - - 0 1", errors.ErrInvalidTurn},
		{"turn unknown letter", "8/8/8/8/8/8/8/8 x - - 0 1", errors.ErrInvalidTurn},
		{"bad castle letter", "8/8/8/8/8/8/8/8 w KX - 0 1", errors.ErrInvalidCastle},
		{"en passant bad square", "8/8/8/8/8/8/8/8 w - i9 0 1", errors.ErrInvalidEnPassant},
		{"en passant too long", "8/8/8/8/8/8/8/8 w - e33 0 1", errors.ErrInvalidEnPassant},
		{"nine ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1", errors.ErrInvalidRankCount},
		{"seven ranks", "8/8/8/8/8/8/8 w - - 0 1", errors.ErrInvalidRankCount},
		{"nine files", "ppppppppp/8/8/8/8/8/8/8 w - - 0 1", errors.ErrInvalidFileCount},
		{"empty count overflow", "p8/8/8/8/8/8/8/8 w - - 0 1", errors.ErrInvalidFileCount},
		{"negative halfmove", "8/8/8/8/8/8/8/8 w - - -1 1", errors.ErrInvalidField},
		{"non-numeric halfmove", "8/8/8/8/8/8/8/8 w - - a 1", errors.ErrInvalidField},
		{"non-numeric fullmove", "8/8/8/8/8/8/8/8 w - - 0 x", errors.ErrInvalidField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFEN(tt.fen)
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}

func TestFormatFENInitialState(t *testing.T) {
	testutil.AssertEqual(t, FormatFEN(NewInitialState()), InitialFEN)
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2K2n2/p7/2bP1bP1/1B3P1p/8/Q2p1Rk1/1r5N b - - 12 34",
		"8/8/8/8/8/8/8/8 w - - 0 0",
		"4k3/8/8/8/8/8/8/4K2R w K - 99 50",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			state := mustParse(t, fen)
			testutil.AssertEqual(t, FormatFEN(state), fen)
		})
	}
}

func TestFormatFENPartialCastlingRights(t *testing.T) {
	state := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1")
	testutil.AssertEqual(t, FormatFEN(state), "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1")
}
