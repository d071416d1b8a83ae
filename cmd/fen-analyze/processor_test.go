package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/analysis"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func testConfig(out *bytes.Buffer) *config.Config {
	cfg := config.NewConfig()
	cfg.OutputWriter = out
	cfg.Workers = 2
	return cfg
}

func TestReadPositions(t *testing.T) {
	input := strings.NewReader(`
# starting position
rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1

  8/8/8/8/8/8/8/8 w - - 0 1
`)
	fens, err := readPositions(input)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, fens, []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"8/8/8/8/8/8/8/8 w - - 0 1",
	})
}

func TestProcessPositionsText(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out)

	input := strings.NewReader(engine.InitialFEN + "\n")
	failed, err := processPositions(cfg, input)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, failed, 0)

	text := out.String()
	testutil.AssertTrue(t, strings.Contains(text, engine.InitialFEN), "report echoes the record")
	testutil.AssertTrue(t, strings.Contains(text, "legal moves (20)"), "output: %s", text)
	testutil.AssertTrue(t, strings.Contains(text, "1 positions analyzed, 0 failed"), "summary line")
}

func TestProcessPositionsJSON(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out)
	cfg.JSONFormat = true
	cfg.Verbosity = 0

	input := strings.NewReader(engine.InitialFEN + "\n" + "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1\n")
	failed, err := processPositions(cfg, input)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, failed, 0)

	var reports []analysis.Report
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var report analysis.Report
		testutil.AssertNoError(t, json.Unmarshal(scanner.Bytes(), &report))
		reports = append(reports, report)
	}
	testutil.AssertEqual(t, len(reports), 2)
	testutil.AssertEqual(t, reports[0].FEN, engine.InitialFEN, "results keep input order")
	testutil.AssertTrue(t, reports[1].Stalemate)
}

func TestProcessPositionsReportsErrors(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out)
	cfg.Verbosity = 0

	input := strings.NewReader("not a fen\n" + engine.InitialFEN + "\n")
	failed, err := processPositions(cfg, input)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, failed, 1)
	testutil.AssertTrue(t, strings.Contains(out.String(), "error: position 1"), "output: %s", out.String())
}

func TestProcessPositionsOrderIsStable(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(&out)
	cfg.JSONFormat = true
	cfg.Verbosity = 0
	cfg.Workers = 8

	fens := []string{
		engine.InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
	}
	input := strings.NewReader(strings.Join(fens, "\n"))
	_, err := processPositions(cfg, input)
	testutil.AssertNoError(t, err)

	var got []string
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var report analysis.Report
		testutil.AssertNoError(t, json.Unmarshal(scanner.Bytes(), &report))
		got = append(got, report.FEN)
	}
	testutil.AssertEqual(t, got, fens)
}

func TestCrossCheckReport(t *testing.T) {
	report, err := analysis.Analyze(engine.InitialFEN)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, crossCheckReport(engine.InitialFEN, report))

	// A tampered move list must be flagged.
	report.LegalMoves = report.LegalMoves[1:]
	testutil.AssertError(t, crossCheckReport(engine.InitialFEN, report))
}
