// processor.go - Position reading, parallel analysis and output
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/analysis"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// readPositions collects FEN records from r, one per line, skipping
// blank lines and # comments.
func readPositions(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return fens, nil
}

// processPositions analyzes every record from input on a worker pool
// and writes reports in input order. It returns the number of records
// that failed to analyze.
func processPositions(cfg *config.Config, input io.Reader) (int, error) {
	fens, err := readPositions(input)
	if err != nil {
		return 0, err
	}

	results := analyzeAll(cfg, fens)

	failed := 0
	for i, res := range results {
		if res.Error != nil {
			fmt.Fprintf(cfg.OutputWriter, "error: position %d: %v\n", i+1, res.Error)
			failed++
			continue
		}
		if cfg.CrossCheck {
			if err := crossCheckReport(fens[res.Index], res.Report); err != nil {
				fmt.Fprintf(cfg.OutputWriter, "error: position %d: %v\n", i+1, err)
				failed++
				continue
			}
		}
		if err := writeReport(cfg, res.Report); err != nil {
			return failed, err
		}
	}

	if cfg.Verbosity >= 1 {
		fmt.Fprintf(cfg.OutputWriter, "%d positions analyzed, %d failed\n", len(results), failed)
	}
	return failed, nil
}

// analyzeAll fans the records out to a worker pool and returns the
// results sorted back into input order.
func analyzeAll(cfg *config.Config, fens []string) []worker.ProcessResult {
	pool := worker.NewPoolWithOptions(func(item worker.WorkItem) worker.ProcessResult {
		report, err := analysis.Analyze(item.FEN)
		return worker.ProcessResult{Report: report, Index: item.Index, Error: err}
	}, worker.WithWorkers(cfg.Workers), worker.WithBufferSize(len(fens)+1))

	pool.Start()
	go func() {
		for i, fen := range fens {
			pool.Submit(worker.WorkItem{FEN: fen, Index: i})
		}
		pool.Close()
	}()

	results := make([]worker.ProcessResult, 0, len(fens))
	for res := range pool.Results() {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}

func writeReport(cfg *config.Config, report *analysis.Report) error {
	if cfg.JSONFormat {
		enc := json.NewEncoder(cfg.OutputWriter)
		return enc.Encode(report)
	}
	return writeTextReport(cfg.OutputWriter, report)
}

func writeTextReport(w io.Writer, report *analysis.Report) error {
	status := "ongoing"
	switch {
	case report.Checkmate:
		status = "checkmate"
	case report.Stalemate:
		status = "stalemate"
	case report.FiftyMoveDraw:
		status = "draw (fifty-move rule)"
	case report.InCheck:
		status = "check"
	}
	_, err := fmt.Fprintf(w, "%s\n  turn: %s  status: %s\n  legal moves (%d): %s\n",
		report.FEN, report.Turn, status, len(report.LegalMoves), strings.Join(report.LegalMoves, " "))
	return err
}
