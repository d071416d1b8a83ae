// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"io"
	"os"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

var (
	inputFile  = flag.String("input", "", "Input file of FEN records (default: stdin)")
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	workers    = flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	jsonOutput = flag.Bool("json", false, "Output reports as JSON, one object per line")
	quiet      = flag.Bool("quiet", false, "Suppress the summary line")
	crossCheck = flag.Bool("crosscheck", false, "Verify legal move lists against a second generator")
	version    = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Print usage and exit")
)

// applyFlags transfers flag values into cfg.
func applyFlags(cfg *config.Config) error {
	cfg.InputFile = *inputFile
	cfg.JSONFormat = *jsonOutput
	cfg.CrossCheck = *crossCheck
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *quiet {
		cfg.Verbosity = 0
	}
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			return errors.Wrap(err, "creating output file")
		}
		cfg.OutputWriter = f
	}
	return nil
}

func closeOutput(cfg *config.Config) {
	if closer, ok := cfg.OutputWriter.(io.Closer); ok && cfg.OutputWriter != os.Stdout {
		_ = closer.Close()
	}
}

func openInput(cfg *config.Config) (io.ReadCloser, error) {
	if cfg.InputFile == "" {
		return os.Stdin, nil
	}
	f, err := os.Open(cfg.InputFile)
	if err != nil {
		return nil, errors.Wrap(err, "opening input file")
	}
	return f, nil
}
