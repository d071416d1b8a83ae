// fen-analyze is a tool for analyzing chess positions given as FEN records:
// it reports legal moves, check, checkmate, stalemate and draw status.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chesscore-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("fen-analyze version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "fen-analyze: %v\n", err)
		os.Exit(1)
	}
	defer closeOutput(cfg)

	input, err := openInput(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fen-analyze: %v\n", err)
		os.Exit(1)
	}
	defer input.Close()

	failed, err := processPositions(cfg, input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fen-analyze: %v\n", err)
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fen-analyze [options]\n\n")
	fmt.Fprintf(os.Stderr, "Reads FEN records, one per line, and prints an analysis of each\n")
	fmt.Fprintf(os.Stderr, "position. Blank lines and lines starting with # are skipped.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
