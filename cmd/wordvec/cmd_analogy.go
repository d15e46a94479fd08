package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/viant/wordvec/analogy"
	"github.com/viant/wordvec/internal/config"
)

// handleAnalogy implements the analogy subcommand.
func handleAnalogy(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("analogy", flag.ExitOnError)
	var a, b, c string
	var topN int
	fs.StringVar(&a, "a", "", "First word of the known pair")
	fs.StringVar(&b, "b", "", "Second word of the known pair")
	fs.StringVar(&c, "c", "", "Word to complete the analogy for")
	fs.IntVar(&topN, "n", cfg.TopN, "Number of candidates to return")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `USAGE:
    wordvec analogy -a <word> -b <word> -c <word> [-n count]

DESCRIPTION:
    Solve a:b :: c:? by ranking words against the offset vector c - a + b.

EXAMPLE:
    wordvec analogy -a man -b woman -c king
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		log.Fatalf("parse arguments: %v", err)
	}
	if a == "" || b == "" || c == "" {
		fmt.Fprintf(os.Stderr, "error: -a, -b and -c are all required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	ctx := context.Background()
	s, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	candidates, err := analogy.Solve(s, a, b, c, topN)
	if err != nil {
		log.Fatalf("analogy: %v", err)
	}
	fmt.Printf("%s : %s :: %s : ?\n", a, b, c)
	for i, candidate := range candidates {
		fmt.Printf("%2d. %s\n", i+1, candidate)
	}
}
