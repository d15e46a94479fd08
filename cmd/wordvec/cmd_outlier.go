package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/viant/wordvec/internal/config"
	"github.com/viant/wordvec/outlier"
)

// handleOutlier implements the outlier subcommand.
func handleOutlier(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("outlier", flag.ExitOnError)
	var words string
	fs.StringVar(&words, "w", "", "Comma-separated word group")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `USAGE:
    wordvec outlier -w word1,word2,word3,...

DESCRIPTION:
    Print the word least similar to the group's mean direction.

EXAMPLE:
    wordvec outlier -w einstein,bohr,feynman,mozart
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		log.Fatalf("parse arguments: %v", err)
	}
	var tokens []string
	for _, w := range strings.Split(words, ",") {
		if w = strings.TrimSpace(w); w != "" {
			tokens = append(tokens, w)
		}
	}
	if len(tokens) < 2 {
		fmt.Fprintf(os.Stderr, "error: -w needs at least two comma-separated words\n\n")
		fs.Usage()
		os.Exit(1)
	}

	ctx := context.Background()
	s, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	odd, err := outlier.LeastCentral(s, tokens)
	if err != nil {
		log.Fatalf("outlier: %v", err)
	}
	fmt.Println(odd)
}
