package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/viant/wordvec/internal/config"
	"github.com/viant/wordvec/search"
)

// handleNeighbors implements the neighbors subcommand.
func handleNeighbors(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("neighbors", flag.ExitOnError)
	var word string
	var k int
	fs.StringVar(&word, "w", "", "Query word")
	fs.IntVar(&k, "k", cfg.TopN, "Number of neighbors to return")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `USAGE:
    wordvec neighbors -w <word> [-k n]

DESCRIPTION:
    Print the k words closest to the query word by cosine similarity.

OPTIONS:
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		log.Fatalf("parse arguments: %v", err)
	}
	if word == "" {
		fmt.Fprintf(os.Stderr, "error: -w <word> is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	ctx := context.Background()
	s, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	neighbors, err := search.NearestNeighbors(s, word, k)
	if err != nil {
		log.Fatalf("neighbors: %v", err)
	}
	for i, n := range neighbors {
		fmt.Printf("%2d. %s\n", i+1, n)
	}
}
