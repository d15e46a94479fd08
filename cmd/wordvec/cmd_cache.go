package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/viant/wordvec/engine"
	"github.com/viant/wordvec/internal/config"
	"github.com/viant/wordvec/store"
)

// handleCache implements the cache subcommand: parse the configured
// embedding file once and persist the normalized store into SQLite.
func handleCache(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("cache", flag.ExitOnError)
	var out string
	fs.StringVar(&out, "out", cfg.Cache.Path, "SQLite database to write")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `USAGE:
    wordvec cache [-out vectors.db]

DESCRIPTION:
    Parse and normalize the configured embedding file, then save the store
    into a SQLite database. Later commands load the cache instead of
    reparsing the text file. The wordvec_cosine and wordvec_dot SQL
    functions are registered for ad-hoc inspection of the cached vectors.
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		log.Fatalf("parse arguments: %v", err)
	}
	if out == "" {
		fmt.Fprintf(os.Stderr, "error: no cache path; pass -out or set cache.path in config\n\n")
		fs.Usage()
		os.Exit(1)
	}

	s, err := parseStore(cfg)
	if err != nil {
		log.Fatalf("build store: %v", err)
	}
	if err := engine.RegisterVectorFunctions(nil); err != nil {
		log.Fatalf("register SQL functions: %v", err)
	}
	db, err := engine.Open(out)
	if err != nil {
		log.Fatalf("open %s: %v", out, err)
	}
	defer db.Close()
	if err := store.SaveTo(context.Background(), db, s); err != nil {
		log.Fatalf("save store: %v", err)
	}
	fmt.Printf("cached %d vectors (dimension %d) into %s\n", s.Size(), s.Dimension(), out)
}
