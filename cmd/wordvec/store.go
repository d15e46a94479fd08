package main

import (
	"context"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/viant/wordvec/engine"
	"github.com/viant/wordvec/internal/config"
	"github.com/viant/wordvec/loader"
	"github.com/viant/wordvec/store"
)

// openStore resolves a query-ready store: the SQLite cache when configured
// and present on disk, the raw embedding file otherwise.
func openStore(ctx context.Context, cfg *config.Config) (*store.Store, error) {
	if cfg.Cache.Path != "" {
		if _, err := os.Stat(cfg.Cache.Path); err == nil {
			return loadCachedStore(ctx, cfg.Cache.Path)
		}
	}
	return parseStore(cfg)
}

func loadCachedStore(ctx context.Context, path string) (*store.Store, error) {
	db, err := engine.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cache %s: %w", path, err)
	}
	defer db.Close()
	s, err := store.LoadFrom(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("load cache %s: %w", path, err)
	}
	return s, nil
}

// parseStore reads and normalizes the configured embedding file, showing a
// spinner-style progress count on stderr while parsing.
func parseStore(cfg *config.Config) (*store.Store, error) {
	if cfg.Embeddings.Path == "" {
		return nil, fmt.Errorf("no embeddings path configured; set embeddings.path in %s", config.DefaultPath)
	}
	f, err := os.Open(cfg.Embeddings.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("parsing embeddings"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	rows, err := loader.ReadAll(f, loader.Options{
		Format:   loader.Format(cfg.Embeddings.Format),
		Progress: func(int) { _ = bar.Add(1) },
	})
	_ = bar.Finish()
	if err != nil {
		return nil, err
	}
	return store.Build(rows)
}
