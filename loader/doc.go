// Package loader parses raw embedding files into rows for store.Build. It
// understands GloVe-style whitespace-delimited text and CSV, with optional
// header detection and a progress callback for large files.
package loader
