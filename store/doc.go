// Package store defines the immutable word-vector store at the heart of the
// toolkit. A Store is built once from raw (token, vector) rows, normalizing
// every vector to unit length, and is read-only thereafter, which makes it
// safe to share between concurrent query callers without locking.
//
// The package also provides SQLite persistence for built stores so that
// large embedding files only need to be parsed once.
package store
