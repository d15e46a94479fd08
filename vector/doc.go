// Package vector provides the numeric primitives shared by the word-vector
// toolkit: dot products, Euclidean magnitudes, unit-length normalization, and
// a compact BLOB codec used when persisting embeddings to SQLite.
package vector
