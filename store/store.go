package store

import (
	"errors"
	"fmt"

	"github.com/viant/wordvec/vector"
)

var (
	// ErrDuplicateToken indicates that a token appeared more than once in the
	// rows passed to Build.
	ErrDuplicateToken = errors.New("store: duplicate token")

	// ErrDimensionMismatch indicates that a row's vector length differs from
	// the store dimension established by the first row.
	ErrDimensionMismatch = errors.New("store: dimension mismatch")

	// ErrZeroVector indicates that a row's vector has Euclidean norm exactly
	// zero and therefore no direction to normalize.
	ErrZeroVector = errors.New("store: zero vector")

	// ErrUnknownToken indicates a lookup for a token absent from the store.
	ErrUnknownToken = errors.New("store: unknown token")
)

// Row is a single raw input row for Build: a token and its embedding as read
// from the source file, prior to normalization.
type Row struct {
	Token  string
	Vector []float32
}

// Store maps tokens to unit-length word vectors. It preserves the insertion
// order of Build's rows, which downstream ranking uses as the deterministic
// tie-break order. A Store is immutable after Build.
type Store struct {
	dim     int
	tokens  []string
	vectors [][]float32
	index   map[string]int
}

// Build constructs a Store from raw rows. Every vector is copied and divided
// by its Euclidean norm, so the input rows remain untouched and every stored
// vector is unit length. The dimension is fixed by the first row.
//
// Build fails with ErrDuplicateToken on a repeated token,
// ErrDimensionMismatch when a row's length differs from the first row's, and
// ErrZeroVector when a row has norm exactly zero. On any error no store is
// returned; a partially built store never escapes.
func Build(rows []Row) (*Store, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("store: build requires at least one row")
	}
	dim := len(rows[0].Vector)
	if dim == 0 {
		return nil, fmt.Errorf("store: build with empty vector for token %q", rows[0].Token)
	}
	s := &Store{
		dim:     dim,
		tokens:  make([]string, 0, len(rows)),
		vectors: make([][]float32, 0, len(rows)),
		index:   make(map[string]int, len(rows)),
	}
	for _, row := range rows {
		if _, ok := s.index[row.Token]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateToken, row.Token)
		}
		if len(row.Vector) != dim {
			return nil, fmt.Errorf("%w: token %q has %d components, want %d", ErrDimensionMismatch, row.Token, len(row.Vector), dim)
		}
		unit, err := vector.Normalized(row.Vector)
		if err != nil {
			return nil, fmt.Errorf("%w: token %q", ErrZeroVector, row.Token)
		}
		s.index[row.Token] = len(s.tokens)
		s.tokens = append(s.tokens, row.Token)
		s.vectors = append(s.vectors, unit)
	}
	return s, nil
}

// Get returns a copy of the normalized vector stored for token. It fails
// with ErrUnknownToken when the token is absent.
func (s *Store) Get(token string) ([]float32, error) {
	i, ok := s.index[token]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownToken, token)
	}
	return append([]float32(nil), s.vectors[i]...), nil
}

// Contains reports whether token is present in the store.
func (s *Store) Contains(token string) bool {
	_, ok := s.index[token]
	return ok
}

// Size returns the number of tokens in the store.
func (s *Store) Size() int { return len(s.tokens) }

// Dimension returns the fixed vector dimensionality of the store.
func (s *Store) Dimension() int { return s.dim }

// At returns the token and vector at insertion position i. The returned
// slice is a read-only view into the store; callers must not modify it.
// It exists so ranking can scan all vectors without per-entry copies.
func (s *Store) At(i int) (string, []float32) {
	return s.tokens[i], s.vectors[i]
}

// Tokens returns the store's tokens in insertion order as a fresh slice.
func (s *Store) Tokens() []string {
	return append([]string(nil), s.tokens...)
}
