package search

import (
	"errors"
	"fmt"
	"sort"

	"github.com/viant/wordvec/store"
	"github.com/viant/wordvec/vector"
)

// ErrInvalidArgument indicates a query parameter outside its valid range,
// such as a non-positive neighbor count or a count exceeding the store size.
var ErrInvalidArgument = errors.New("search: invalid argument")

// Scored pairs a token with its similarity score against some query vector.
type Scored struct {
	Token string
	Score float64
}

// Similarity returns the dot product of u and v. For two unit-length vectors
// this is their cosine similarity; for an unnormalized query (an analogy
// offset or a group mean) it is the raw dot-product score the toolkit ranks
// by. Both vectors must have the same length.
func Similarity(u, v []float32) float64 {
	return vector.Dot(u, v)
}

// RankAll scores query against every vector in s and returns the results
// sorted by descending score. Ties keep the store's insertion order, so
// identical inputs always produce identical rankings. The query need not be
// unit length; it must match the store dimension.
func RankAll(s *store.Store, query []float32) ([]Scored, error) {
	if len(query) != s.Dimension() {
		return nil, fmt.Errorf("%w: query has %d components, store dimension is %d", ErrInvalidArgument, len(query), s.Dimension())
	}
	results := make([]Scored, s.Size())
	for i := 0; i < s.Size(); i++ {
		token, vec := s.At(i)
		results[i] = Scored{Token: token, Score: vector.Dot(query, vec)}
	}
	sort.SliceStable(results, func(a, b int) bool { return results[a].Score > results[b].Score })
	return results, nil
}

// NearestNeighbors returns the k tokens most similar to token, best first.
// The queried token's own entry is excluded by identity, not by rank, so a
// near-duplicate vector elsewhere in the store can never displace a true
// neighbor. It fails with store.ErrUnknownToken when token is absent and
// ErrInvalidArgument when k < 1 or k+1 exceeds the store size.
func NearestNeighbors(s *store.Store, token string, k int) ([]string, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be at least 1, got %d", ErrInvalidArgument, k)
	}
	if k+1 > s.Size() {
		return nil, fmt.Errorf("%w: k=%d needs at least %d tokens, store has %d", ErrInvalidArgument, k, k+1, s.Size())
	}
	query, err := s.Get(token)
	if err != nil {
		return nil, err
	}
	ranked, err := RankAll(s, query)
	if err != nil {
		return nil, err
	}
	neighbors := make([]string, 0, k)
	for _, r := range ranked {
		if r.Token == token {
			continue
		}
		neighbors = append(neighbors, r.Token)
		if len(neighbors) == k {
			break
		}
	}
	return neighbors, nil
}
