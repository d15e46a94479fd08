package outlier

import (
	"fmt"

	"github.com/viant/wordvec/search"
	"github.com/viant/wordvec/store"
	"github.com/viant/wordvec/vector"
)

// LeastCentral returns the member of tokens whose vector is least similar to
// the group's componentwise mean vector. The mean is intentionally not
// re-normalized before scoring; members are compared by raw dot product
// against it. Ties are broken by first occurrence in the tokens slice.
//
// It fails with search.ErrInvalidArgument when fewer than two tokens are
// given (centrality is undefined for a singleton) and with
// store.ErrUnknownToken when any token is absent from the store.
func LeastCentral(s *store.Store, tokens []string) (string, error) {
	if len(tokens) < 2 {
		return "", fmt.Errorf("%w: least central needs at least 2 tokens, got %d", search.ErrInvalidArgument, len(tokens))
	}
	vectors := make([][]float32, len(tokens))
	for i, token := range tokens {
		v, err := s.Get(token)
		if err != nil {
			return "", err
		}
		vectors[i] = v
	}
	centroid, err := vector.Mean(vectors...)
	if err != nil {
		return "", err
	}

	outlier := tokens[0]
	lowest := search.Similarity(vectors[0], centroid)
	for i := 1; i < len(tokens); i++ {
		if score := search.Similarity(vectors[i], centroid); score < lowest {
			lowest = score
			outlier = tokens[i]
		}
	}
	return outlier, nil
}
