package analogy

import (
	"errors"
	"fmt"

	"github.com/viant/wordvec/search"
	"github.com/viant/wordvec/store"
	"github.com/viant/wordvec/vector"
)

// ErrInsufficientResults indicates that after excluding the query words the
// store did not contain enough candidates to satisfy the requested topN.
var ErrInsufficientResults = errors.New("analogy: insufficient results")

// Solve resolves the analogy a:b :: c:? and returns the topN best candidate
// tokens in rank order. The target direction is vector(c) - vector(a) +
// vector(b), intentionally not re-normalized before scoring; candidates are
// ranked by raw dot product against it with the store's deterministic
// tie-break. The query words a, b and c are excluded from the result by
// identity regardless of their rank.
//
// Solve fails with store.ErrUnknownToken when any query word is absent,
// search.ErrInvalidArgument when topN < 1, and ErrInsufficientResults when
// fewer than topN tokens survive the exclusion.
func Solve(s *store.Store, a, b, c string, topN int) ([]string, error) {
	if topN < 1 {
		return nil, fmt.Errorf("%w: topN must be at least 1, got %d", search.ErrInvalidArgument, topN)
	}
	va, err := s.Get(a)
	if err != nil {
		return nil, err
	}
	vb, err := s.Get(b)
	if err != nil {
		return nil, err
	}
	vc, err := s.Get(c)
	if err != nil {
		return nil, err
	}
	target, err := vector.Offset(va, vb, vc)
	if err != nil {
		return nil, err
	}
	// Ranking the whole store is the widest possible overscan, so exclusion
	// can never starve the result unless the store itself is too small.
	ranked, err := search.RankAll(s, target)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, topN)
	for _, r := range ranked {
		if r.Token == a || r.Token == b || r.Token == c {
			continue
		}
		out = append(out, r.Token)
		if len(out) == topN {
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: want %d candidates, only %d remain after excluding query words", ErrInsufficientResults, topN, len(out))
}
