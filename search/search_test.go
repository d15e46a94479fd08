package search

import (
	"errors"
	"math"
	"testing"

	"github.com/viant/wordvec/store"
)

func buildStore(t *testing.T, rows []store.Row) *store.Store {
	t.Helper()
	s, err := store.Build(rows)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return s
}

func royalStore(t *testing.T) *store.Store {
	return buildStore(t, []store.Row{
		{Token: "king", Vector: []float32{1, 0}},
		{Token: "queen", Vector: []float32{0.9, 0.436}},
		{Token: "man", Vector: []float32{0, 1}},
		{Token: "woman", Vector: []float32{-0.1, 0.995}},
	})
}

func TestSimilarity_SelfIsMaximal(t *testing.T) {
	s := royalStore(t)
	for _, token := range s.Tokens() {
		v, err := s.Get(token)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", token, err)
		}
		if sim := Similarity(v, v); math.Abs(sim-1) > 1e-5 {
			t.Fatalf("Similarity(%q, %q) = %v, want 1", token, token, sim)
		}
	}
}

func TestRankAll(t *testing.T) {
	s := royalStore(t)
	query, err := s.Get("king")
	if err != nil {
		t.Fatalf("Get(king) failed: %v", err)
	}

	ranked, err := RankAll(s, query)
	if err != nil {
		t.Fatalf("RankAll failed: %v", err)
	}
	if got, want := len(ranked), s.Size(); got != want {
		t.Fatalf("RankAll returned %d results, want %d", got, want)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Fatalf("scores not descending at %d: %v after %v", i, ranked[i], ranked[i-1])
		}
	}
	if ranked[0].Token != "king" {
		t.Fatalf("best match for king's own vector = %q, want king", ranked[0].Token)
	}
	if ranked[1].Token != "queen" {
		t.Fatalf("second match = %q, want queen", ranked[1].Token)
	}
}

func TestRankAll_StableTies(t *testing.T) {
	// b and c share a vector; insertion order must decide their ranking.
	s := buildStore(t, []store.Row{
		{Token: "a", Vector: []float32{0, 1}},
		{Token: "b", Vector: []float32{1, 0}},
		{Token: "c", Vector: []float32{1, 0}},
	})
	ranked, err := RankAll(s, []float32{1, 0})
	if err != nil {
		t.Fatalf("RankAll failed: %v", err)
	}
	if ranked[0].Token != "b" || ranked[1].Token != "c" {
		t.Fatalf("tied tokens ranked %q, %q; want insertion order b, c", ranked[0].Token, ranked[1].Token)
	}
}

func TestRankAll_DimensionMismatch(t *testing.T) {
	s := royalStore(t)
	if _, err := RankAll(s, []float32{1, 2, 3}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("RankAll error = %v, want ErrInvalidArgument", err)
	}
}

func TestNearestNeighbors(t *testing.T) {
	s := royalStore(t)

	neighbors, err := NearestNeighbors(s, "king", 2)
	if err != nil {
		t.Fatalf("NearestNeighbors failed: %v", err)
	}
	if len(neighbors) != 2 {
		t.Fatalf("got %d neighbors, want 2", len(neighbors))
	}
	if neighbors[0] != "queen" {
		t.Fatalf("nearest neighbor of king = %q, want queen", neighbors[0])
	}
	for _, n := range neighbors {
		if n == "king" {
			t.Fatalf("neighbors of king include king itself")
		}
	}
}

func TestNearestNeighbors_ExcludesByIdentity(t *testing.T) {
	// x precedes y with an identical vector, so y's self-match is NOT at
	// rank 0. Exclusion must still drop y, not the top entry.
	s := buildStore(t, []store.Row{
		{Token: "x", Vector: []float32{1, 0}},
		{Token: "y", Vector: []float32{1, 0}},
		{Token: "z", Vector: []float32{0, 1}},
	})
	neighbors, err := NearestNeighbors(s, "y", 1)
	if err != nil {
		t.Fatalf("NearestNeighbors failed: %v", err)
	}
	if neighbors[0] != "x" {
		t.Fatalf("nearest neighbor of y = %q, want x", neighbors[0])
	}
}

func TestNearestNeighbors_Errors(t *testing.T) {
	s := royalStore(t)

	if _, err := NearestNeighbors(s, "pterosaur", 2); !errors.Is(err, store.ErrUnknownToken) {
		t.Fatalf("unknown token error = %v, want store.ErrUnknownToken", err)
	}
	if _, err := NearestNeighbors(s, "king", 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("k=0 error = %v, want ErrInvalidArgument", err)
	}
	if _, err := NearestNeighbors(s, "king", s.Size()); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("oversized k error = %v, want ErrInvalidArgument", err)
	}
}
