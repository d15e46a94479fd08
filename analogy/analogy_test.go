package analogy

import (
	"errors"
	"testing"

	"github.com/viant/wordvec/search"
	"github.com/viant/wordvec/store"
)

func royalStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Build([]store.Row{
		{Token: "king", Vector: []float32{1, 0}},
		{Token: "queen", Vector: []float32{0.9, 0.436}},
		{Token: "man", Vector: []float32{0, 1}},
		{Token: "woman", Vector: []float32{-0.1, 0.995}},
		{Token: "apple", Vector: []float32{-1, -1}},
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return s
}

func TestSolve_KingQueen(t *testing.T) {
	s := royalStore(t)

	// king - man + woman points toward queen.
	got, err := Solve(s, "man", "woman", "king", 1)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(got) != 1 || got[0] != "queen" {
		t.Fatalf("Solve(man, woman, king, 1) = %v, want [queen]", got)
	}
}

func TestSolve_ExcludesQueryWords(t *testing.T) {
	s := royalStore(t)

	// The query words often score highest against their own offset; they
	// must never appear regardless of rank.
	got, err := Solve(s, "man", "woman", "king", 2)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	for _, token := range got {
		if token == "man" || token == "woman" || token == "king" {
			t.Fatalf("Solve returned query word %q", token)
		}
	}
}

func TestSolve_InsufficientResults(t *testing.T) {
	s := royalStore(t)

	// Five tokens minus three query words leaves two candidates.
	if _, err := Solve(s, "man", "woman", "king", 3); !errors.Is(err, ErrInsufficientResults) {
		t.Fatalf("Solve error = %v, want ErrInsufficientResults", err)
	}
}

func TestSolve_Errors(t *testing.T) {
	s := royalStore(t)

	if _, err := Solve(s, "man", "woman", "king", 0); !errors.Is(err, search.ErrInvalidArgument) {
		t.Fatalf("topN=0 error = %v, want search.ErrInvalidArgument", err)
	}
	if _, err := Solve(s, "man", "woman", "pterosaur", 1); !errors.Is(err, store.ErrUnknownToken) {
		t.Fatalf("unknown token error = %v, want store.ErrUnknownToken", err)
	}
}
