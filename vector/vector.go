package vector

import (
	"errors"
	"fmt"
	"math"

	"github.com/viant/vec/search"
)

// ErrZeroVector indicates an attempt to normalize a vector whose Euclidean
// norm is exactly zero; such a vector has no direction.
var ErrZeroVector = errors.New("vector: zero vector")

// Dot returns the dot product of a and b accumulated in float64. For two
// unit-length vectors this is their cosine similarity. The caller is
// responsible for ensuring equal lengths; Dot panics otherwise like any
// out-of-range slice access would.
func Dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

// Magnitude returns the Euclidean norm of v.
func Magnitude(v []float32) float64 {
	return float64(search.Float32s(v).Magnitude())
}

// Normalized returns a unit-length copy of v. It returns ErrZeroVector when
// the norm of v is exactly zero, since the direction is undefined. The input
// is never modified.
func Normalized(v []float32) ([]float32, error) {
	m := Magnitude(v)
	if m == 0 {
		return nil, ErrZeroVector
	}
	out := make([]float32, len(v))
	inv := 1.0 / m
	for i, c := range v {
		out[i] = float32(float64(c) * inv)
	}
	return out, nil
}

// CosineSimilarity computes the cosine similarity between two vectors of any
// magnitude. It returns an error if the vectors have different lengths, are
// empty, or if either has zero magnitude.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector: cosine similarity dimension mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("vector: cosine similarity on empty vectors")
	}
	ma := Magnitude(a)
	mb := Magnitude(b)
	if ma == 0 || mb == 0 {
		return 0, fmt.Errorf("vector: cosine similarity with zero-magnitude vector: %w", ErrZeroVector)
	}
	return Dot(a, b) / (ma * mb), nil
}

// Mean returns the componentwise arithmetic mean of the given vectors. The
// result is intentionally not re-normalized. All vectors must share the same
// length and at least one vector must be provided.
func Mean(vectors ...[]float32) ([]float32, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("vector: mean of no vectors")
	}
	dim := len(vectors[0])
	acc := make([]float64, dim)
	for _, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("vector: mean dimension mismatch: %d vs %d", len(v), dim)
		}
		for i, c := range v {
			acc[i] += float64(c)
		}
	}
	out := make([]float32, dim)
	n := float64(len(vectors))
	for i := range acc {
		out[i] = float32(acc[i] / n)
	}
	return out, nil
}

// Offset returns c - a + b, the analogy target direction for a query
// a:b :: c:?. The result is intentionally not re-normalized. All three
// vectors must share the same length.
func Offset(a, b, c []float32) ([]float32, error) {
	if len(a) != len(b) || len(b) != len(c) {
		return nil, fmt.Errorf("vector: offset dimension mismatch: %d, %d, %d", len(a), len(b), len(c))
	}
	out := make([]float32, len(a))
	for i := range out {
		out[i] = float32(float64(c[i]) - float64(a[i]) + float64(b[i]))
	}
	return out, nil
}

// IsUnit reports whether v has Euclidean norm 1 within the given tolerance.
func IsUnit(v []float32, tolerance float64) bool {
	return math.Abs(Magnitude(v)-1) <= tolerance
}
