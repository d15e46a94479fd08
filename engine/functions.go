package engine

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	sqlite "modernc.org/sqlite"

	"github.com/viant/wordvec/vector"
)

// RegisterVectorFunctions registers wordvec_cosine and wordvec_dot with the
// driver so they are available on new connections opened after this call.
// wordvec_cosine computes cosine similarity between two embedding BLOBs;
// wordvec_dot computes their raw dot product, which is what the toolkit
// ranks by when the query side is an analogy offset or a group mean.
// Note: existing open connections will not see new functions.
func RegisterVectorFunctions(_ *sql.DB) error {
	// Idempotent registration; the driver rejects duplicates but we ignore
	// errors here so repeated callers keep working.
	_ = sqlite.RegisterDeterministicScalarFunction("wordvec_cosine", 2, wordvecCosineImpl)
	_ = sqlite.RegisterDeterministicScalarFunction("wordvec_dot", 2, wordvecDotImpl)
	return nil
}

func asEmbedding(arg driver.Value) ([]float32, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return vector.Decode(v)
	default:
		return nil, fmt.Errorf("engine: unsupported argument type %T for embedding; want BLOB", arg)
	}
}

func wordvecCosineImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, err := embeddingPair("wordvec_cosine", args)
	if err != nil || a == nil || b == nil {
		return nil, err
	}
	return vector.CosineSimilarity(a, b)
}

func wordvecDotImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, err := embeddingPair("wordvec_dot", args)
	if err != nil || a == nil || b == nil {
		return nil, err
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("wordvec_dot: dimension mismatch: %d vs %d", len(a), len(b))
	}
	return vector.Dot(a, b), nil
}

func embeddingPair(fn string, args []driver.Value) ([]float32, []float32, error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%s: expected 2 arguments, got %d", fn, len(args))
	}
	a, err := asEmbedding(args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := asEmbedding(args[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
