// Package search ranks word-vector stores by similarity. Because all stored
// vectors are unit length, similarity is a plain dot product, and a query
// against a store is a brute-force scan of every vector: O(N*D) time with a
// deterministic, insertion-order tie-break.
package search
