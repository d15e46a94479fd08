// Package analogy answers a:b :: c:? queries over a word-vector store via
// the classic vector-offset construction: rank all tokens against c - a + b
// and return the best candidates that are not themselves query words.
package analogy
