// Package retrieve finds the indexed chunks most relevant to a question.
//
// Retriever embeds the question through the configured embedder and runs a
// top-K similarity search against an index. Retrieval is read-only and
// idempotent: repeating a question against an unchanged index returns the
// same chunks in the same order. KeywordReranker optionally rescores the
// retrieved set with a term-overlap signal.
package retrieve
