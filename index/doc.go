// Package index provides vector indexes over embedded chunks.
//
// An index is built wholesale from chunk/vector pairs and is immutable
// afterwards: when the document set changes, the caller rebuilds. Three
// backends share one contract: Memory (exact in-process search), Redis
// (vectors persisted in Redis hashes) and Postgres (vectors in a table
// behind a pgx pool). All three score client-side with the same metric,
// so search results are identical across backends for the same data.
package index
