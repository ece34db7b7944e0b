// Package pipeline wires chunking, embedding, indexing, retrieval and
// answering into a single-session document QA flow.
//
// A Pipeline owns its index explicitly: Ingest rebuilds it wholesale from
// the documents given, and Ask runs retrieval and generation against the
// current build. Summarize and Screen are broader retrieval flows over the
// same build. Every stage is synchronous and blocking; there is no
// background work, no retry, and no shared global state.
package pipeline
