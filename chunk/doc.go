// Package chunk splits documents into overlapping fixed-size windows for
// embedding and indexing.
//
// The core Chunker cuts deterministic rune windows: chunk i starts at rune
// offset i*(size-overlap) and runs for size runes, or fewer at the end of
// the document. Consecutive chunks share overlap runes so that statements
// straddling a boundary survive in at least one chunk. LangChainSplitter
// adapts langchaingo's separator-aware splitters to the same Chunk shape.
package chunk
