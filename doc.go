// docqa - Retrieval-Augmented Document Question Answering for Go
//
// docqa is a small toolkit for building retrieval-augmented generation (RAG)
// applications: split a document into overlapping chunks, embed the chunks
// through an external embedding service, index the vectors for similarity
// search, and answer questions by stuffing the most relevant chunks into a
// generation prompt.
//
// # Quick Start
//
// Install the package:
//
//	go get github.com/ragforge/docqa
//
// Basic example:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//
//		"github.com/ragforge/docqa"
//		"github.com/ragforge/docqa/llm"
//		"github.com/ragforge/docqa/pipeline"
//	)
//
//	func main() {
//		client, _ := llm.NewOpenAIClient(llm.OpenAIOptions{})
//
//		p, _ := pipeline.New(pipeline.Config{
//			Embedder:  client,
//			Generator: client,
//		})
//
//		ctx := context.Background()
//		p.Ingest(ctx, []docqa.Document{{ID: "nda", Content: ndaText}})
//
//		answer, _ := p.Ask(ctx, "What is the duration of confidentiality?")
//		fmt.Println(answer.Text)
//	}
//
// # Packages
//
//   - chunk: overlapping fixed-size text windows and splitter adapters
//   - index: in-memory, Redis and Postgres vector indexes
//   - retrieve: top-K similarity retrieval and keyword reranking
//   - answer: deterministic prompt rendering and generation
//   - pipeline: session-scoped ingest/ask orchestration
//   - llm: OpenAI and LangChain collaborator adapters
//   - loader: static, file, web and markdown document loaders
//   - triage: enum-routed support ticket triage
//   - review: ordered multi-reviewer code review
//   - session: SQLite-backed QA history
//
// The core is synchronous and single-session: the index is an owned resource
// passed explicitly into retrieval and rebuilt wholesale when the document
// set changes.
package docqa // import "github.com/ragforge/docqa"
