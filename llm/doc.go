// Package llm provides the external-service adapters behind the Embedder
// and Generator interfaces: an OpenAI client, adapters for langchaingo
// models and embedders, and deterministic in-process implementations for
// tests and offline runs.
package llm
