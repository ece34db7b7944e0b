package pipeline

import (
	"context"
	"time"

	"github.com/ragforge/docqa"
	"github.com/ragforge/docqa/answer"
	"github.com/ragforge/docqa/chunk"
	"github.com/ragforge/docqa/index"
	"github.com/ragforge/docqa/log"
	"github.com/ragforge/docqa/retrieve"
)

// SummaryQuestion drives the Summarize flow.
const SummaryQuestion = "Summarize the key points of this document."

// SummaryK is how many chunks the summary flow retrieves. Summaries want
// broader coverage than a pointed question.
const SummaryK = 6

// Config assembles a pipeline. Embedder and Generator are required; the
// rest defaults to the standard chunking, retrieval and prompt settings.
type Config struct {
	Embedder  docqa.Embedder
	Generator docqa.Generator

	// Chunker defaults to the 1000/200 rune window.
	Chunker *chunk.Chunker

	// K is the retrieval depth for Ask. Defaults to 4.
	K int

	// Metric selects the index similarity metric. Defaults to cosine.
	Metric index.Metric

	// Reranker optionally rescores retrieved chunks.
	Reranker retrieve.Reranker

	// SystemPrompt overrides the default generation system prompt.
	SystemPrompt string

	// Logger defaults to the package-level logger.
	Logger log.Logger
}

// Pipeline is a single-session document QA engine. It is not safe for
// concurrent use; callers run Ingest and Ask sequentially.
type Pipeline struct {
	embedder  docqa.Embedder
	generator docqa.Generator
	chunker   *chunk.Chunker
	answerer  *answer.Answerer
	k        int
	metric   index.Metric
	reranker retrieve.Reranker
	logger   log.Logger

	idx   *index.Memory
	trace []StageTrace
}

// New validates the configuration and assembles the pipeline.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Embedder == nil {
		return nil, docqa.NewConfigurationError("embedder", "must not be nil")
	}
	if cfg.Generator == nil {
		return nil, docqa.NewConfigurationError("generator", "must not be nil")
	}

	chunker := cfg.Chunker
	if chunker == nil {
		chunker = chunk.NewDefaultChunker()
	}

	k := cfg.K
	if k == 0 {
		k = retrieve.DefaultK
	}
	if k < 0 {
		return nil, docqa.NewConfigurationError("k", "must be positive")
	}

	var answererOpts []answer.AnswererOption
	if cfg.SystemPrompt != "" {
		answererOpts = append(answererOpts, answer.WithSystemPrompt(cfg.SystemPrompt))
	}
	ans, err := answer.NewAnswerer(cfg.Generator, answererOpts...)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.GetDefaultLogger()
	}

	return &Pipeline{
		embedder:  cfg.Embedder,
		generator: cfg.Generator,
		chunker:   chunker,
		answerer:  ans,
		k:         k,
		metric:    cfg.Metric,
		reranker:  cfg.Reranker,
		logger:    logger,
	}, nil
}

// Ingest chunks and embeds the documents, then rebuilds the index
// wholesale. Previous index contents are discarded. Ingesting an empty
// document set (or documents with no text) leaves an empty index, and
// subsequent questions fail with ErrEmptyIndex.
func (p *Pipeline) Ingest(ctx context.Context, docs []docqa.Document) error {
	p.trace = p.trace[:0]

	chunkStart := time.Now()
	chunks := p.chunker.SplitAll(docs)
	p.record("chunk", chunkStart, "%d documents -> %d chunks", len(docs), len(chunks))

	var vectors [][]float32
	embedStart := time.Now()
	if len(chunks) > 0 {
		texts := make([]string, len(chunks))
		for i, ck := range chunks {
			texts[i] = ck.Content
		}
		var err error
		vectors, err = p.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return docqa.WrapExternal("embedder", "embed chunks", err)
		}
	}
	p.record("embed", embedStart, "%d vectors", len(vectors))

	indexStart := time.Now()
	idx, err := index.BuildMemory(chunks, vectors, index.WithMetric(p.metric))
	if err != nil {
		return err
	}
	p.idx = idx
	p.record("index", indexStart, "%d entries, dimension %d", idx.Len(), idx.Dimension())

	p.logger.Info("ingested %d documents into %d chunks", len(docs), len(chunks))
	return nil
}

// Ask retrieves the K most relevant chunks for the question and generates
// a grounded answer. Asking before any ingest, or after ingesting no
// text, fails with ErrEmptyIndex.
func (p *Pipeline) Ask(ctx context.Context, question string) (docqa.Answer, error) {
	return p.ask(ctx, question, p.k)
}

// Summarize runs the broader summary retrieval over the ingested
// documents.
func (p *Pipeline) Summarize(ctx context.Context) (docqa.Answer, error) {
	return p.ask(ctx, SummaryQuestion, SummaryK)
}

func (p *Pipeline) ask(ctx context.Context, question string, k int) (docqa.Answer, error) {
	return p.askWith(ctx, p.answerer, question, k)
}

func (p *Pipeline) askWith(ctx context.Context, ans *answer.Answerer, question string, k int) (docqa.Answer, error) {
	// Fail fast on an empty index so no embedding call is spent on a
	// question that cannot be answered.
	if p.idx == nil || p.idx.Len() == 0 {
		return docqa.Answer{}, docqa.ErrEmptyIndex
	}

	opts := []retrieve.RetrieverOption{retrieve.WithK(k)}
	if p.reranker != nil {
		opts = append(opts, retrieve.WithReranker(p.reranker))
	}
	retriever, err := retrieve.NewRetriever(p.idx, p.embedder, opts...)
	if err != nil {
		return docqa.Answer{}, err
	}

	retrieveStart := time.Now()
	sources, err := retriever.Retrieve(ctx, question)
	if err != nil {
		return docqa.Answer{}, err
	}
	p.record("retrieve", retrieveStart, "%d chunks for %q", len(sources), question)

	generateStart := time.Now()
	result, err := ans.Answer(ctx, question, sources)
	if err != nil {
		return docqa.Answer{}, err
	}
	p.record("generate", generateStart, "%d characters", len(result.Text))

	p.logger.Debug("answered %q from %d chunks", question, len(sources))
	return result, nil
}

// Index exposes the current index build, or nil before the first ingest.
func (p *Pipeline) Index() docqa.Index {
	if p.idx == nil {
		return nil
	}
	return p.idx
}

// LastTrace returns the stage timings recorded since the last Ingest.
func (p *Pipeline) LastTrace() []StageTrace {
	return p.trace
}
