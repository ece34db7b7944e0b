package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragforge/docqa"
	"github.com/ragforge/docqa/llm"
)

const resumeText = `Jane Doe, Senior Software Engineer.
Eight years of backend development experience, five of them in Go.
Designed and operated RESTful APIs serving millions of requests per day.
Led the migration of a monolith to services on AWS with Postgres and Redis.
BSc in Computer Science. Mentors junior engineers and runs design reviews.`

const jobRequirements = `- 5+ years of Go development experience
- Strong knowledge of RESTful API design
- Experience with cloud platforms
- Bachelor's degree in Computer Science or related field`

func TestScreen(t *testing.T) {
	ctx := context.Background()

	t.Run("empty requirements", func(t *testing.T) {
		p := newTestPipeline(t, llm.NewScriptedGenerator("never"))
		_, err := p.Screen(ctx, "   ")
		var cfgErr *docqa.ConfigurationError
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("before ingest", func(t *testing.T) {
		p := newTestPipeline(t, llm.NewScriptedGenerator("never"))
		_, err := p.Screen(ctx, jobRequirements)
		assert.ErrorIs(t, err, docqa.ErrEmptyIndex)
	})

	t.Run("scores the candidate against the requirements", func(t *testing.T) {
		gen := llm.NewScriptedGenerator(
			"**MATCH SCORE**: 85%\n\nStrong Go and API background, solid cloud experience. Recommended.")
		p := newTestPipeline(t, gen)

		require.NoError(t, p.Ingest(ctx, []docqa.Document{{ID: "resume", Content: resumeText}}))

		result, err := p.Screen(ctx, jobRequirements)
		require.NoError(t, err)
		assert.Equal(t, 85, result.Score)
		assert.Contains(t, result.Analysis.Text, "Recommended")
		assert.NotEmpty(t, result.Analysis.Sources)
		assert.LessOrEqual(t, len(result.Analysis.Sources), ScreenK)

		// The screener prompt carries the requirements and resume excerpts
		// under the HR instructions, not the QA system prompt.
		require.Len(t, gen.Calls, 1)
		assert.Contains(t, gen.Calls[0].System, "HR professional")
		assert.Contains(t, gen.Calls[0].Prompt, "5+ years of Go development experience")
		assert.Contains(t, gen.Calls[0].Prompt, "years of backend development")
	})

	t.Run("missing score degrades to -1", func(t *testing.T) {
		gen := llm.NewScriptedGenerator("A promising candidate, though the resume omits dates.")
		p := newTestPipeline(t, gen)

		require.NoError(t, p.Ingest(ctx, []docqa.Document{{ID: "resume", Content: resumeText}}))

		result, err := p.Screen(ctx, jobRequirements)
		require.NoError(t, err)
		assert.Equal(t, -1, result.Score)
		assert.NotEmpty(t, result.Analysis.Text)
	})
}

func TestExtractScore(t *testing.T) {
	cases := []struct {
		name     string
		analysis string
		want     int
	}{
		{"plain percentage", "Match score: 72% overall.", 72},
		{"full marks", "100% match.", 100},
		{"first percentage wins", "Score: 60%. Confidence: 90%.", 60},
		{"no percentage", "A strong candidate.", -1},
		{"over one hundred", "Improved output by 250% at the last role.", -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractScore(tc.analysis))
		})
	}
}
