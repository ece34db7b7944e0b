package triage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragforge/docqa"
	"github.com/ragforge/docqa/llm"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		input string
		want  Category
	}{
		{"billing", CategoryBilling},
		{"Billing", CategoryBilling},
		{"  TECHNICAL  ", CategoryTechnical},
		{"account", CategoryAccount},
		{"feature_request", CategoryFeatureRequest},
		{"Feature Request", CategoryFeatureRequest},
		{"general", CategoryGeneral},
		{"", CategoryUnknown},
		{"refund", CategoryUnknown},
		{"billing and technical", CategoryUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseCategory(tc.input))
		})
	}
}

func TestCategoryRoundTrip(t *testing.T) {
	for _, cat := range Categories() {
		assert.Equal(t, cat, ParseCategory(cat.String()))
	}
	assert.Equal(t, "unknown", CategoryUnknown.String())
	assert.NotContains(t, Categories(), CategoryUnknown)
}

func TestLLMClassifier(t *testing.T) {
	ctx := context.Background()
	ticket := Ticket{ID: "t-1", Subject: "Double charge", Body: "I was billed twice this month."}

	t.Run("nil generator", func(t *testing.T) {
		_, err := NewLLMClassifier(nil)
		var cfgErr *docqa.ConfigurationError
		assert.ErrorAs(t, err, &cfgErr)
	})

	t.Run("parses the model token", func(t *testing.T) {
		gen := llm.NewScriptedGenerator("billing")
		c, err := NewLLMClassifier(gen)
		require.NoError(t, err)

		got, err := c.Classify(ctx, ticket)
		require.NoError(t, err)
		assert.Equal(t, CategoryBilling, got)

		// The prompt offers every routable token and the ticket text.
		require.Len(t, gen.Calls, 1)
		assert.Contains(t, gen.Calls[0].Prompt, "billing, technical, account, feature_request, general")
		assert.Contains(t, gen.Calls[0].Prompt, "I was billed twice this month.")
	})

	t.Run("tolerates decorated output", func(t *testing.T) {
		c, err := NewLLMClassifier(llm.NewScriptedGenerator("  Billing\n"))
		require.NoError(t, err)

		got, err := c.Classify(ctx, ticket)
		require.NoError(t, err)
		assert.Equal(t, CategoryBilling, got)
	})

	t.Run("off-list output degrades to unknown", func(t *testing.T) {
		c, err := NewLLMClassifier(llm.NewScriptedGenerator("I think this is about invoices."))
		require.NoError(t, err)

		got, err := c.Classify(ctx, ticket)
		require.NoError(t, err)
		assert.Equal(t, CategoryUnknown, got)
	})

	t.Run("service failure", func(t *testing.T) {
		gen := llm.NewScriptedGenerator("never")
		gen.Err = errors.New("timeout")
		c, err := NewLLMClassifier(gen)
		require.NoError(t, err)

		_, err = c.Classify(ctx, ticket)
		var extErr *docqa.ExternalServiceError
		assert.ErrorAs(t, err, &extErr)
	})
}

// scriptedClassifier returns a fixed category without a model call.
type scriptedClassifier struct {
	category Category
	err      error
}

func (s *scriptedClassifier) Classify(ctx context.Context, ticket Ticket) (Category, error) {
	return s.category, s.err
}

func TestEngine(t *testing.T) {
	ctx := context.Background()
	ticket := Ticket{ID: "t-9", Subject: "Help", Body: "Something broke."}

	t.Run("validates collaborators", func(t *testing.T) {
		_, err := NewEngine(nil, llm.NewScriptedGenerator("x"))
		assert.Error(t, err)
		_, err = NewEngine(&scriptedClassifier{}, nil)
		assert.Error(t, err)
	})

	t.Run("routes each category to its responder", func(t *testing.T) {
		for _, cat := range Categories() {
			gen := llm.NewScriptedGenerator("handled")
			e, err := NewEngine(&scriptedClassifier{category: cat}, gen)
			require.NoError(t, err)

			res, err := e.Triage(ctx, ticket)
			require.NoError(t, err)
			assert.Equal(t, cat, res.Category)
			assert.Equal(t, "handled", res.Reply)
			assert.False(t, res.Escalated)
			require.Len(t, gen.Calls, 1)
			assert.Contains(t, gen.Calls[0].Prompt, "Something broke.")
		}
	})

	t.Run("distinct responder instructions per category", func(t *testing.T) {
		systems := map[string]bool{}
		for _, cat := range Categories() {
			gen := llm.NewScriptedGenerator("handled")
			e, err := NewEngine(&scriptedClassifier{category: cat}, gen)
			require.NoError(t, err)

			_, err = e.Triage(ctx, ticket)
			require.NoError(t, err)
			systems[gen.Calls[0].System] = true
		}
		assert.Len(t, systems, len(Categories()))
	})

	t.Run("unknown escalates without a model call", func(t *testing.T) {
		gen := llm.NewScriptedGenerator("should not be called")
		e, err := NewEngine(&scriptedClassifier{category: CategoryUnknown}, gen)
		require.NoError(t, err)

		res, err := e.Triage(ctx, ticket)
		require.NoError(t, err)
		assert.True(t, res.Escalated)
		assert.Equal(t, CategoryUnknown, res.Category)
		assert.NotEmpty(t, res.Reply)
		assert.Empty(t, gen.Calls)
	})

	t.Run("classifier failure propagates", func(t *testing.T) {
		e, err := NewEngine(&scriptedClassifier{err: errors.New("down")}, llm.NewScriptedGenerator("x"))
		require.NoError(t, err)

		_, err = e.Triage(ctx, ticket)
		assert.Error(t, err)
	})

	t.Run("responder failure surfaces as external service error", func(t *testing.T) {
		gen := llm.NewScriptedGenerator("never")
		gen.Err = errors.New("rate limited")
		e, err := NewEngine(&scriptedClassifier{category: CategoryGeneral}, gen)
		require.NoError(t, err)

		_, err = e.Triage(ctx, ticket)
		var extErr *docqa.ExternalServiceError
		assert.ErrorAs(t, err, &extErr)
	})
}
