package pipeline

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ragforge/docqa"
	"github.com/ragforge/docqa/answer"
)

// ScreenK is how many chunks the screening flow retrieves. Screening
// wants the same broad coverage as a summary.
const ScreenK = 6

const screenerSystemPrompt = "You are an expert HR professional screening candidates. Assess the resume excerpts in the context against the job requirements. Start with a match score as a percentage (0-100%), then cover matching skills, missing skills, experience relevance, strengths, gaps and an overall recommendation. Be objective, fair and thorough."

const screenQuestionFormat = "How well does the candidate match the following job requirements?\n\n%s"

// ScreenResult is the outcome of screening the ingested documents
// against a set of job requirements.
type ScreenResult struct {
	// Analysis carries the full assessment text and the resume chunks
	// that grounded it.
	Analysis docqa.Answer

	// Score is the match percentage extracted from the analysis, or -1
	// when the model produced none.
	Score int
}

var scorePattern = regexp.MustCompile(`(\d{1,3})%`)

// Screen retrieves the resume chunks most relevant to the job
// requirements and produces a structured screening analysis with a match
// score. Screening before any ingest fails with ErrEmptyIndex.
func (p *Pipeline) Screen(ctx context.Context, requirements string) (ScreenResult, error) {
	if strings.TrimSpace(requirements) == "" {
		return ScreenResult{}, docqa.NewConfigurationError("requirements", "must not be empty")
	}

	screener, err := answer.NewAnswerer(p.generator, answer.WithSystemPrompt(screenerSystemPrompt))
	if err != nil {
		return ScreenResult{}, err
	}

	question := fmt.Sprintf(screenQuestionFormat, requirements)
	ans, err := p.askWith(ctx, screener, question, ScreenK)
	if err != nil {
		return ScreenResult{}, err
	}

	return ScreenResult{Analysis: ans, Score: extractScore(ans.Text)}, nil
}

// extractScore pulls the first percentage out of the analysis text.
func extractScore(analysis string) int {
	m := scorePattern.FindStringSubmatch(analysis)
	if m == nil {
		return -1
	}
	score, err := strconv.Atoi(m[1])
	if err != nil || score > 100 {
		return -1
	}
	return score
}
