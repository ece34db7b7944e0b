package llm

import (
	"context"
	"sync"

	"github.com/ragforge/docqa"
)

// ScriptedGenerator replays canned replies in order. It records every call
// so tests can assert on the prompts that reached the generator.
type ScriptedGenerator struct {
	mu      sync.Mutex
	replies []string
	next    int

	// Calls holds the (system, prompt) pairs in call order.
	Calls []ScriptedCall

	// Err, when set, fails every call.
	Err error
}

// ScriptedCall records one Generate invocation.
type ScriptedCall struct {
	System string
	Prompt string
}

// NewScriptedGenerator scripts the given replies. After the last reply is
// consumed the generator keeps returning it.
func NewScriptedGenerator(replies ...string) *ScriptedGenerator {
	return &ScriptedGenerator{replies: replies}
}

// Generate returns the next scripted reply.
func (s *ScriptedGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls = append(s.Calls, ScriptedCall{System: system, Prompt: prompt})
	if s.Err != nil {
		return "", docqa.WrapExternal("scripted", "generate", s.Err)
	}
	if len(s.replies) == 0 {
		return "", nil
	}

	reply := s.replies[s.next]
	if s.next < len(s.replies)-1 {
		s.next++
	}
	return reply, nil
}
