package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StageTrace records how long one pipeline stage took and what it did.
type StageTrace struct {
	Stage    string
	Duration time.Duration
	Detail   string
}

func (p *Pipeline) record(stage string, start time.Time, format string, v ...any) {
	p.trace = append(p.trace, StageTrace{
		Stage:    stage,
		Duration: time.Since(start),
		Detail:   fmt.Sprintf(format, v...),
	})
}

var (
	traceTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	traceStageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Width(10)

	traceDurationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Width(12).
				Align(lipgloss.Right)

	traceBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// RenderTrace pretty-prints stage timings for terminal output.
func RenderTrace(trace []StageTrace) string {
	if len(trace) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(traceTitleStyle.Render("pipeline trace"))
	b.WriteString("\n")
	for _, st := range trace {
		b.WriteString(traceStageStyle.Render(st.Stage))
		b.WriteString(traceDurationStyle.Render(st.Duration.Round(time.Microsecond).String()))
		b.WriteString("  ")
		b.WriteString(st.Detail)
		b.WriteString("\n")
	}
	return traceBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}
