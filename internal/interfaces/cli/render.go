// Package cli renders comparison and reasoning output for the terminal.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arenalabs/model-arena/internal/domain/compare"
	"github.com/arenalabs/model-arena/internal/domain/model"
	"github.com/arenalabs/model-arena/internal/domain/reasoning"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	faintStyle = lipgloss.NewStyle().Faint(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(76)

	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// RenderResults renders one bordered panel per model response.
func RenderResults(query string, results []*model.Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Query: "+query) + "\n\n")

	for _, r := range results {
		header := fmt.Sprintf("%s / %s (%s)", r.Provider, r.ModelName, r.ModelType)
		meta := faintStyle.Render(fmt.Sprintf("%.2fs, %d tokens", r.ElapsedSeconds(), r.TokenUsage.Total))

		var body string
		if r.Failed() {
			body = errStyle.Render("error: " + r.ErrorText())
		} else {
			body = r.Content
		}

		panel := panelStyle.Render(headerStyle.Render(header) + "  " + meta + "\n" + body)
		b.WriteString(panel + "\n")
	}
	return b.String()
}

// RenderSummary renders the aggregate comparison statistics.
func RenderSummary(s *compare.Summary) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Summary") + "\n")
	fmt.Fprintf(&b, "  responses: %d (%s ok, %s failed)\n",
		s.TotalResponses,
		okStyle.Render(fmt.Sprintf("%d", s.SuccessCount)),
		errStyle.Render(fmt.Sprintf("%d", s.ErrorCount)))
	fmt.Fprintf(&b, "  providers: %s\n", strings.Join(s.ProvidersUsed, ", "))
	fmt.Fprintf(&b, "  model types: %s\n", strings.Join(s.ModelTypesUsed, ", "))
	fmt.Fprintf(&b, "  average response time: %.2fs\n", s.AverageResponseTime)
	fmt.Fprintf(&b, "  total tokens: %d\n", s.TotalTokensUsed)

	if s.Fastest != nil {
		fmt.Fprintf(&b, "  fastest: %s (%.2fs)\n", s.Fastest.ModelName, s.Fastest.ElapsedSeconds())
	}
	if s.Slowest != nil {
		fmt.Fprintf(&b, "  slowest: %s (%.2fs)\n", s.Slowest.ModelName, s.Slowest.ElapsedSeconds())
	}
	if s.MostTokens != nil {
		fmt.Fprintf(&b, "  most tokens: %s (%d)\n", s.MostTokens.ModelName, s.MostTokens.TokenUsage.Total)
	}

	if len(s.ProviderStats) > 0 {
		b.WriteString(titleStyle.Render("Per provider") + "\n")
		for provider, stats := range s.ProviderStats {
			fmt.Fprintf(&b, "  %-12s calls=%d avg=%.2fs tokens=%d\n",
				provider, stats.Count, stats.AverageResponseTime, stats.TotalTokens)
		}
	}
	return b.String()
}

// RenderModels renders the catalog as an aligned table.
func RenderModels(models []model.ModelConfig) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-40s %-12s %-11s %-7s %-9s %s",
		"NAME", "PROVIDER", "TYPE", "VISION", "PRIORITY", "CONTEXT")) + "\n")
	for _, m := range models {
		visionMark := ""
		if m.SupportsVision {
			visionMark = okStyle.Render("yes")
		}
		fmt.Fprintf(&b, "%-40s %-12s %-11s %-7s %-9d %d\n",
			m.Name, m.Provider, m.Type, visionMark, m.Priority, m.ContextWindow)
	}
	return b.String()
}

// RenderReasoning renders one pass of the reasoning loop.
func RenderReasoning(r *reasoning.Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Query: "+r.Query) + "\n\n")

	if !r.Success {
		b.WriteString(errStyle.Render("error: "+r.Error) + "\n")
		return b.String()
	}

	if r.Reasoning != "" {
		b.WriteString(headerStyle.Render("Reasoning") + "\n" + r.Reasoning + "\n\n")
	}
	if r.ToolUsed != "" {
		fmt.Fprintf(&b, "%s %s = %v\n\n", headerStyle.Render("Tool"), r.ToolUsed, r.ToolResult)
	}
	b.WriteString(headerStyle.Render("Answer") + "\n" + r.FinalAnswer + "\n")
	return b.String()
}

// RenderKeyCheck renders one provider key validation line.
func RenderKeyCheck(provider string, err error) string {
	if err != nil {
		return fmt.Sprintf("  %-12s %s\n", provider, errStyle.Render("invalid: "+err.Error()))
	}
	return fmt.Sprintf("  %-12s %s\n", provider, okStyle.Render("ok"))
}
