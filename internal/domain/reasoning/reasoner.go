// Package reasoning runs a chain-of-thought loop against a single model: it
// prompts the model to reason in labeled sections, executes at most one tool
// call, and folds the tool output into the final answer.
package reasoning

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arenalabs/model-arena/internal/domain/tools"
	"github.com/arenalabs/model-arena/internal/infrastructure/providers"
)

const (
	// DefaultModel is used when the caller does not pick one.
	DefaultModel = "gpt-3.5-turbo"

	reasoningMaxTokens   = 1000
	reasoningTemperature = 0.1
)

// Result captures one full pass of the reasoning loop. A failed pass keeps
// the query and the error; Success distinguishes the two shapes.
type Result struct {
	Query       string `json:"query"`
	Reasoning   string `json:"reasoning"`
	ToolUsed    string `json:"tool_used,omitempty"`
	ToolResult  any    `json:"tool_result,omitempty"`
	FinalAnswer string `json:"final_answer"`
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
}

// Reasoner drives the loop for one provider and model.
type Reasoner struct {
	provider providers.Provider
	model    string
	logger   zerolog.Logger
}

func NewReasoner(provider providers.Provider, model string, logger zerolog.Logger) *Reasoner {
	if model == "" {
		model = DefaultModel
	}
	return &Reasoner{provider: provider, model: model, logger: logger}
}

// Reason answers a natural language query, calling a tool when the model
// asks for one. Errors from the model or the tool are folded into the
// result rather than returned.
func (r *Reasoner) Reason(ctx context.Context, query string) *Result {
	prompt := buildPrompt(query)

	gen, err := r.provider.Generate(ctx, prompt, r.model, providers.GenerateOptions{
		MaxTokens:   reasoningMaxTokens,
		Temperature: reasoningTemperature,
	})
	if err != nil {
		r.logger.Warn().Str("model", r.model).Err(err).Msg("reasoning call failed")
		return &Result{Query: query, Error: err.Error()}
	}

	sections := ParseSections(gen.Content)
	result := &Result{
		Query:       query,
		Reasoning:   sections.Reasoning,
		FinalAnswer: sections.FinalAnswer,
		Success:     true,
	}

	if !sections.NeedsTool() {
		return result
	}

	invocation, err := ParseToolCall(sections.ToolCall)
	if err != nil {
		return &Result{Query: query, Reasoning: sections.Reasoning, Error: err.Error()}
	}

	toolResult, err := tools.Call(invocation.Name, invocation.RawArgs)
	if err != nil {
		r.logger.Warn().Str("tool", invocation.Name).Err(err).Msg("tool call failed")
		return &Result{Query: query, Reasoning: sections.Reasoning, Error: err.Error()}
	}

	result.ToolUsed = sections.ToolCall
	result.ToolResult = toolResult
	result.FinalAnswer = fmt.Sprintf("%s (Tool result: %v)", sections.FinalAnswer, toolResult)
	return result
}

func buildPrompt(query string) string {
	var b strings.Builder
	b.WriteString("You are an AI assistant that can reason through problems step by step and use tools when needed.\n\n")
	b.WriteString("Available Tools:\n")
	for _, name := range tools.Names() {
		b.WriteString("- " + name + "\n")
	}
	b.WriteString("\nYour task is to analyze the following query and provide a step-by-step reasoning process.\n\n")
	fmt.Fprintf(&b, "Query: %q\n\n", query)
	b.WriteString(`Please follow this format:

REASONING:
[Provide step-by-step reasoning about what the query is asking]

TOOL_NEEDED:
[If you need to use a tool, specify which one and why. If no tool is needed, write "NONE"]

TOOL_CALL:
[If a tool is needed, provide the exact function call in this format: tool_name(arguments)]

FINAL_ANSWER:
[Provide the final answer to the query]

Remember:
- Think step by step
- Only use tools when necessary for calculations or text analysis
- Be precise about which tool to use and how to call it
`)
	return b.String()
}
