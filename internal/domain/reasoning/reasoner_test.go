package reasoning

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/arenalabs/model-arena/internal/domain/model"
	"github.com/arenalabs/model-arena/internal/infrastructure/providers"
)

type scriptedProvider struct {
	response string
	err      error
	prompt   string
}

func (s *scriptedProvider) Kind() model.ProviderKind { return model.ProviderOpenAI }

func (s *scriptedProvider) Generate(ctx context.Context, query, modelName string, opts providers.GenerateOptions) (*providers.Generation, error) {
	s.prompt = query
	if s.err != nil {
		return nil, s.err
	}
	return &providers.Generation{Content: s.response}, nil
}

func (s *scriptedProvider) GenerateVision(ctx context.Context, question, imageBase64, modelName string, opts providers.GenerateOptions) (*providers.Generation, error) {
	return nil, providers.ErrVisionUnsupported
}

func (s *scriptedProvider) ListModels(ctx context.Context) ([]model.ModelInfo, error) {
	return nil, nil
}

func (s *scriptedProvider) ValidateKey(ctx context.Context) error { return nil }

func TestReasonWithToolCall(t *testing.T) {
	provider := &scriptedProvider{response: sampleResponse}
	r := NewReasoner(provider, "", zerolog.Nop())

	result := r.Reason(context.Background(), "What's the square root of the average of 18 and 50?")

	if !result.Success {
		t.Fatalf("unexpected failure: %s", result.Error)
	}
	if result.ToolUsed != "math.average([18, 50])" {
		t.Fatalf("unexpected tool: %q", result.ToolUsed)
	}
	if result.ToolResult.(float64) != 34 {
		t.Fatalf("unexpected tool result: %v", result.ToolResult)
	}
	if !strings.Contains(result.FinalAnswer, "(Tool result: 34)") {
		t.Fatalf("tool result not folded into answer: %q", result.FinalAnswer)
	}

	// The prompt advertises the tool inventory.
	if !strings.Contains(provider.prompt, "math.average") || !strings.Contains(provider.prompt, "FINAL_ANSWER:") {
		t.Fatalf("prompt missing tool inventory or format: %q", provider.prompt)
	}
}

func TestReasonWithoutTool(t *testing.T) {
	provider := &scriptedProvider{response: `REASONING:
Two plus two.

TOOL_NEEDED:
NONE

FINAL_ANSWER:
4`}
	r := NewReasoner(provider, "gpt-4o", zerolog.Nop())

	result := r.Reason(context.Background(), "what is 2+2?")

	if !result.Success || result.ToolUsed != "" || result.ToolResult != nil {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.FinalAnswer != "4" {
		t.Fatalf("unexpected answer: %q", result.FinalAnswer)
	}
}

func TestReasonProviderFailure(t *testing.T) {
	provider := &scriptedProvider{err: errors.New("rate limited: 429")}
	r := NewReasoner(provider, "", zerolog.Nop())

	result := r.Reason(context.Background(), "anything")

	if result.Success {
		t.Fatal("expected failure")
	}
	if !strings.Contains(result.Error, "rate limited") {
		t.Fatalf("unexpected error: %q", result.Error)
	}
}

func TestReasonToolFailure(t *testing.T) {
	provider := &scriptedProvider{response: `REASONING:
Divide by zero.

TOOL_NEEDED:
math.divide

TOOL_CALL:
math.divide(1, 0)

FINAL_ANSWER:
undefined`}
	r := NewReasoner(provider, "", zerolog.Nop())

	result := r.Reason(context.Background(), "what is 1/0?")

	if result.Success {
		t.Fatal("expected failure")
	}
	if !strings.Contains(result.Error, "divide by zero") {
		t.Fatalf("unexpected error: %q", result.Error)
	}
	// The reasoning text survives a failed tool call.
	if result.Reasoning == "" {
		t.Fatal("reasoning lost on tool failure")
	}
}
