package vision

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/arenalabs/model-arena/internal/domain/model"
	"github.com/arenalabs/model-arena/internal/infrastructure/providers"
)

type stubProvider struct {
	kind           model.ProviderKind
	generate       func(ctx context.Context, query, modelName string, opts providers.GenerateOptions) (*providers.Generation, error)
	generateVision func(ctx context.Context, question, imageBase64, modelName string, opts providers.GenerateOptions) (*providers.Generation, error)
}

func (s *stubProvider) Kind() model.ProviderKind { return s.kind }

func (s *stubProvider) Generate(ctx context.Context, query, modelName string, opts providers.GenerateOptions) (*providers.Generation, error) {
	if s.generate == nil {
		return nil, errors.New("generate not stubbed")
	}
	return s.generate(ctx, query, modelName, opts)
}

func (s *stubProvider) GenerateVision(ctx context.Context, question, imageBase64, modelName string, opts providers.GenerateOptions) (*providers.Generation, error) {
	if s.generateVision == nil {
		return nil, providers.ErrVisionUnsupported
	}
	return s.generateVision(ctx, question, imageBase64, modelName, opts)
}

func (s *stubProvider) ListModels(ctx context.Context) ([]model.ModelInfo, error) { return nil, nil }

func (s *stubProvider) ValidateKey(ctx context.Context) error { return nil }

func visionRegistry() *model.Registry {
	return model.NewRegistry([]model.ModelConfig{
		{Name: "gpt-4o", Provider: model.ProviderOpenAI, Type: model.TypeInstruct, SupportsVision: true, MaxTokens: 1000, Temperature: 0.7, Priority: 1, Available: true},
		{Name: "claude-3-sonnet-20240229", Provider: model.ProviderAnthropic, Type: model.TypeInstruct, SupportsVision: true, MaxTokens: 1000, Temperature: 0.7, Priority: 2, Available: true},
		{Name: "gpt-3.5-turbo", Provider: model.ProviderOpenAI, Type: model.TypeInstruct, MaxTokens: 500, Temperature: 0.7, Priority: 3, Available: true},
	}, map[model.ProviderKind]bool{model.ProviderOpenAI: true, model.ProviderAnthropic: true})
}

func TestAnalyzeVisionTierSuccess(t *testing.T) {
	set := providers.Set{
		model.ProviderOpenAI: &stubProvider{
			kind: model.ProviderOpenAI,
			generateVision: func(ctx context.Context, question, imageBase64, modelName string, opts providers.GenerateOptions) (*providers.Generation, error) {
				return &providers.Generation{
					Content: "a red bicycle",
					Usage:   model.TokenUsage{Prompt: 5, Completion: 5, Total: 10},
				}, nil
			},
		},
		model.ProviderAnthropic: &stubProvider{kind: model.ProviderAnthropic},
	}
	o := NewOrchestrator(set, visionRegistry(), zerolog.Nop())

	analysis := o.Analyze(context.Background(), "what is in the image?", "aW1n")

	if analysis.FallbackUsed {
		t.Fatal("vision tier success must not be marked as fallback")
	}
	if analysis.ModelUsed != "gpt-4o" {
		t.Fatalf("expected gpt-4o, got %s", analysis.ModelUsed)
	}
	if analysis.Answer != "a red bicycle" || analysis.TokensUsed != 10 {
		t.Fatalf("unexpected analysis: %+v", analysis)
	}
}

func TestAnalyzeAdvancesWithinVisionTier(t *testing.T) {
	set := providers.Set{
		model.ProviderOpenAI: &stubProvider{
			kind: model.ProviderOpenAI,
			generateVision: func(ctx context.Context, question, imageBase64, modelName string, opts providers.GenerateOptions) (*providers.Generation, error) {
				return nil, errors.New("rate limited: 429")
			},
		},
		model.ProviderAnthropic: &stubProvider{
			kind: model.ProviderAnthropic,
			generateVision: func(ctx context.Context, question, imageBase64, modelName string, opts providers.GenerateOptions) (*providers.Generation, error) {
				return &providers.Generation{Content: "a bridge at dusk"}, nil
			},
		},
	}
	o := NewOrchestrator(set, visionRegistry(), zerolog.Nop())

	analysis := o.Analyze(context.Background(), "describe the scene", "aW1n")

	if analysis.ModelUsed != "claude-3-sonnet-20240229" {
		t.Fatalf("expected the second vision model, got %s", analysis.ModelUsed)
	}
	if analysis.FallbackUsed {
		t.Fatal("second vision model is still the vision tier")
	}
}

func TestAnalyzeFallsBackToTextTier(t *testing.T) {
	var fallbackPrompt string

	set := providers.Set{
		model.ProviderOpenAI: &stubProvider{
			kind: model.ProviderOpenAI,
			generateVision: func(ctx context.Context, question, imageBase64, modelName string, opts providers.GenerateOptions) (*providers.Generation, error) {
				return nil, errors.New("vision down")
			},
			generate: func(ctx context.Context, query, modelName string, opts providers.GenerateOptions) (*providers.Generation, error) {
				fallbackPrompt = query
				return &providers.Generation{Content: "I cannot see the image, but generally..."}, nil
			},
		},
		model.ProviderAnthropic: &stubProvider{
			kind: model.ProviderAnthropic,
			generateVision: func(ctx context.Context, question, imageBase64, modelName string, opts providers.GenerateOptions) (*providers.Generation, error) {
				return nil, errors.New("vision down")
			},
		},
	}
	o := NewOrchestrator(set, visionRegistry(), zerolog.Nop())

	question := "what color is the car?"
	analysis := o.Analyze(context.Background(), question, "aW1n")

	if !analysis.FallbackUsed {
		t.Fatal("text tier answer must be marked as fallback")
	}
	if analysis.ModelUsed != "gpt-3.5-turbo (fallback)" {
		t.Fatalf("unexpected model tag: %s", analysis.ModelUsed)
	}
	// The question is re-wrapped, never forwarded verbatim.
	if fallbackPrompt == question {
		t.Fatal("fallback tier received the raw question")
	}
	if !strings.Contains(fallbackPrompt, question) {
		t.Fatalf("re-wrapped prompt lost the question: %q", fallbackPrompt)
	}
}

func TestAnalyzeSystemApologyWhenAllTiersFail(t *testing.T) {
	failing := func(kind model.ProviderKind) *stubProvider {
		return &stubProvider{
			kind: kind,
			generateVision: func(ctx context.Context, question, imageBase64, modelName string, opts providers.GenerateOptions) (*providers.Generation, error) {
				return nil, errors.New("down")
			},
			generate: func(ctx context.Context, query, modelName string, opts providers.GenerateOptions) (*providers.Generation, error) {
				return nil, errors.New("down")
			},
		}
	}
	set := providers.Set{
		model.ProviderOpenAI:    failing(model.ProviderOpenAI),
		model.ProviderAnthropic: failing(model.ProviderAnthropic),
	}
	o := NewOrchestrator(set, visionRegistry(), zerolog.Nop())

	analysis := o.Analyze(context.Background(), "anything", "aW1n")

	if !analysis.FallbackUsed {
		t.Fatal("system apology must be marked as fallback")
	}
	if analysis.ModelUsed != SystemFallbackModel {
		t.Fatalf("expected %s, got %s", SystemFallbackModel, analysis.ModelUsed)
	}
	if analysis.Provider != model.ProviderSystem {
		t.Fatalf("expected the system provider, got %s", analysis.Provider)
	}
	if analysis.TokensUsed != 0 {
		t.Fatalf("system apology must consume no tokens, got %d", analysis.TokensUsed)
	}
	if analysis.Answer == "" {
		t.Fatal("system apology must carry text")
	}
}

func TestAnalyzeNoVisionModelsGoesStraightToFallback(t *testing.T) {
	registry := model.NewRegistry([]model.ModelConfig{
		{Name: "gpt-3.5-turbo", Provider: model.ProviderOpenAI, Type: model.TypeInstruct, MaxTokens: 500, Temperature: 0.7, Priority: 3, Available: true},
	}, map[model.ProviderKind]bool{model.ProviderOpenAI: true})

	set := providers.Set{
		model.ProviderOpenAI: &stubProvider{
			kind: model.ProviderOpenAI,
			generate: func(ctx context.Context, query, modelName string, opts providers.GenerateOptions) (*providers.Generation, error) {
				return &providers.Generation{Content: "general guidance"}, nil
			},
		},
	}
	o := NewOrchestrator(set, registry, zerolog.Nop())

	analysis := o.Analyze(context.Background(), "question", "aW1n")
	if !analysis.FallbackUsed || analysis.ModelUsed != "gpt-3.5-turbo (fallback)" {
		t.Fatalf("unexpected analysis: %+v", analysis)
	}
}
