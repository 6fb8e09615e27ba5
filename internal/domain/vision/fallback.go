// Package vision answers image questions by walking priority-ordered model
// tiers: vision-capable models first, then text-only models with a rewritten
// prompt, then a fixed system apology. Tiers are strictly sequential; the
// intent is the cheapest viable success, not a full fan-out.
package vision

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/arenalabs/model-arena/internal/domain/model"
	"github.com/arenalabs/model-arena/internal/infrastructure/metrics"
	"github.com/arenalabs/model-arena/internal/infrastructure/providers"
)

// SystemFallbackModel tags answers produced without any provider call.
const SystemFallbackModel = "system_fallback"

const (
	apologyNoModels = "I apologize, but I'm unable to process your request at the moment. " +
		"Please check your API configuration and try again."
	apologyExhausted = "I apologize, but I'm unable to process your image or question at the moment. " +
		"This could be due to API limitations or configuration issues. " +
		"Please try again later or contact support."
)

// Analysis is the outcome of one image question. It is always produced;
// the orchestrator never returns an error to its caller.
type Analysis struct {
	Answer         string             `json:"answer"`
	ModelUsed      string             `json:"model_used"`
	Provider       model.ProviderKind `json:"provider"`
	ProcessingTime float64            `json:"processing_time"`
	TokensUsed     int                `json:"tokens_used"`
	FallbackUsed   bool               `json:"fallback_used"`
}

// Orchestrator walks the fallback tiers for one request at a time.
type Orchestrator struct {
	providers providers.Set
	registry  *model.Registry
	logger    zerolog.Logger
	tracer    trace.Tracer
}

func NewOrchestrator(set providers.Set, registry *model.Registry, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		providers: set,
		registry:  registry,
		logger:    logger,
		tracer:    otel.Tracer("vision"),
	}
}

// Analyze tries each vision model in priority order until one answers, then
// degrades to the text tier and finally the system apology. Adapter failures
// are transition triggers, never surfaced to the caller. FallbackUsed is
// false only for a vision-tier success.
func (o *Orchestrator) Analyze(ctx context.Context, question, imageBase64 string) *Analysis {
	ctx, span := o.tracer.Start(ctx, "vision.analyze")
	defer span.End()

	visionModels := o.registry.VisionModels()
	if len(visionModels) == 0 {
		o.logger.Warn().Msg("no vision models available, using fallback")
		return o.fallback(ctx, question)
	}

	for _, m := range visionModels {
		analysis, err := o.tryVisionModel(ctx, m, question, imageBase64)
		if err != nil {
			o.logger.Warn().Str("model", m.Name).Err(err).Msg("vision model failed")
			continue
		}
		analysis.FallbackUsed = false
		metrics.RecordVisionOutcome("vision")
		return analysis
	}

	o.logger.Warn().Msg("all vision models failed, using fallback")
	return o.fallback(ctx, question)
}

func (o *Orchestrator) tryVisionModel(ctx context.Context, m model.ModelConfig, question, imageBase64 string) (*Analysis, error) {
	provider, ok := o.providers.Get(m.Provider)
	if !ok {
		return nil, fmt.Errorf("provider %q is not configured", m.Provider)
	}

	start := time.Now()
	gen, err := provider.GenerateVision(ctx, question, imageBase64, m.Name, providers.GenerateOptions{
		MaxTokens:   m.MaxTokens,
		Temperature: m.Temperature,
	})
	elapsed := time.Since(start)
	if err != nil {
		metrics.RecordProviderError(string(m.Provider), providers.ErrorType(err))
		return nil, err
	}

	tokens := gen.Usage.Total
	if tokens == 0 {
		tokens = model.EstimateUsage(question, gen.Content).Total
	}
	metrics.RecordProviderCall(string(m.Provider), m.Name, "ok", elapsed.Seconds(), gen.Usage.Prompt, gen.Usage.Completion)

	return &Analysis{
		Answer:         gen.Content,
		ModelUsed:      m.Name,
		Provider:       m.Provider,
		ProcessingTime: elapsed.Seconds(),
		TokensUsed:     tokens,
	}, nil
}

// fallback walks the text-only tier. The question is re-wrapped so the model
// acknowledges the unreadable image instead of hallucinating one.
func (o *Orchestrator) fallback(ctx context.Context, question string) *Analysis {
	start := time.Now()

	fallbackModels := o.registry.FallbackModels()
	if len(fallbackModels) == 0 {
		metrics.RecordVisionOutcome("system")
		return systemApology(apologyNoModels, time.Since(start))
	}

	prompt := RewrapQuestion(question)
	for _, m := range fallbackModels {
		provider, ok := o.providers.Get(m.Provider)
		if !ok {
			continue
		}

		gen, err := provider.Generate(ctx, prompt, m.Name, providers.GenerateOptions{
			MaxTokens:   m.MaxTokens,
			Temperature: m.Temperature,
		})
		if err != nil {
			o.logger.Warn().Str("model", m.Name).Err(err).Msg("fallback model failed")
			metrics.RecordProviderError(string(m.Provider), providers.ErrorType(err))
			continue
		}

		elapsed := time.Since(start)
		tokens := gen.Usage.Total
		if tokens == 0 {
			tokens = model.EstimateUsage(prompt, gen.Content).Total
		}
		metrics.RecordProviderCall(string(m.Provider), m.Name, "ok", elapsed.Seconds(), gen.Usage.Prompt, gen.Usage.Completion)
		metrics.RecordVisionOutcome("fallback")

		return &Analysis{
			Answer:         gen.Content,
			ModelUsed:      m.Name + " (fallback)",
			Provider:       m.Provider,
			ProcessingTime: elapsed.Seconds(),
			TokensUsed:     tokens,
			FallbackUsed:   true,
		}
	}

	metrics.RecordVisionOutcome("system")
	return systemApology(apologyExhausted, time.Since(start))
}

// RewrapQuestion rewrites a question for the text-only tier. Callers of the
// fallback tier never get their query forwarded verbatim.
func RewrapQuestion(question string) string {
	return fmt.Sprintf("I'm unable to process the image, but here's the question: %s. "+
		"Please provide a helpful response acknowledging that you cannot see the image "+
		"but offering general guidance if possible.", question)
}

func systemApology(text string, elapsed time.Duration) *Analysis {
	return &Analysis{
		Answer:         text,
		ModelUsed:      SystemFallbackModel,
		Provider:       model.ProviderSystem,
		ProcessingTime: elapsed.Seconds(),
		TokensUsed:     0,
		FallbackUsed:   true,
	}
}
