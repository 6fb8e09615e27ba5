// Package compare fans one query out to a candidate set of models and
// aggregates the heterogeneous replies into a uniform batch.
package compare

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/arenalabs/model-arena/internal/domain/model"
	"github.com/arenalabs/model-arena/internal/infrastructure/metrics"
	"github.com/arenalabs/model-arena/internal/infrastructure/providers"
)

const (
	// DefaultMaxConcurrent bounds the fan-out worker pool.
	DefaultMaxConcurrent = 3
	// DefaultCallTimeout bounds each individual provider call.
	DefaultCallTimeout = 60 * time.Second
)

// Orchestrator runs comparison batches. Failures of individual calls are
// converted to error-tagged results; nothing a provider does can fail the
// batch.
type Orchestrator struct {
	providers     providers.Set
	registry      *model.Registry
	logger        zerolog.Logger
	maxConcurrent int
	callTimeout   time.Duration
	tracer        trace.Tracer
}

// NewOrchestrator builds an orchestrator. Non-positive maxConcurrent or
// callTimeout fall back to the defaults.
func NewOrchestrator(set providers.Set, registry *model.Registry, logger zerolog.Logger, maxConcurrent int, callTimeout time.Duration) *Orchestrator {
	if maxConcurrent < 1 {
		maxConcurrent = DefaultMaxConcurrent
	}
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}
	return &Orchestrator{
		providers:     set,
		registry:      registry,
		logger:        logger,
		maxConcurrent: maxConcurrent,
		callTimeout:   callTimeout,
		tracer:        otel.Tracer("compare"),
	}
}

// Compare issues one provider call per candidate under the concurrency cap
// and returns exactly one result per candidate, in completion order. An empty
// candidate set is a valid outcome and yields an empty batch. The context
// cancels in-flight and queued calls.
func (o *Orchestrator) Compare(ctx context.Context, query string, candidates []model.Candidate) []*model.Result {
	if len(candidates) == 0 {
		return []*model.Result{}
	}

	ctx, span := o.tracer.Start(ctx, "compare.batch",
		trace.WithAttributes(attribute.Int("candidates", len(candidates))))
	defer span.End()

	collected := make(chan *model.Result, len(candidates))

	var group errgroup.Group
	group.SetLimit(o.maxConcurrent)
	for _, candidate := range candidates {
		candidate := candidate
		group.Go(func() error {
			collected <- o.invoke(ctx, query, candidate)
			return nil
		})
	}
	// Workers never return errors; failures travel inside the results.
	_ = group.Wait()
	close(collected)

	results := make([]*model.Result, 0, len(candidates))
	for result := range collected {
		results = append(results, result)
	}

	metrics.ComparisonsTotal.Inc()
	return results
}

// invoke runs one provider call with its own timeout and converts every
// failure mode into an error-tagged result.
func (o *Orchestrator) invoke(ctx context.Context, query string, candidate model.Candidate) *model.Result {
	callCtx, cancel := context.WithTimeout(ctx, o.callTimeout)
	defer cancel()

	start := time.Now()

	provider, ok := o.providers.Get(candidate.Provider)
	if !ok {
		err := fmt.Errorf("provider %q is not configured", candidate.Provider)
		metrics.RecordProviderError(string(candidate.Provider), "not_configured")
		return model.ErrorResult(candidate, time.Since(start), err)
	}

	opts := providers.GenerateOptions{MaxTokens: 1000, Temperature: 0.7}
	contextWindow := 0
	if cfg, found := o.registry.Lookup(candidate.ModelName); found {
		opts = providers.GenerateOptions{MaxTokens: cfg.MaxTokens, Temperature: cfg.Temperature}
		contextWindow = cfg.ContextWindow
	}

	type outcome struct {
		gen *providers.Generation
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		gen, err := provider.Generate(callCtx, query, candidate.ModelName, opts)
		done <- outcome{gen: gen, err: err}
	}()

	var out outcome
	select {
	case out = <-done:
	case <-callCtx.Done():
		out = outcome{err: fmt.Errorf("call timed out after %s: %w", o.callTimeout, callCtx.Err())}
	}

	elapsed := time.Since(start)

	if out.err != nil {
		o.logger.Warn().
			Str("provider", string(candidate.Provider)).
			Str("model", candidate.ModelName).
			Dur("elapsed", elapsed).
			Err(out.err).
			Msg("provider call failed")
		metrics.RecordProviderError(string(candidate.Provider), providers.ErrorType(out.err))
		metrics.RecordProviderCall(string(candidate.Provider), candidate.ModelName, "error", elapsed.Seconds(), 0, 0)
		return model.ErrorResult(candidate, elapsed, out.err)
	}

	usage := out.gen.Usage
	if usage.Total == 0 {
		usage = model.EstimateUsage(query, out.gen.Content)
	}

	o.logger.Debug().
		Str("provider", string(candidate.Provider)).
		Str("model", candidate.ModelName).
		Dur("elapsed", elapsed).
		Int("tokens", usage.Total).
		Msg("provider call completed")
	metrics.RecordProviderCall(string(candidate.Provider), candidate.ModelName, "ok", elapsed.Seconds(), usage.Prompt, usage.Completion)

	return &model.Result{
		Content:       out.gen.Content,
		ModelName:     candidate.ModelName,
		Provider:      candidate.Provider,
		ModelType:     candidate.ModelType,
		TokenUsage:    usage,
		Elapsed:       elapsed,
		ContextWindow: contextWindow,
	}
}
