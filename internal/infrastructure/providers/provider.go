// Package providers implements the vendor adapters behind one capability
// interface. Adding a vendor means adding an implementation here; the
// orchestrators never change.
package providers

import (
	"context"
	"errors"
	"strings"

	"github.com/arenalabs/model-arena/internal/domain/model"
)

// ErrVisionUnsupported is returned by adapters that cannot accept image input.
var ErrVisionUnsupported = errors.New("provider does not support vision input")

// GenerateOptions carries the per-call generation parameters.
type GenerateOptions struct {
	MaxTokens   int
	Temperature float64
}

// Generation is a provider's raw answer. Usage is zero when the vendor did
// not report token counts; callers fall back to the length estimator.
type Generation struct {
	Content string
	Usage   model.TokenUsage
}

// Provider wraps one vendor's client. Implementations return errors, never
// panic past their boundary, and are bounded by their own HTTP timeout.
type Provider interface {
	Kind() model.ProviderKind
	Generate(ctx context.Context, query, modelName string, opts GenerateOptions) (*Generation, error)
	GenerateVision(ctx context.Context, question, imageBase64, modelName string, opts GenerateOptions) (*Generation, error)
	ListModels(ctx context.Context) ([]model.ModelInfo, error)
	ValidateKey(ctx context.Context) error
}

// Set is the closed collection of configured providers.
type Set map[model.ProviderKind]Provider

// Get returns the provider for a kind when configured.
func (s Set) Get(kind model.ProviderKind) (Provider, bool) {
	p, ok := s[kind]
	return p, ok
}

// Kinds returns the configured provider kinds in a fixed order.
func (s Set) Kinds() []model.ProviderKind {
	order := []model.ProviderKind{model.ProviderOpenAI, model.ProviderAnthropic, model.ProviderHuggingFace}
	kinds := make([]model.ProviderKind, 0, len(s))
	for _, kind := range order {
		if _, ok := s[kind]; ok {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// ErrorType maps an adapter error to a coarse label for metrics.
func ErrorType(err error) string {
	switch {
	case err == nil:
		return "none"
	case strings.Contains(err.Error(), "context deadline exceeded"):
		return "timeout"
	case strings.Contains(err.Error(), "401") || strings.Contains(err.Error(), "403"):
		return "auth"
	case strings.Contains(err.Error(), "429"):
		return "rate_limit"
	default:
		return "upstream"
	}
}
