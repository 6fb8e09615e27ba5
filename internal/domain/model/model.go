// Package model defines the static model catalog and the uniform result
// shape shared by every orchestrator.
package model

import (
	"time"
)

// ProviderKind identifies a hosted inference vendor.
type ProviderKind string

const (
	ProviderOpenAI      ProviderKind = "openai"
	ProviderAnthropic   ProviderKind = "anthropic"
	ProviderHuggingFace ProviderKind = "huggingface"

	// ProviderSystem tags synthetic results produced without any vendor call.
	ProviderSystem ProviderKind = "system"

	// ProviderAll is the wildcard selection filter.
	ProviderAll ProviderKind = "all"
)

// ModelType classifies how a model was trained.
type ModelType string

const (
	TypeBase      ModelType = "base"
	TypeInstruct  ModelType = "instruct"
	TypeFineTuned ModelType = "fine_tuned"

	// TypeAll is the wildcard selection filter.
	TypeAll ModelType = "all"
)

// ModelConfig is one catalog entry. Immutable once loaded.
type ModelConfig struct {
	Name           string       `yaml:"name" json:"name"`
	Provider       ProviderKind `yaml:"provider" json:"provider"`
	Type           ModelType    `yaml:"type" json:"type"`
	Description    string       `yaml:"description" json:"description,omitempty"`
	ContextWindow  int          `yaml:"context_window" json:"context_window"`
	SupportsVision bool         `yaml:"supports_vision" json:"supports_vision"`
	MaxTokens      int          `yaml:"max_tokens" json:"max_tokens"`
	Temperature    float64      `yaml:"temperature" json:"temperature"`
	Priority       int          `yaml:"priority" json:"priority"`
	Available      bool         `yaml:"available" json:"available"`
}

// ModelInfo describes a model as reported by a provider's listing endpoint.
type ModelInfo struct {
	Name          string       `json:"name"`
	Description   string       `json:"description,omitempty"`
	Type          ModelType    `json:"type"`
	ContextWindow int          `json:"context_window"`
	Available     bool         `json:"available"`
	Provider      ProviderKind `json:"provider"`
}

// Candidate is one (provider, model, type) triple eligible for a comparison.
type Candidate struct {
	Provider  ProviderKind `json:"provider"`
	ModelName string       `json:"model_name"`
	ModelType ModelType    `json:"model_type"`
}

// TokenUsage carries per-call token accounting. Counts may be heuristic
// estimates when the provider does not report usage.
type TokenUsage struct {
	Prompt     int `json:"prompt_tokens"`
	Completion int `json:"completion_tokens"`
	Total      int `json:"total_tokens"`
}

// MetadataErrorKey marks a failed call inside Result.Metadata.
const MetadataErrorKey = "error"

// Result is the uniform outcome of one provider invocation. Exactly one of
// "Content holds an answer" or "Metadata carries an error" is true; callers
// check Failed(), never a Go error, to detect per-call failure.
type Result struct {
	Content       string            `json:"content"`
	ModelName     string            `json:"model_name"`
	Provider      ProviderKind      `json:"provider"`
	ModelType     ModelType         `json:"model_type"`
	TokenUsage    TokenUsage        `json:"token_usage"`
	Elapsed       time.Duration     `json:"-"`
	ContextWindow int               `json:"context_window"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// ElapsedSeconds returns wall time for the call in seconds.
func (r *Result) ElapsedSeconds() float64 {
	return r.Elapsed.Seconds()
}

// Failed reports whether the call produced an error instead of content.
func (r *Result) Failed() bool {
	_, ok := r.Metadata[MetadataErrorKey]
	return ok
}

// ErrorText returns the carried error text, empty for successful results.
func (r *Result) ErrorText() string {
	return r.Metadata[MetadataErrorKey]
}

// ErrorResult synthesizes a failed Result for a candidate. Token usage is
// always zero for failures.
func ErrorResult(c Candidate, elapsed time.Duration, err error) *Result {
	return &Result{
		ModelName: c.ModelName,
		Provider:  c.Provider,
		ModelType: c.ModelType,
		Elapsed:   elapsed,
		Metadata:  map[string]string{MetadataErrorKey: err.Error()},
	}
}
