package model

import (
	"sort"

	"github.com/arenalabs/model-arena/internal/utils/functional"
)

// providerOrder and typeOrder fix the iteration sequence for candidate
// selection, keeping SelectCandidates stable across runs.
var (
	providerOrder = []ProviderKind{ProviderOpenAI, ProviderAnthropic, ProviderHuggingFace}
	typeOrder     = []ModelType{TypeBase, TypeInstruct, TypeFineTuned}
)

// Registry is the static, configuration-derived model catalog. It answers
// candidate selection queries and never mutates after construction.
type Registry struct {
	models     []ModelConfig
	configured map[ProviderKind]bool
}

// NewRegistry builds a registry over the loaded catalog. configured names the
// providers that have credentials; models of unconfigured providers are
// excluded from every selection rather than failing the query.
func NewRegistry(models []ModelConfig, configured map[ProviderKind]bool) *Registry {
	owned := make([]ModelConfig, len(models))
	copy(owned, models)
	if configured == nil {
		configured = map[ProviderKind]bool{}
	}
	return &Registry{models: owned, configured: configured}
}

// Models returns a copy of every catalog entry.
func (r *Registry) Models() []ModelConfig {
	out := make([]ModelConfig, len(r.models))
	copy(out, r.models)
	return out
}

// Lookup finds a catalog entry by model name.
func (r *Registry) Lookup(name string) (ModelConfig, bool) {
	return functional.Find(r.models, func(m ModelConfig) bool { return m.Name == name })
}

// ConfiguredProviders returns the providers with credentials, in the fixed
// selection order.
func (r *Registry) ConfiguredProviders() []ProviderKind {
	return functional.Filter(providerOrder, func(p ProviderKind) bool { return r.configured[p] })
}

// SelectCandidates builds the ordered candidate set for a comparison.
// Ordering is the fixed provider sequence, then the fixed model type
// sequence, then catalog declaration order. Only available models of
// configured providers are included. Priority plays no role here.
func (r *Registry) SelectCandidates(providerFilter ProviderKind, typeFilter ModelType) []Candidate {
	providers := providerOrder
	if providerFilter != ProviderAll && providerFilter != "" {
		providers = []ProviderKind{providerFilter}
	}
	types := typeOrder
	if typeFilter != TypeAll && typeFilter != "" {
		types = []ModelType{typeFilter}
	}

	candidates := make([]Candidate, 0, len(r.models))
	for _, provider := range providers {
		if !r.configured[provider] {
			continue
		}
		for _, mtype := range types {
			for _, m := range r.models {
				if m.Provider != provider || m.Type != mtype || !m.Available {
					continue
				}
				candidates = append(candidates, Candidate{
					Provider:  m.Provider,
					ModelName: m.Name,
					ModelType: m.Type,
				})
			}
		}
	}
	return candidates
}

// VisionModels returns the available vision-capable models of configured
// providers, sorted by ascending priority (lower tried first).
func (r *Registry) VisionModels() []ModelConfig {
	return r.byCapability(true)
}

// FallbackModels returns the available text-only models of configured
// providers, sorted by ascending priority.
func (r *Registry) FallbackModels() []ModelConfig {
	return r.byCapability(false)
}

func (r *Registry) byCapability(vision bool) []ModelConfig {
	selected := functional.Filter(r.models, func(m ModelConfig) bool {
		return m.SupportsVision == vision && m.Available && r.configured[m.Provider]
	})
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Priority < selected[j].Priority
	})
	return selected
}
