package model

import "testing"

func testCatalog() []ModelConfig {
	return []ModelConfig{
		{Name: "gpt-4o", Provider: ProviderOpenAI, Type: TypeInstruct, SupportsVision: true, Priority: 1, Available: true},
		{Name: "gpt-3.5-turbo", Provider: ProviderOpenAI, Type: TypeInstruct, Priority: 3, Available: true},
		{Name: "claude-3-sonnet-20240229", Provider: ProviderAnthropic, Type: TypeInstruct, SupportsVision: true, Priority: 2, Available: true},
		{Name: "claude-3-haiku-20240307", Provider: ProviderAnthropic, Type: TypeInstruct, Priority: 4, Available: true},
		{Name: "gpt2", Provider: ProviderHuggingFace, Type: TypeBase, Priority: 6, Available: true},
		{Name: "mistralai/Mistral-7B-Instruct-v0.2", Provider: ProviderHuggingFace, Type: TypeInstruct, Priority: 5, Available: true},
	}
}

func allConfigured() map[ProviderKind]bool {
	return map[ProviderKind]bool{
		ProviderOpenAI:      true,
		ProviderAnthropic:   true,
		ProviderHuggingFace: true,
	}
}

func TestSelectCandidatesOrdering(t *testing.T) {
	r := NewRegistry(testCatalog(), allConfigured())

	candidates := r.SelectCandidates(ProviderAll, TypeAll)
	if len(candidates) != 6 {
		t.Fatalf("expected 6 candidates, got %d", len(candidates))
	}

	// Provider order is fixed, then type order within each provider.
	expected := []string{
		"gpt-4o",
		"gpt-3.5-turbo",
		"claude-3-sonnet-20240229",
		"claude-3-haiku-20240307",
		"gpt2",
		"mistralai/Mistral-7B-Instruct-v0.2",
	}
	for i, name := range expected {
		if candidates[i].ModelName != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, candidates[i].ModelName)
		}
	}
}

func TestSelectCandidatesFilters(t *testing.T) {
	r := NewRegistry(testCatalog(), allConfigured())

	openai := r.SelectCandidates(ProviderOpenAI, TypeAll)
	if len(openai) != 2 {
		t.Fatalf("expected 2 openai candidates, got %d", len(openai))
	}
	for _, c := range openai {
		if c.Provider != ProviderOpenAI {
			t.Fatalf("unexpected provider %s", c.Provider)
		}
	}

	base := r.SelectCandidates(ProviderAll, TypeBase)
	if len(base) != 1 || base[0].ModelName != "gpt2" {
		t.Fatalf("unexpected base candidates: %+v", base)
	}

	// Empty filters behave like wildcards.
	all := r.SelectCandidates("", "")
	if len(all) != 6 {
		t.Fatalf("expected 6 candidates with empty filters, got %d", len(all))
	}
}

func TestSelectCandidatesExcludesUnconfigured(t *testing.T) {
	r := NewRegistry(testCatalog(), map[ProviderKind]bool{ProviderOpenAI: true})

	candidates := r.SelectCandidates(ProviderAll, TypeAll)
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	for _, c := range candidates {
		if c.Provider != ProviderOpenAI {
			t.Fatalf("unconfigured provider leaked: %s", c.Provider)
		}
	}

	// Filtering by an unconfigured provider yields nothing, not an error.
	none := r.SelectCandidates(ProviderAnthropic, TypeAll)
	if len(none) != 0 {
		t.Fatalf("expected no candidates, got %d", len(none))
	}
}

func TestSelectCandidatesExcludesUnavailable(t *testing.T) {
	catalog := testCatalog()
	catalog[0].Available = false
	r := NewRegistry(catalog, allConfigured())

	for _, c := range r.SelectCandidates(ProviderAll, TypeAll) {
		if c.ModelName == "gpt-4o" {
			t.Fatal("unavailable model selected")
		}
	}
}

func TestVisionModelsPriorityOrder(t *testing.T) {
	r := NewRegistry(testCatalog(), allConfigured())

	visionModels := r.VisionModels()
	if len(visionModels) != 2 {
		t.Fatalf("expected 2 vision models, got %d", len(visionModels))
	}
	if visionModels[0].Name != "gpt-4o" || visionModels[1].Name != "claude-3-sonnet-20240229" {
		t.Fatalf("unexpected vision order: %s, %s", visionModels[0].Name, visionModels[1].Name)
	}
}

func TestFallbackModelsExcludeVision(t *testing.T) {
	r := NewRegistry(testCatalog(), allConfigured())

	fallback := r.FallbackModels()
	if len(fallback) != 4 {
		t.Fatalf("expected 4 fallback models, got %d", len(fallback))
	}
	for _, m := range fallback {
		if m.SupportsVision {
			t.Fatalf("vision model %s in fallback tier", m.Name)
		}
	}
	// Sorted by ascending priority.
	for i := 1; i < len(fallback); i++ {
		if fallback[i].Priority < fallback[i-1].Priority {
			t.Fatalf("fallback tier not priority sorted: %+v", fallback)
		}
	}
}

func TestLookup(t *testing.T) {
	r := NewRegistry(testCatalog(), allConfigured())

	if _, found := r.Lookup("gpt-4o"); !found {
		t.Fatal("expected to find gpt-4o")
	}
	if _, found := r.Lookup("no-such-model"); found {
		t.Fatal("found a model that does not exist")
	}
}
