package model

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "models.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalog(t, `
defaults:
  max_tokens: 800
  temperature: 0.5
models:
  - name: gpt-4o
    provider: openai
    type: instruct
    supports_vision: true
    priority: 1
    available: true
  - name: gpt2
    provider: HuggingFace
    type: base
    max_tokens: 256
    available: true
`)

	models, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("expected 2 models, got %d", len(models))
	}

	// Defaults apply when the entry is silent.
	if models[0].MaxTokens != 800 || models[0].Temperature != 0.5 {
		t.Fatalf("defaults not applied: %+v", models[0])
	}
	// Explicit values win over defaults.
	if models[1].MaxTokens != 256 {
		t.Fatalf("explicit max_tokens overridden: %+v", models[1])
	}
	// Provider names normalize to lowercase.
	if models[1].Provider != ProviderHuggingFace {
		t.Fatalf("provider not normalized: %q", models[1].Provider)
	}
}

func TestLoadCatalogMissingFileUsesDefaults(t *testing.T) {
	models, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(models) != len(DefaultCatalog()) {
		t.Fatalf("expected the default catalog, got %d models", len(models))
	}
}

func TestLoadCatalogRejectsUnknownProvider(t *testing.T) {
	path := writeCatalog(t, `
models:
  - name: some-model
    provider: google
    type: instruct
`)
	if _, err := LoadCatalog(path); err == nil {
		t.Fatal("expected an error for an unknown provider")
	}
}

func TestLoadCatalogRejectsMissingName(t *testing.T) {
	path := writeCatalog(t, `
models:
  - provider: openai
    type: instruct
`)
	if _, err := LoadCatalog(path); err == nil {
		t.Fatal("expected an error for a missing model name")
	}
}

func TestLoadCatalogDefaultsModelType(t *testing.T) {
	path := writeCatalog(t, `
models:
  - name: gpt-4o
    provider: openai
`)
	models, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if models[0].Type != TypeInstruct {
		t.Fatalf("expected instruct default, got %q", models[0].Type)
	}
}
