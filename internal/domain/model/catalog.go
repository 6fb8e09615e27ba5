package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arenalabs/model-arena/internal/infrastructure/logger"
)

const (
	defaultMaxTokens   = 1000
	defaultTemperature = 0.7
)

type catalogDocument struct {
	Defaults struct {
		MaxTokens   int     `yaml:"max_tokens"`
		Temperature float64 `yaml:"temperature"`
	} `yaml:"defaults"`
	Models []ModelConfig `yaml:"models"`
}

// LoadCatalog parses the model catalog YAML at path. A missing file is not
// fatal: the built-in default catalog is returned with a warning, so the tool
// works out of the box the way the bundled config does.
func LoadCatalog(path string) ([]ModelConfig, error) {
	log := logger.GetLogger()

	if strings.TrimSpace(path) == "" {
		return nil, errors.New("model catalog path is empty")
	}

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn().Str("path", cleanPath).Msg("model catalog file not found, using built-in defaults")
			return DefaultCatalog(), nil
		}
		return nil, fmt.Errorf("read model catalog %q: %w", cleanPath, err)
	}

	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse model catalog %q: %w", cleanPath, err)
	}
	if len(doc.Models) == 0 {
		return nil, fmt.Errorf("model catalog %q has no models defined", cleanPath)
	}

	maxTokens := doc.Defaults.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	temperature := doc.Defaults.Temperature
	if temperature <= 0 {
		temperature = defaultTemperature
	}

	models := make([]ModelConfig, 0, len(doc.Models))
	for idx, entry := range doc.Models {
		normalized, err := normalizeCatalogEntry(entry, maxTokens, temperature)
		if err != nil {
			return nil, fmt.Errorf("models[%d]: %w", idx, err)
		}
		models = append(models, normalized)
	}

	log.Info().Str("path", cleanPath).Int("models", len(models)).Msg("loaded model catalog")
	return models, nil
}

func normalizeCatalogEntry(entry ModelConfig, maxTokens int, temperature float64) (ModelConfig, error) {
	entry.Name = strings.TrimSpace(entry.Name)
	if entry.Name == "" {
		return ModelConfig{}, errors.New("model name is required")
	}

	entry.Provider = ProviderKind(strings.ToLower(string(entry.Provider)))
	switch entry.Provider {
	case ProviderOpenAI, ProviderAnthropic, ProviderHuggingFace:
	default:
		return ModelConfig{}, fmt.Errorf("unknown provider %q for model %q", entry.Provider, entry.Name)
	}

	entry.Type = ModelType(strings.ToLower(string(entry.Type)))
	switch entry.Type {
	case TypeBase, TypeInstruct, TypeFineTuned:
	case "":
		entry.Type = TypeInstruct
	default:
		return ModelConfig{}, fmt.Errorf("unknown model type %q for model %q", entry.Type, entry.Name)
	}

	if entry.MaxTokens <= 0 {
		entry.MaxTokens = maxTokens
	}
	if entry.Temperature <= 0 {
		entry.Temperature = temperature
	}
	return entry, nil
}

// DefaultCatalog returns the hardcoded fallback catalog used when no catalog
// file is present.
func DefaultCatalog() []ModelConfig {
	return []ModelConfig{
		{
			Name:           "gpt-4o",
			Provider:       ProviderOpenAI,
			Type:           TypeInstruct,
			Description:    "Multimodal flagship GPT model",
			ContextWindow:  128000,
			SupportsVision: true,
			MaxTokens:      defaultMaxTokens,
			Temperature:    defaultTemperature,
			Priority:       1,
			Available:      true,
		},
		{
			Name:           "gpt-3.5-turbo",
			Provider:       ProviderOpenAI,
			Type:           TypeInstruct,
			Description:    "Fast instruction-tuned GPT model",
			ContextWindow:  16385,
			SupportsVision: false,
			MaxTokens:      500,
			Temperature:    defaultTemperature,
			Priority:       3,
			Available:      true,
		},
		{
			Name:           "claude-3-sonnet-20240229",
			Provider:       ProviderAnthropic,
			Type:           TypeInstruct,
			Description:    "Balanced Claude model with vision support",
			ContextWindow:  200000,
			SupportsVision: true,
			MaxTokens:      defaultMaxTokens,
			Temperature:    defaultTemperature,
			Priority:       2,
			Available:      true,
		},
		{
			Name:           "claude-3-haiku-20240307",
			Provider:       ProviderAnthropic,
			Type:           TypeInstruct,
			Description:    "Fastest Claude model",
			ContextWindow:  200000,
			SupportsVision: false,
			MaxTokens:      500,
			Temperature:    defaultTemperature,
			Priority:       4,
			Available:      true,
		},
		{
			Name:           "gpt2",
			Provider:       ProviderHuggingFace,
			Type:           TypeBase,
			Description:    "GPT-2 base completion model",
			ContextWindow:  1024,
			SupportsVision: false,
			MaxTokens:      256,
			Temperature:    defaultTemperature,
			Priority:       6,
			Available:      true,
		},
		{
			Name:           "mistralai/Mistral-7B-Instruct-v0.2",
			Provider:       ProviderHuggingFace,
			Type:           TypeInstruct,
			Description:    "Open instruction-tuned Mistral model",
			ContextWindow:  32768,
			SupportsVision: false,
			MaxTokens:      512,
			Temperature:    defaultTemperature,
			Priority:       5,
			Available:      true,
		},
	}
}
