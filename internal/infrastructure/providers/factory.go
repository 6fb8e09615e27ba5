package providers

import (
	"github.com/rs/zerolog"

	"github.com/arenalabs/model-arena/internal/config"
	"github.com/arenalabs/model-arena/internal/domain/model"
)

// NewSet constructs an adapter for every provider with credentials. A missing
// key excludes the provider with a warning; it is never a startup failure.
func NewSet(cfg *config.Config, catalog []model.ModelConfig, log zerolog.Logger) Set {
	set := Set{}

	if cfg.OpenAIAPIKey != "" {
		set[model.ProviderOpenAI] = NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, catalog)
	} else {
		log.Warn().Str("provider", string(model.ProviderOpenAI)).Msg("no API key configured, provider excluded")
	}

	if cfg.AnthropicAPIKey != "" {
		set[model.ProviderAnthropic] = NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.AnthropicBaseURL, cfg.HTTPTimeout, catalog)
	} else {
		log.Warn().Str("provider", string(model.ProviderAnthropic)).Msg("no API key configured, provider excluded")
	}

	if cfg.HuggingFaceAPIKey != "" {
		set[model.ProviderHuggingFace] = NewHuggingFaceProvider(cfg.HuggingFaceAPIKey, cfg.HuggingFaceBaseURL, cfg.HTTPTimeout, catalog)
	} else {
		log.Warn().Str("provider", string(model.ProviderHuggingFace)).Msg("no API key configured, provider excluded")
	}

	return set
}
