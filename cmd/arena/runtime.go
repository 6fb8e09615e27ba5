package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arenalabs/model-arena/internal/config"
	"github.com/arenalabs/model-arena/internal/domain/model"
	"github.com/arenalabs/model-arena/internal/infrastructure/logger"
	"github.com/arenalabs/model-arena/internal/infrastructure/providers"
)

// runtime is the shared wiring every subcommand needs. Commands build it
// lazily so --help works without any configuration present.
type runtime struct {
	cfg       *config.Config
	log       zerolog.Logger
	catalog   []model.ModelConfig
	registry  *model.Registry
	providers providers.Set
}

func buildRuntime() (*runtime, error) {
	log := logger.GetLogger()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	catalog, err := model.LoadCatalog(cfg.ModelCatalogFile)
	if err != nil {
		return nil, fmt.Errorf("load model catalog: %w", err)
	}

	set := providers.NewSet(cfg, catalog, log)
	if len(set) == 0 {
		return nil, fmt.Errorf("no provider has an API key configured, set OPENAI_API_KEY, ANTHROPIC_API_KEY, or HUGGINGFACE_API_KEY")
	}

	configured := make(map[model.ProviderKind]bool, len(set))
	for _, kind := range set.Kinds() {
		configured[kind] = true
	}

	return &runtime{
		cfg:       cfg,
		log:       log,
		catalog:   catalog,
		registry:  model.NewRegistry(catalog, configured),
		providers: set,
	}, nil
}
