package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/arenalabs/model-arena/internal/domain/model"
	"github.com/arenalabs/model-arena/internal/infrastructure/providers"
	"github.com/arenalabs/model-arena/internal/interfaces/httpserver/responses"
)

// CatalogHandler exposes the model catalog and provider readiness.
type CatalogHandler struct {
	registry  *model.Registry
	providers providers.Set
	logger    zerolog.Logger
}

func NewCatalogHandler(registry *model.Registry, set providers.Set, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{registry: registry, providers: set, logger: logger}
}

// Status handles GET /v1/status.
func (h *CatalogHandler) Status(c *gin.Context) {
	visionModels := h.registry.VisionModels()
	fallbackModels := h.registry.FallbackModels()

	configured := map[string]bool{
		string(model.ProviderOpenAI):      false,
		string(model.ProviderAnthropic):   false,
		string(model.ProviderHuggingFace): false,
	}
	for _, kind := range h.registry.ConfiguredProviders() {
		configured[string(kind)] = true
	}

	c.JSON(http.StatusOK, responses.StatusResponse{
		VisionModelsAvailable:   len(visionModels),
		FallbackModelsAvailable: len(fallbackModels),
		VisionModels:            briefs(visionModels),
		FallbackModels:          briefs(fallbackModels),
		ProvidersConfigured:     configured,
	})
}

// Models handles GET /v1/models. Each configured provider reports its own
// listing; a failing provider is logged and skipped rather than failing the
// whole response.
func (h *CatalogHandler) Models(c *gin.Context) {
	var infos []model.ModelInfo
	for _, kind := range h.providers.Kinds() {
		provider, ok := h.providers.Get(kind)
		if !ok {
			continue
		}
		listed, err := provider.ListModels(c.Request.Context())
		if err != nil {
			h.logger.Warn().Str("provider", string(kind)).Err(err).Msg("model listing failed")
			continue
		}
		infos = append(infos, listed...)
	}
	if infos == nil {
		infos = []model.ModelInfo{}
	}

	c.JSON(http.StatusOK, responses.ModelsResponse{Models: infos})
}

func briefs(models []model.ModelConfig) []responses.ModelBrief {
	out := make([]responses.ModelBrief, 0, len(models))
	for _, m := range models {
		out = append(out, responses.ModelBrief{
			Name:     m.Name,
			Provider: string(m.Provider),
			Priority: m.Priority,
		})
	}
	return out
}
