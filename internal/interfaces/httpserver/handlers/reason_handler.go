package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/arenalabs/model-arena/internal/domain/model"
	"github.com/arenalabs/model-arena/internal/domain/reasoning"
	"github.com/arenalabs/model-arena/internal/infrastructure/providers"
	"github.com/arenalabs/model-arena/internal/interfaces/httpserver/requests"
	"github.com/arenalabs/model-arena/internal/interfaces/httpserver/responses"
)

// ReasonHandler runs the tool-enhanced reasoning loop over HTTP. The loop
// always runs against OpenAI, matching the tool prompt's wording.
type ReasonHandler struct {
	providers providers.Set
	logger    zerolog.Logger
}

func NewReasonHandler(set providers.Set, logger zerolog.Logger) *ReasonHandler {
	return &ReasonHandler{providers: set, logger: logger}
}

// Reason handles POST /v1/reason.
func (h *ReasonHandler) Reason(c *gin.Context) {
	var req requests.ReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.AbortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	provider, ok := h.providers.Get(model.ProviderOpenAI)
	if !ok {
		responses.AbortWithError(c, http.StatusServiceUnavailable, "openai provider is not configured")
		return
	}

	reasoner := reasoning.NewReasoner(provider, req.Model, h.logger)
	c.JSON(http.StatusOK, reasoner.Reason(c.Request.Context(), req.Query))
}
