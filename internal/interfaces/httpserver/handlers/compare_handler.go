package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/arenalabs/model-arena/internal/domain/compare"
	"github.com/arenalabs/model-arena/internal/domain/model"
	"github.com/arenalabs/model-arena/internal/interfaces/httpserver/requests"
	"github.com/arenalabs/model-arena/internal/interfaces/httpserver/responses"
)

// CompareHandler fans a query out across the catalog and returns every
// model's answer plus the aggregate summary.
type CompareHandler struct {
	orchestrator *compare.Orchestrator
	registry     *model.Registry
	logger       zerolog.Logger
}

func NewCompareHandler(o *compare.Orchestrator, registry *model.Registry, logger zerolog.Logger) *CompareHandler {
	return &CompareHandler{orchestrator: o, registry: registry, logger: logger}
}

// Compare handles POST /v1/compare.
func (h *CompareHandler) Compare(c *gin.Context) {
	var req requests.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.AbortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	candidates := h.registry.SelectCandidates(model.ProviderKind(req.Provider), model.ModelType(req.ModelType))
	if len(candidates) == 0 {
		responses.AbortWithError(c, http.StatusBadRequest, "no available models match the requested filters")
		return
	}

	results := h.orchestrator.Compare(c.Request.Context(), req.Query, candidates)

	resp := responses.CompareResponse{
		Query:   req.Query,
		Results: make([]responses.ResultView, 0, len(results)),
	}
	for _, r := range results {
		resp.Results = append(resp.Results, responses.NewResultView(r))
	}

	summary, err := compare.NewSummary(results)
	if err != nil && !errors.Is(err, compare.ErrNoResults) {
		responses.AbortInternal(c, err)
		return
	}
	resp.Summary = summary

	c.JSON(http.StatusOK, resp)
}
