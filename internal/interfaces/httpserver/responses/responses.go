package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arenalabs/model-arena/internal/domain/compare"
	"github.com/arenalabs/model-arena/internal/domain/model"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// AbortWithError writes the error payload and stops the handler chain.
func AbortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		RequestID: c.Writer.Header().Get("X-Request-Id"),
	})
}

// AbortInternal hides the underlying error behind a generic message.
func AbortInternal(c *gin.Context, err error) {
	_ = c.Error(err)
	AbortWithError(c, http.StatusInternalServerError, "internal server error")
}

// ModelBrief is the compact model listing used by the status endpoint.
type ModelBrief struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Priority int    `json:"priority"`
}

// StatusResponse reports catalog readiness per tier and provider.
type StatusResponse struct {
	VisionModelsAvailable   int             `json:"vision_models_available"`
	FallbackModelsAvailable int             `json:"fallback_models_available"`
	VisionModels            []ModelBrief    `json:"vision_models"`
	FallbackModels          []ModelBrief    `json:"fallback_models"`
	ProvidersConfigured     map[string]bool `json:"providers_configured"`
}

// CompareResponse carries the per-model results and their aggregate.
type CompareResponse struct {
	Query   string           `json:"query"`
	Results []ResultView     `json:"results"`
	Summary *compare.Summary `json:"summary,omitempty"`
}

// ResultView is the wire form of a comparison result.
type ResultView struct {
	Content      string  `json:"content"`
	ModelName    string  `json:"model_name"`
	Provider     string  `json:"provider"`
	ModelType    string  `json:"model_type"`
	ResponseTime float64 `json:"response_time"`
	TokensUsed   int     `json:"tokens_used"`
	Error        string  `json:"error,omitempty"`
}

// NewResultView flattens a domain result for the wire.
func NewResultView(r *model.Result) ResultView {
	return ResultView{
		Content:      r.Content,
		ModelName:    r.ModelName,
		Provider:     string(r.Provider),
		ModelType:    string(r.ModelType),
		ResponseTime: r.ElapsedSeconds(),
		TokensUsed:   r.TokenUsage.Total,
		Error:        r.ErrorText(),
	}
}

// ModelsResponse lists every catalog entry.
type ModelsResponse struct {
	Models []model.ModelInfo `json:"models"`
}
