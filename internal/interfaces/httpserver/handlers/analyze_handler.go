package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/arenalabs/model-arena/internal/domain/vision"
	"github.com/arenalabs/model-arena/internal/infrastructure/images"
	"github.com/arenalabs/model-arena/internal/interfaces/httpserver/requests"
	"github.com/arenalabs/model-arena/internal/interfaces/httpserver/responses"
)

// AnalyzeHandler answers image questions over HTTP, by URL or by upload.
type AnalyzeHandler struct {
	vision  *vision.Orchestrator
	fetcher *images.Fetcher
	logger  zerolog.Logger
}

func NewAnalyzeHandler(v *vision.Orchestrator, fetcher *images.Fetcher, logger zerolog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{vision: v, fetcher: fetcher, logger: logger}
}

// AnalyzeURL handles POST /v1/analyze. The image is downloaded from the
// request's URL, validated, and passed to the vision orchestrator.
func (h *AnalyzeHandler) AnalyzeURL(c *gin.Context) {
	var req requests.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.AbortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.fetcher.Fetch(c.Request.Context(), req.ImageURL)
	if err != nil {
		h.logger.Warn().Str("url", req.ImageURL).Err(err).Msg("image download failed")
		responses.AbortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	analysis := h.vision.Analyze(c.Request.Context(), req.Question, images.EncodeBase64(data))
	c.JSON(http.StatusOK, analysis)
}

// AnalyzeUpload handles POST /v1/analyze/upload with a multipart form
// carrying "file" and "question" fields.
func (h *AnalyzeHandler) AnalyzeUpload(c *gin.Context) {
	question := c.PostForm("question")
	if question == "" {
		responses.AbortWithError(c, http.StatusBadRequest, "question is required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		responses.AbortWithError(c, http.StatusBadRequest, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		responses.AbortInternal(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		responses.AbortInternal(c, err)
		return
	}

	contentType, err := h.fetcher.SniffType(data)
	if err != nil {
		responses.AbortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.fetcher.Validate(data, contentType); err != nil {
		responses.AbortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	analysis := h.vision.Analyze(c.Request.Context(), question, images.EncodeBase64(data))
	c.JSON(http.StatusOK, analysis)
}
