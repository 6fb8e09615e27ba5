package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/arenalabs/model-arena/internal/config"
	"github.com/arenalabs/model-arena/internal/interfaces/httpserver/handlers"
	middleware "github.com/arenalabs/model-arena/internal/interfaces/httpserver/middlewares"
)

// HTTPServer wires the gin engine, middleware chain, and route handlers.
type HTTPServer struct {
	engine  *gin.Engine
	analyze *handlers.AnalyzeHandler
	compare *handlers.CompareHandler
	catalog *handlers.CatalogHandler
	reason  *handlers.ReasonHandler
	config  *config.Config
}

func NewHTTPServer(
	analyze *handlers.AnalyzeHandler,
	compare *handlers.CompareHandler,
	catalog *handlers.CatalogHandler,
	reason *handlers.ReasonHandler,
	cfg *config.Config,
	logger zerolog.Logger,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)
	server := &HTTPServer{
		engine:  gin.New(),
		analyze: analyze,
		compare: compare,
		catalog: catalog,
		reason:  reason,
		config:  cfg,
	}
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.TracingMiddleware(cfg.ServiceName))
	server.engine.Use(middleware.LoggingMiddleware(logger))
	server.engine.Use(middleware.MetricsMiddleware())
	server.engine.Use(middleware.CORSMiddleware())

	server.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	server.engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	server.registerRoutes()
	return server
}

func (s *HTTPServer) registerRoutes() {
	v1 := s.engine.Group("/v1")
	v1.GET("/status", s.catalog.Status)
	v1.GET("/models", s.catalog.Models)
	v1.POST("/analyze", s.analyze.AnalyzeURL)
	v1.POST("/analyze/upload", s.analyze.AnalyzeUpload)
	v1.POST("/compare", s.compare.Compare)
	v1.POST("/reason", s.reason.Reason)
}

// Engine exposes the router for tests.
func (s *HTTPServer) Engine() *gin.Engine {
	return s.engine
}

func (s *HTTPServer) Run() error {
	return s.engine.Run(fmt.Sprintf(":%d", s.config.HTTPPort))
}
