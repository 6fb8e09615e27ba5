package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/arenalabs/model-arena/internal/config"
	"github.com/arenalabs/model-arena/internal/domain/compare"
	"github.com/arenalabs/model-arena/internal/domain/model"
	"github.com/arenalabs/model-arena/internal/domain/vision"
	"github.com/arenalabs/model-arena/internal/infrastructure/images"
	"github.com/arenalabs/model-arena/internal/infrastructure/logger"
	"github.com/arenalabs/model-arena/internal/infrastructure/observability"
	"github.com/arenalabs/model-arena/internal/infrastructure/providers"
	"github.com/arenalabs/model-arena/internal/interfaces/httpserver"
	"github.com/arenalabs/model-arena/internal/interfaces/httpserver/handlers"
)

func init() {
	logger.GetLogger()
	config.Load()
}

func main() {
	ctx := context.Background()
	log := logger.GetLogger()

	cfg := config.GetGlobal()
	if cfg == nil {
		log.Fatal().Msg("config not loaded")
	}

	otelShutdown, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("initialize observability")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := otelShutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown telemetry")
			}
		}()
	}

	catalog, err := model.LoadCatalog(cfg.ModelCatalogFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load model catalog")
	}

	providerSet := providers.NewSet(cfg, catalog, log)
	if len(providerSet) == 0 {
		log.Fatal().Msg("no provider has an API key configured")
	}

	configured := make(map[model.ProviderKind]bool, len(providerSet))
	for _, kind := range providerSet.Kinds() {
		configured[kind] = true
	}
	registry := model.NewRegistry(catalog, configured)

	compareOrch := compare.NewOrchestrator(providerSet, registry, log, cfg.MaxConcurrent, cfg.CallTimeout)
	visionOrch := vision.NewOrchestrator(providerSet, registry, log)
	fetcher := images.NewFetcher(cfg, cfg.HTTPTimeout)

	server := httpserver.NewHTTPServer(
		handlers.NewAnalyzeHandler(visionOrch, fetcher, log),
		handlers.NewCompareHandler(compareOrch, registry, log),
		handlers.NewCatalogHandler(registry, providerSet, log),
		handlers.NewReasonHandler(providerSet, log),
		cfg,
		log,
	)

	var eg errgroup.Group
	eg.Go(func() error {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		return http.ListenAndServe(fmt.Sprintf(":%d", cfg.MetricsPort), mux)
	})
	eg.Go(func() error {
		log.Info().Int("port", cfg.HTTPPort).Msg("starting http server")
		return server.Run()
	})

	if err := eg.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
