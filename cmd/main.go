package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/brreg"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/orgreg"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/quality"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/reference"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/sparqlsvc"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/config"
	bffHTTP "github.com/Informasjonsforvaltning/fdk-organization-bff/internal/http"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/http/handlers"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/observability"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/pkg/logger"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/services"
)

func main() {
	// Env
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg := config.FromEnv()

	// Tracing
	ctx := context.Background()
	shutdownOTel := observability.InitOTel(ctx, log, observability.OtelConfig{})
	defer func() {
		if err := shutdownOTel(ctx); err != nil {
			log.Warn("OTel shutdown failed", "error", err)
		}
	}()

	// Upstream clients
	log.Info("Setting up upstream clients...")
	orgClient, err := orgreg.New(log, orgreg.Config{BaseURL: cfg.OrganizationCatalogURI, Timeout: cfg.UpstreamTimeout})
	if err != nil {
		log.Fatal("organization catalog client init failed", "error", err)
	}
	brregClient, err := brreg.New(log, brreg.Config{BaseURL: cfg.DataBrregURI, Timeout: cfg.UpstreamTimeout})
	if err != nil {
		log.Fatal("company registry client init failed", "error", err)
	}
	sparqlClient, err := sparqlsvc.New(log, sparqlsvc.Config{BaseURL: cfg.SparqlServiceURI, Timeout: cfg.UpstreamTimeout})
	if err != nil {
		log.Fatal("sparql client init failed", "error", err)
	}
	qualityClient, err := quality.New(log, quality.Config{BaseURL: cfg.MetadataQualityURI, Timeout: cfg.UpstreamTimeout})
	if err != nil {
		log.Fatal("metadata quality client init failed", "error", err)
	}
	referenceClient, err := reference.New(log, reference.Config{BaseURL: cfg.ReferenceDataURI, Timeout: cfg.UpstreamTimeout})
	if err != nil {
		log.Fatal("reference data client init failed", "error", err)
	}

	// Services
	log.Info("Setting up services...")
	catalogService := services.NewCatalogService(log, orgClient, brregClient, sparqlClient, qualityClient, referenceClient)
	reportService := services.NewReportService(log, sparqlClient)
	statusService := services.NewStatusService(log, orgClient, brregClient, sparqlClient, qualityClient, referenceClient)

	// HTTP
	server := bffHTTP.NewServer(bffHTTP.RouterConfig{
		Log:             log,
		StatusHandler:   handlers.NewStatusHandler(statusService),
		CatalogHandler:  handlers.NewCatalogHandler(catalogService),
		ReportHandler:   handlers.NewReportHandler(reportService),
		CategoryHandler: handlers.NewCategoryHandler(catalogService),
	})

	log.Info("Starting server", "addr", cfg.HTTPAddr)
	if err := server.Run(cfg.HTTPAddr); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}
