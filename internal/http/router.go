package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/Informasjonsforvaltning/fdk-organization-bff/internal/http/handlers"
	httpMW "github.com/Informasjonsforvaltning/fdk-organization-bff/internal/http/middleware"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	StatusHandler   *httpH.StatusHandler
	CatalogHandler  *httpH.CatalogHandler
	ReportHandler   *httpH.ReportHandler
	CategoryHandler *httpH.CategoryHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("fdk-organization-bff"))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	if cfg.StatusHandler != nil {
		r.GET("/ping", cfg.StatusHandler.Ping)
		r.GET("/ready", cfg.StatusHandler.Ready)
	}

	if cfg.CatalogHandler != nil {
		r.GET("/organizationcatalogs", cfg.CatalogHandler.GetOrganizationCatalogs)
		r.GET("/organizationcatalogs/:id", cfg.CatalogHandler.GetOrganizationCatalog)
	}

	if cfg.ReportHandler != nil {
		report := r.Group("/report")
		{
			report.GET("/datasets", cfg.ReportHandler.Datasets)
			report.GET("/dataservices", cfg.ReportHandler.DataServices)
			report.GET("/concepts", cfg.ReportHandler.Concepts)
			report.GET("/informationmodels", cfg.ReportHandler.InformationModels)
		}
	}

	if cfg.CategoryHandler != nil {
		categories := r.Group("/categories")
		{
			categories.GET("/state", cfg.CategoryHandler.State)
			categories.GET("/municipality", cfg.CategoryHandler.Municipality)
		}
	}

	return r
}
