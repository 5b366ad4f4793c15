package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/sparqlsvc"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/mappers"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/model"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/pkg/logger"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/sparql"
)

type ReportService interface {
	DatasetsReport(ctx context.Context, orgPath, themeProfile string) (model.DatasetsReport, error)
	DataServiceReport(ctx context.Context, orgPath string) (model.DataServiceReport, error)
	ConceptReport(ctx context.Context, orgPath string) (model.ConceptReport, error)
	InformationModelReport(ctx context.Context, orgPath string) (model.InformationModelReport, error)
}

type reportService struct {
	log   *logger.Logger
	store sparqlsvc.Client
	now   func() time.Time
}

func NewReportService(log *logger.Logger, store sparqlsvc.Client) ReportService {
	return &reportService{
		log:   log.With("service", "ReportService"),
		store: store,
		now:   time.Now,
	}
}

// selectOrEmpty degrades a failing stream to its empty default so one
// unreachable query does not void the whole report.
func (s *reportService) selectOrEmpty(ctx context.Context, query, stream string) sparql.QueryResult {
	result, err := s.store.Select(ctx, query)
	if err != nil {
		s.log.Warn("report stream unavailable", "stream", stream, "error", err)
		return sparql.QueryResult{}
	}
	return result
}

func (s *reportService) DatasetsReport(ctx context.Context, orgPath, themeProfile string) (model.DatasetsReport, error) {
	var general, formats, publishers sparql.QueryResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		general = s.selectOrEmpty(gctx, sparql.DatasetsGeneralReportQuery(), "dataset-general")
		return nil
	})
	g.Go(func() error {
		formats = s.selectOrEmpty(gctx, sparql.DatasetsFormatReportQuery(), "dataset-format")
		return nil
	})
	g.Go(func() error {
		publishers = s.selectOrEmpty(gctx, sparql.DatasetsPublisherReportQuery(), "dataset-publisher")
		return nil
	})
	_ = g.Wait()

	metrics := mappers.GatherDatasetMetrics(general, formats, publishers)
	return mappers.BuildDatasetsReport(metrics, orgPath, themeProfile, s.now()), nil
}

func (s *reportService) DataServiceReport(ctx context.Context, orgPath string) (model.DataServiceReport, error) {
	result := s.selectOrEmpty(ctx, sparql.DataServicesReportQuery(), "dataservice")
	metrics := mappers.GatherDataServiceMetrics(result)
	return mappers.BuildDataServiceReport(metrics, orgPath, s.now()), nil
}

func (s *reportService) ConceptReport(ctx context.Context, orgPath string) (model.ConceptReport, error) {
	result := s.selectOrEmpty(ctx, sparql.ConceptsReportQuery(), "concept")
	metrics := mappers.GatherConceptMetrics(result)
	return mappers.BuildConceptReport(metrics, orgPath, s.now()), nil
}

func (s *reportService) InformationModelReport(ctx context.Context, orgPath string) (model.InformationModelReport, error) {
	result := s.selectOrEmpty(ctx, sparql.InformationModelsReportQuery(), "informationmodel")
	metrics := mappers.GatherInformationModelMetrics(result)
	return mappers.BuildInformationModelReport(metrics, orgPath, s.now()), nil
}
