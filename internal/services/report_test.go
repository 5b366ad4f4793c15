package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/pkg/logger"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/sparql"
)

func newTestReportService(store *fakeStore) *reportService {
	svc := NewReportService(logger.NewNop(), store).(*reportService)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestDatasetsReportJoinsStreams(t *testing.T) {
	general := sparql.QueryResult{Results: sparql.Results{Bindings: []sparql.Binding{
		valueRow(map[string]string{"dataset": "d1", "firstHarvested": "2024-01-14T00:00:00Z", "theme": "GOVE", "isOpenData": "true"}),
	}}}
	formats := sparql.QueryResult{Results: sparql.Results{Bindings: []sparql.Binding{
		valueRow(map[string]string{"dataset": "d1", "format": "CSV"}),
	}}}
	publishers := sparql.QueryResult{Results: sparql.Results{Bindings: []sparql.Binding{
		valueRow(map[string]string{"dataset": "d1", "orgId": "910244132", "orgPath": "/ANNET/910244132"}),
	}}}
	store := &fakeStore{results: []storeRoute{
		{substr: "?theme", result: general},
		{substr: "?mediaType", result: formats},
		{substr: "?orgPath", result: publishers},
	}}

	report, err := newTestReportService(store).DatasetsReport(context.Background(), "", "")
	if err != nil {
		t.Fatalf("DatasetsReport: %v", err)
	}
	if report.TotalObjects != 1 || report.NewLastWeek != 1 || report.Opendata != 1 {
		t.Fatalf("unexpected report %+v", report)
	}
	if report.OrganizationCount != 1 {
		t.Errorf("expected one organization, got %d", report.OrganizationCount)
	}
	if len(report.Formats) != 1 || report.Formats[0].Key != "CSV" {
		t.Errorf("unexpected formats %v", report.Formats)
	}
}

func TestDatasetsReportDegradesOnStoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	report, err := newTestReportService(store).DatasetsReport(context.Background(), "", "")
	if err != nil {
		t.Fatalf("expected empty report, got error %v", err)
	}
	if report.TotalObjects != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestConceptReport(t *testing.T) {
	concepts := sparql.QueryResult{Results: sparql.Results{Bindings: []sparql.Binding{
		valueRow(map[string]string{"concept": "c1", "referer": "r1", "orgId": "910244132", "orgPath": "/ANNET/910244132"}),
		valueRow(map[string]string{"concept": "c1", "referer": "r2"}),
	}}}
	store := &fakeStore{results: []storeRoute{{substr: "?concept", result: concepts}}}

	report, err := newTestReportService(store).ConceptReport(context.Background(), "")
	if err != nil {
		t.Fatalf("ConceptReport: %v", err)
	}
	if report.TotalObjects != 1 {
		t.Fatalf("unexpected totals %+v", report)
	}
	if len(report.MostInUse) != 1 || report.MostInUse[0].Count != 2 {
		t.Fatalf("unexpected mostInUse %v", report.MostInUse)
	}
}
