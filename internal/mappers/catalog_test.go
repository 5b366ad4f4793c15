package mappers

import (
	"fmt"
	"testing"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/brreg"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/orgreg"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/quality"
)

func TestMapQualityScore(t *testing.T) {
	cases := []struct {
		name         string
		aggregations []quality.Aggregation
		wantNil      bool
		score        int
		percentage   int
	}{
		{
			name: "two_entries",
			aggregations: []quality.Aggregation{
				{Score: "80", MaxScore: "100"},
				{Score: "20", MaxScore: "100"},
			},
			score:      100,
			percentage: 50,
		},
		{
			name: "score_above_hundred",
			aggregations: []quality.Aggregation{
				{Score: "56", MaxScore: "100"},
				{Score: "56", MaxScore: "100"},
			},
			score:      112,
			percentage: 56,
		},
		{
			name: "non_numeric_score",
			aggregations: []quality.Aggregation{
				{Score: "80", MaxScore: "100"},
				{Score: "str", MaxScore: "100"},
			},
			wantNil: true,
		},
		{
			name: "missing_max_score",
			aggregations: []quality.Aggregation{
				{Score: "80"},
			},
			wantNil: true,
		},
		{
			name:         "empty_list",
			aggregations: []quality.Aggregation{},
			wantNil:      true,
		},
		{
			name: "zero_max_sum",
			aggregations: []quality.Aggregation{
				{Score: "0", MaxScore: "0"},
			},
			wantNil: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MapQualityScore(&quality.Scores{Aggregations: tc.aggregations})
			if tc.wantNil {
				if got != nil {
					t.Fatalf("expected nil score, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a score, got nil")
			}
			if got.Score != tc.score || got.Percentage != tc.percentage {
				t.Fatalf("got {%d %d}, want {%d %d}", got.Score, got.Percentage, tc.score, tc.percentage)
			}
		})
	}

	if MapQualityScore(nil) != nil {
		t.Error("expected nil score for nil response")
	}
}

func TestMapOrganization(t *testing.T) {
	if MapOrganization(nil, nil) != nil {
		t.Fatal("expected nil details when both sources are empty")
	}
	if MapOrganization(&orgreg.Organization{}, &brreg.Unit{}) != nil {
		t.Fatal("expected nil details for empty records")
	}

	employees := 100
	details := MapOrganization(
		&orgreg.Organization{
			OrganizationID: "910244132",
			Name:           "RAMSUND OG ROGNAN REVISJON",
			PrefLabel:      map[string]string{"nb": "Ramsund og Rognan revisjon"},
			OrgPath:        "/ANNET/910244132",
		},
		&brreg.Unit{
			Organisasjonsnummer:      "910244132",
			Navn:                     "RAMSUND OG ROGNAN REVISJON",
			Organisasjonsform:        &brreg.Code{Kode: "ADOS", Beskrivelse: "Administrativ enhet"},
			Naeringskode1:            &brreg.Code{Kode: "84.110", Beskrivelse: "Generell offentlig administrasjon"},
			InstitusjonellSektorkode: &brreg.Code{Kode: "6100", Beskrivelse: "Statsforvaltningen"},
			Hjemmeside:               "ramsund.no",
			AntallAnsatte:            brreg.EmployeeCount{Value: &employees},
		},
	)
	if details == nil {
		t.Fatal("expected details")
	}
	if details.OrganizationID != "910244132" || details.OrgPath != "/ANNET/910244132" {
		t.Errorf("unexpected identity %+v", details)
	}
	if details.Icon != "https://orglogo.digdir.no/api/logo/org/910244132" {
		t.Errorf("unexpected icon %q", details.Icon)
	}
	if details.OrgType == nil || *details.OrgType != "Administrativ enhet" {
		t.Errorf("unexpected orgType %v", details.OrgType)
	}
	if details.SectorCode == nil || *details.SectorCode != "6100 Statsforvaltningen" {
		t.Errorf("unexpected sectorCode %v", details.SectorCode)
	}
	if details.IndustryCode == nil || *details.IndustryCode != "84.110 Generell offentlig administrasjon" {
		t.Errorf("unexpected industryCode %v", details.IndustryCode)
	}
	if details.NumberOfEmployees == nil || *details.NumberOfEmployees != 100 {
		t.Errorf("unexpected numberOfEmployees %v", details.NumberOfEmployees)
	}
}

func TestMapOrganizationCompanyOnly(t *testing.T) {
	details := MapOrganization(nil, &brreg.Unit{Organisasjonsnummer: "910244132", Navn: "RAMSUND"})
	if details == nil {
		t.Fatal("expected details from company record alone")
	}
	if details.OrganizationID != "910244132" || details.Name != "RAMSUND" {
		t.Errorf("unexpected details %+v", details)
	}
}

func TestMapOrgDatasets(t *testing.T) {
	result := resultOf(
		row(map[string]string{"dataset": "a", "issued": "2024-01-14T00:00:00Z", "isAuthoritative": "true", "isOpenData": "true"}),
		row(map[string]string{"dataset": "b", "issued": "2023-06-01T00:00:00Z", "isAuthoritative": "true"}),
		row(map[string]string{"dataset": "c"}),
	)
	score := MapQualityScore(&quality.Scores{Aggregations: []quality.Aggregation{{Score: "33", MaxScore: "100"}}})
	datasets := MapOrgDatasets(result, score, fixedNow)

	if datasets.TotalCount != 3 || datasets.NewCount != 1 || datasets.AuthoritativeCount != 2 || datasets.OpenCount != 1 {
		t.Fatalf("unexpected counts %+v", datasets)
	}
	if datasets.Quality == nil || datasets.Quality.Percentage != 33 {
		t.Fatalf("unexpected quality %+v", datasets.Quality)
	}
}

func TestDatasetURIs(t *testing.T) {
	result := resultOf(
		row(map[string]string{"dataset": "a"}),
		row(map[string]string{"dataset": "b"}),
		row(map[string]string{"dataset": "a"}),
		row(map[string]string{}),
	)
	uris := DatasetURIs(result)
	if fmt.Sprintf("%v", uris) != "[a b]" {
		t.Fatalf("unexpected uris %v", uris)
	}
}
