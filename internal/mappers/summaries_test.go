package mappers

import (
	"testing"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/orgreg"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/reference"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/model"
)

func TestMapOrgSummariesDefaults(t *testing.T) {
	population := map[string]orgreg.Organization{
		"111222333": {OrganizationID: "111222333", Name: "Aktiv etat", OrgPath: "/STAT/872417842/111222333"},
		"999888777": {OrganizationID: "999888777", Name: "Tom etat", OrgPath: "/STAT/872417842/999888777"},
	}
	counts := OrgCounts{
		Datasets: map[string]int{"111222333": 5},
		Concepts: map[string]int{"111222333": 2},
	}

	summaries := MapOrgSummaries(population, counts)
	if len(summaries) != 2 {
		t.Fatalf("expected every organization summarised, got %d", len(summaries))
	}

	active := summaries[0]
	if active.ID != "111222333" || active.DatasetCount != 5 || active.ConceptCount != 2 {
		t.Errorf("unexpected summary %+v", active)
	}
	if active.DataserviceCount != 0 || active.InformationModelCount != 0 {
		t.Errorf("expected zero defaults, got %+v", active)
	}

	empty := summaries[1]
	if !empty.HasNoContent() {
		t.Errorf("expected empty summary for %q", empty.ID)
	}

	kept := RemoveEmptySummaries(summaries)
	if len(kept) != 1 || kept[0].ID != "111222333" {
		t.Fatalf("expected only the active organization, got %v", kept)
	}
}

func TestCategoriseByParentOrg(t *testing.T) {
	population := map[string]orgreg.Organization{
		"872417842": {OrganizationID: "872417842", Name: "Samferdselsdepartementet"},
	}
	summaries := []model.OrganizationCatalogSummary{
		{ID: "111222333", OrgPath: "/STAT/872417842/111222333", DatasetCount: 1},
		{ID: "444555666", OrgPath: "/STAT/872417842/444555666", DatasetCount: 1},
		{ID: "777888999", OrgPath: "/invalid/path", DatasetCount: 1},
	}

	categories := CategoriseByParentOrg(summaries, population)
	if len(categories.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories.Categories))
	}

	parent := categories.Categories[0]
	if parent.Category.ID != "872417842" || parent.Category.Name != "Samferdselsdepartementet" {
		t.Errorf("unexpected parent category %+v", parent.Category)
	}
	if len(parent.Organizations) != 2 {
		t.Errorf("expected 2 organizations under parent, got %d", len(parent.Organizations))
	}

	// Paths not ending in the organization id group under their literal
	// last segment.
	fallback := categories.Categories[1]
	if fallback.Category.ID != "path" || fallback.Category.Name != "" {
		t.Errorf("unexpected fallback category %+v", fallback.Category)
	}
}

func TestCategoriseByMunicipality(t *testing.T) {
	data := MunicipalityData{
		Fylker: []reference.FylkeOrganisasjon{
			{Fylkesnummer: "50", Organisasjonsnummer: "817920632", Fylkesnavn: "Trøndelag"},
		},
		Kommuner: []reference.KommuneOrganisasjon{
			{Kommunenummer: "5001", Organisasjonsnummer: "942110464", Kommunenavn: "Trondheim"},
		},
	}
	summaries := []model.OrganizationCatalogSummary{
		{ID: "942110464", OrgPath: "/KOMMUNE/942110464", DatasetCount: 3},
		{ID: "817920632", OrgPath: "/FYLKE/817920632", DatasetCount: 1},
		{ID: "000000000", OrgPath: "/KOMMUNE/000000000", DatasetCount: 1},
	}

	categories := CategoriseByMunicipality(summaries, data)
	if len(categories.Categories) != 1 {
		t.Fatalf("expected a single county category, got %d", len(categories.Categories))
	}
	county := categories.Categories[0]
	if county.Category.ID != "817920632" || county.Category.Name != "Trøndelag" {
		t.Errorf("unexpected category %+v", county.Category)
	}
	// Both the municipality and the county organization land under the
	// county; the unknown organization is omitted entirely.
	if len(county.Organizations) != 2 {
		t.Errorf("expected 2 organizations, got %d", len(county.Organizations))
	}
}
