package mappers

import (
	"sort"
	"strings"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/orgreg"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/reference"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/model"
)

// OrgCounts carries the merged per-organization counts for the four
// entity types; unset counts are zero.
type OrgCounts struct {
	Datasets          map[string]int
	Dataservices      map[string]int
	Concepts          map[string]int
	InformationModels map[string]int
}

// MapOrgSummaries builds a summary for every organization in the
// population, merging in counts by organization id. Output is ordered by
// organization id.
func MapOrgSummaries(population map[string]orgreg.Organization, counts OrgCounts) []model.OrganizationCatalogSummary {
	summaries := make([]model.OrganizationCatalogSummary, 0, len(population))
	for id, org := range population {
		summaries = append(summaries, model.OrganizationCatalogSummary{
			ID:                    id,
			Name:                  org.Name,
			PrefLabel:             org.PrefLabel,
			OrgPath:               org.OrgPath,
			DatasetCount:          counts.Datasets[id],
			DataserviceCount:      counts.Dataservices[id],
			ConceptCount:          counts.Concepts[id],
			InformationModelCount: counts.InformationModels[id],
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
	return summaries
}

// RemoveEmptySummaries drops summaries with zero content of every type.
func RemoveEmptySummaries(summaries []model.OrganizationCatalogSummary) []model.OrganizationCatalogSummary {
	kept := make([]model.OrganizationCatalogSummary, 0, len(summaries))
	for _, s := range summaries {
		if !s.HasNoContent() {
			kept = append(kept, s)
		}
	}
	return kept
}

type categoryBuilder struct {
	order []string
	nodes map[string]*model.CategoryNode
}

func newCategoryBuilder() *categoryBuilder {
	return &categoryBuilder{nodes: map[string]*model.CategoryNode{}}
}

func (b *categoryBuilder) add(category model.Category, summary model.OrganizationCatalogSummary) {
	node, ok := b.nodes[category.ID]
	if !ok {
		node = &model.CategoryNode{Category: category}
		b.nodes[category.ID] = node
		b.order = append(b.order, category.ID)
	}
	node.Organizations = append(node.Organizations, summary)
}

func (b *categoryBuilder) list() model.CategoryList {
	nodes := make([]model.CategoryNode, 0, len(b.order))
	for _, id := range b.order {
		nodes = append(nodes, *b.nodes[id])
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Category.ID < nodes[j].Category.ID
	})
	return model.CategoryList{Categories: nodes}
}

// parentOrgCategory derives the grouping key from a summary's org-path:
// the segment immediately preceding the summary's own id segment. Paths
// not ending in the summary id fall back to their literal last segment.
func parentOrgCategory(summary model.OrganizationCatalogSummary) (string, bool) {
	parts := strings.Split(strings.Trim(summary.OrgPath, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		return "", false
	}
	if len(parts) >= 2 && parts[len(parts)-1] == summary.ID {
		return parts[len(parts)-2], true
	}
	return parts[len(parts)-1], true
}

// CategoriseByParentOrg groups summaries under their parent organization.
// Category labels are resolved from the population when the parent itself
// is a known organization.
func CategoriseByParentOrg(summaries []model.OrganizationCatalogSummary, population map[string]orgreg.Organization) model.CategoryList {
	b := newCategoryBuilder()
	for _, summary := range summaries {
		id, ok := parentOrgCategory(summary)
		if !ok {
			continue
		}
		category := model.Category{ID: id}
		if parent, found := population[id]; found {
			category.Name = parent.Name
		}
		b.add(category, summary)
	}
	return b.list()
}

// MunicipalityData carries the reference tables the municipality
// categorizer joins against.
type MunicipalityData struct {
	Fylker   []reference.FylkeOrganisasjon
	Kommuner []reference.KommuneOrganisasjon
}

// CategoriseByMunicipality groups county and municipality organizations
// under their county. Municipalities resolve to a county through the first
// two digits of their municipality number; organizations absent from both
// reference tables are omitted.
func CategoriseByMunicipality(summaries []model.OrganizationCatalogSummary, data MunicipalityData) model.CategoryList {
	fylkeByNumber := map[string]reference.FylkeOrganisasjon{}
	fylkeByOrg := map[string]reference.FylkeOrganisasjon{}
	for _, f := range data.Fylker {
		fylkeByNumber[f.Fylkesnummer] = f
		fylkeByOrg[f.Organisasjonsnummer] = f
	}
	kommuneByOrg := map[string]reference.KommuneOrganisasjon{}
	for _, k := range data.Kommuner {
		kommuneByOrg[k.Organisasjonsnummer] = k
	}

	b := newCategoryBuilder()
	for _, summary := range summaries {
		fylke, ok := fylkeByOrg[summary.ID]
		if !ok {
			kommune, found := kommuneByOrg[summary.ID]
			if !found || len(kommune.Kommunenummer) < 2 {
				continue
			}
			fylke, ok = fylkeByNumber[kommune.Kommunenummer[:2]]
			if !ok {
				continue
			}
		}
		b.add(model.Category{ID: fylke.Organisasjonsnummer, Name: fylke.Fylkesnavn}, summary)
	}
	return b.list()
}
