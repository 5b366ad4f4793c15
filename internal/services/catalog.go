package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/brreg"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/orgreg"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/quality"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/reference"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/sparqlsvc"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/mappers"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/model"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/pkg/logger"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/sparql"
)

const (
	orgPathState        = "/STAT"
	orgPathMunicipality = "/KOMMUNE"
	orgPathCounty       = "/FYLKE"
)

type CatalogService interface {
	// GetOrganizationCatalog builds the full catalog for one organization.
	// Returns (nil, nil) when the organization has no datasets under the
	// given filter, even if the organization itself exists.
	GetOrganizationCatalog(ctx context.Context, id string, filter model.Filter) (*model.OrganizationCatalog, error)
	GetOrganizationCatalogs(ctx context.Context, filter model.Filter, includeEmpty bool) (model.OrganizationCatalogList, error)
	GetStateCategories(ctx context.Context, filter model.Filter, includeEmpty bool) (model.CategoryList, error)
	GetMunicipalityCategories(ctx context.Context, filter model.Filter, includeEmpty bool) (model.CategoryList, error)
}

type catalogService struct {
	log       *logger.Logger
	orgs      orgreg.Client
	companies brreg.Client
	store     sparqlsvc.Client
	scores    quality.Client
	reference reference.Client
	now       func() time.Time
}

func NewCatalogService(
	log *logger.Logger,
	orgs orgreg.Client,
	companies brreg.Client,
	store sparqlsvc.Client,
	scores quality.Client,
	ref reference.Client,
) CatalogService {
	return &catalogService{
		log:       log.With("service", "CatalogService"),
		orgs:      orgs,
		companies: companies,
		store:     store,
		scores:    scores,
		reference: ref,
		now:       time.Now,
	}
}

func (s *catalogService) GetOrganizationCatalog(ctx context.Context, id string, filter model.Filter) (*model.OrganizationCatalog, error) {
	datasetQuery := sparql.OrgDatasetsQuery(id)
	if filter == model.FilterNAP {
		datasetQuery = sparql.NapOrgDatasetsQuery(id)
	}

	var (
		org          *orgreg.Organization
		unit         *brreg.Unit
		datasets     sparql.QueryResult
		dataservices sparql.QueryResult
		concepts     sparql.QueryResult
		infomodels   sparql.QueryResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := s.orgs.Organization(gctx, id)
		if err != nil {
			s.log.Warn("organization registry unavailable", "id", id, "error", err)
			return nil
		}
		org = fetched
		return nil
	})
	g.Go(func() error {
		fetched, err := s.companies.Unit(gctx, id)
		if err != nil {
			s.log.Warn("company registry unavailable", "id", id, "error", err)
			return nil
		}
		unit = fetched
		return nil
	})
	g.Go(func() error {
		result, err := s.store.Select(gctx, datasetQuery)
		if err != nil {
			return err
		}
		datasets = result
		return nil
	})
	if filter != model.FilterNAP {
		g.Go(func() error {
			result, err := s.store.Select(gctx, sparql.OrgDataservicesQuery(id))
			if err != nil {
				return err
			}
			dataservices = result
			return nil
		})
		g.Go(func() error {
			result, err := s.store.Select(gctx, sparql.OrgConceptsQuery(id))
			if err != nil {
				return err
			}
			concepts = result
			return nil
		})
		g.Go(func() error {
			result, err := s.store.Select(gctx, sparql.OrgInformationModelsQuery(id))
			if err != nil {
				return err
			}
			infomodels = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Having a catalog means having at least one dataset.
	if len(datasets.Bindings()) == 0 {
		return nil, nil
	}

	score := s.qualityScore(ctx, mappers.DatasetURIs(datasets))
	now := s.now()
	return &model.OrganizationCatalog{
		Organization:      mappers.MapOrganization(org, unit),
		Datasets:          mappers.MapOrgDatasets(datasets, score, now),
		Dataservices:      mappers.MapOrgDataservices(dataservices, now),
		Concepts:          mappers.MapOrgConcepts(concepts, now),
		InformationModels: mappers.MapOrgInformationModels(infomodels, now),
	}, nil
}

// qualityScore runs after the dataset fan-in since it needs the URIs.
// Lookup failures degrade to a missing score.
func (s *catalogService) qualityScore(ctx context.Context, uris []string) *model.QualityScore {
	scores, err := s.scores.ScoresForDatasets(ctx, uris)
	if err != nil {
		s.log.Warn("metadata quality service unavailable", "error", err)
		return nil
	}
	return mappers.MapQualityScore(scores)
}

// fetchCounts runs the four per-publisher count queries. Under the
// transport filter only datasets are counted. A failing count query
// degrades to zero counts for its entity type.
func (s *catalogService) fetchCounts(ctx context.Context, filter model.Filter) mappers.OrgCounts {
	datasetQuery := sparql.DatasetsByPublisherQuery()
	if filter == model.FilterNAP {
		datasetQuery = sparql.NapDatasetsByPublisherQuery()
	}

	counts := mappers.OrgCounts{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		counts.Datasets = s.countMap(gctx, datasetQuery, "datasets")
		return nil
	})
	if filter != model.FilterNAP {
		g.Go(func() error {
			counts.Dataservices = s.countMap(gctx, sparql.DataservicesByPublisherQuery(), "dataservices")
			return nil
		})
		g.Go(func() error {
			counts.Concepts = s.countMap(gctx, sparql.ConceptsByPublisherQuery(), "concepts")
			return nil
		})
		g.Go(func() error {
			counts.InformationModels = s.countMap(gctx, sparql.InformationModelsByPublisherQuery(), "informationmodels")
			return nil
		})
	}
	_ = g.Wait()
	return counts
}

func (s *catalogService) countMap(ctx context.Context, query, entity string) map[string]int {
	result, err := s.store.Select(ctx, query)
	if err != nil {
		s.log.Warn("count query unavailable", "entity", entity, "error", err)
		return map[string]int{}
	}
	return mappers.CountsByOrg(mappers.CountListFromBindings(result))
}

// fetchPopulation merges the registry populations for the given org-path
// restrictions; an empty list fetches everything. Registry failure is
// load-bearing for every list view.
func (s *catalogService) fetchPopulation(ctx context.Context, orgPaths ...string) (map[string]orgreg.Organization, error) {
	if len(orgPaths) == 0 {
		return s.orgs.Organizations(ctx, "")
	}
	population := map[string]orgreg.Organization{}
	for _, path := range orgPaths {
		orgs, err := s.orgs.Organizations(ctx, path)
		if err != nil {
			return nil, err
		}
		for id, org := range orgs {
			population[id] = org
		}
	}
	return population, nil
}

func (s *catalogService) buildSummaries(ctx context.Context, filter model.Filter, includeEmpty bool, orgPaths ...string) ([]model.OrganizationCatalogSummary, map[string]orgreg.Organization, error) {
	var (
		population map[string]orgreg.Organization
		counts     mappers.OrgCounts
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := s.fetchPopulation(gctx, orgPaths...)
		if err != nil {
			return err
		}
		population = fetched
		return nil
	})
	g.Go(func() error {
		counts = s.fetchCounts(gctx, filter)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	summaries := mappers.MapOrgSummaries(population, counts)
	if !includeEmpty {
		summaries = mappers.RemoveEmptySummaries(summaries)
	}
	return summaries, population, nil
}

func (s *catalogService) GetOrganizationCatalogs(ctx context.Context, filter model.Filter, includeEmpty bool) (model.OrganizationCatalogList, error) {
	summaries, _, err := s.buildSummaries(ctx, filter, includeEmpty)
	if err != nil {
		return model.OrganizationCatalogList{}, err
	}
	return model.OrganizationCatalogList{Organizations: summaries}, nil
}

func (s *catalogService) GetStateCategories(ctx context.Context, filter model.Filter, includeEmpty bool) (model.CategoryList, error) {
	summaries, population, err := s.buildSummaries(ctx, filter, includeEmpty, orgPathState)
	if err != nil {
		return model.CategoryList{}, err
	}
	return mappers.CategoriseByParentOrg(summaries, population), nil
}

func (s *catalogService) GetMunicipalityCategories(ctx context.Context, filter model.Filter, includeEmpty bool) (model.CategoryList, error) {
	summaries, _, err := s.buildSummaries(ctx, filter, includeEmpty, orgPathMunicipality, orgPathCounty)
	if err != nil {
		return model.CategoryList{}, err
	}

	data := mappers.MunicipalityData{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fylker, err := s.reference.FylkeOrganizations(gctx)
		if err != nil {
			s.log.Warn("reference data unavailable", "table", "fylke", "error", err)
			return nil
		}
		data.Fylker = fylker
		return nil
	})
	g.Go(func() error {
		kommuner, err := s.reference.KommuneOrganizations(gctx)
		if err != nil {
			s.log.Warn("reference data unavailable", "table", "kommune", "error", err)
			return nil
		}
		data.Kommuner = kommuner
		return nil
	})
	_ = g.Wait()

	return mappers.CategoriseByMunicipality(summaries, data), nil
}
