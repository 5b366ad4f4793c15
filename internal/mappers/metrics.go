package mappers

import "github.com/Informasjonsforvaltning/fdk-organization-bff/internal/sparql"

const (
	missingOrgPath      = "/MISSING"
	missingAccessRights = "MISSING"
)

// orderedSet is a string set preserving first-insertion order, so that
// bucketed report output stays deterministic for a given input order.
type orderedSet struct {
	order []string
	seen  map[string]bool
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]bool{}}
}

func (s *orderedSet) Add(value string) {
	if value == "" || s.seen[value] {
		return
	}
	s.seen[value] = true
	s.order = append(s.order, value)
}

func (s *orderedSet) Values() []string {
	return s.order
}

// DatasetMetrics is the joined per-dataset record fed to the report
// aggregator. Set-valued fields accumulate across streams; scalars are
// last-write-wins.
type DatasetMetrics struct {
	URI             string
	FirstHarvested  string
	AccessRights    string
	Provenance      string
	IsOpenData      string
	Transportportal string
	OrgID           string
	OrgPath         string
	Themes          *orderedSet
	Formats         *orderedSet
}

type DataServiceMetrics struct {
	URI            string
	FirstHarvested string
	OrgID          string
	OrgPath        string
	Formats        *orderedSet
}

type ConceptMetrics struct {
	URI            string
	FirstHarvested string
	OrgID          string
	OrgPath        string
	Referers       *orderedSet
}

type InformationModelMetrics struct {
	URI            string
	FirstHarvested string
	OrgID          string
	OrgPath        string
}

// datasetMetricsBuilder joins the three dataset binding streams by URI.
// An entity seen in any stream appears in the output, with defaults for
// the fields the other streams never contributed.
type datasetMetricsBuilder struct {
	order []string
	byURI map[string]*DatasetMetrics
}

func newDatasetMetricsBuilder() *datasetMetricsBuilder {
	return &datasetMetricsBuilder{byURI: map[string]*DatasetMetrics{}}
}

func (b *datasetMetricsBuilder) record(uri string) *DatasetMetrics {
	m, ok := b.byURI[uri]
	if !ok {
		m = &DatasetMetrics{
			URI:     uri,
			OrgPath: missingOrgPath,
			Themes:  newOrderedSet(),
			Formats: newOrderedSet(),
		}
		b.byURI[uri] = m
		b.order = append(b.order, uri)
	}
	return m
}

func (b *datasetMetricsBuilder) list() []*DatasetMetrics {
	out := make([]*DatasetMetrics, 0, len(b.order))
	for _, uri := range b.order {
		out = append(out, b.byURI[uri])
	}
	return out
}

// GatherDatasetMetrics joins the general, format and publisher streams of
// the dataset report queries into one record per dataset URI.
func GatherDatasetMetrics(general, formats, publishers sparql.QueryResult) []*DatasetMetrics {
	b := newDatasetMetricsBuilder()
	for _, row := range general.Bindings() {
		uri := row.Str("dataset")
		if uri == "" {
			continue
		}
		m := b.record(uri)
		if v := row.Str("firstHarvested"); v != "" {
			m.FirstHarvested = v
		}
		if v := row.Str("accessRights"); v != "" {
			m.AccessRights = v
		}
		if v := row.Str("provenance"); v != "" {
			m.Provenance = v
		}
		if v := row.Str("isOpenData"); v != "" {
			m.IsOpenData = v
		}
		if v := row.Str("transportportal"); v != "" {
			m.Transportportal = v
		}
		m.Themes.Add(row.Str("theme"))
	}
	for _, row := range formats.Bindings() {
		uri := row.Str("dataset")
		if uri == "" {
			continue
		}
		m := b.record(uri)
		m.Formats.Add(row.Str("mediaType"))
		m.Formats.Add(row.Str("format"))
	}
	for _, row := range publishers.Bindings() {
		uri := row.Str("dataset")
		if uri == "" {
			continue
		}
		m := b.record(uri)
		if v := CanonicalOrgNumber(row.Str("orgId")); v != "" {
			m.OrgID = v
		}
		if v := row.Str("orgPath"); v != "" {
			m.OrgPath = v
		}
	}
	return b.list()
}

// GatherDataServiceMetrics reduces the single data-service report stream,
// deduplicating by service URI.
func GatherDataServiceMetrics(result sparql.QueryResult) []*DataServiceMetrics {
	order := []string{}
	byURI := map[string]*DataServiceMetrics{}
	for _, row := range result.Bindings() {
		uri := row.Str("service")
		if uri == "" {
			continue
		}
		m, ok := byURI[uri]
		if !ok {
			m = &DataServiceMetrics{URI: uri, OrgPath: missingOrgPath, Formats: newOrderedSet()}
			byURI[uri] = m
			order = append(order, uri)
		}
		if v := row.Str("firstHarvested"); v != "" {
			m.FirstHarvested = v
		}
		if v := CanonicalOrgNumber(row.Str("orgId")); v != "" {
			m.OrgID = v
		}
		if v := row.Str("orgPath"); v != "" {
			m.OrgPath = v
		}
		m.Formats.Add(row.Str("mediaType"))
		m.Formats.Add(row.Str("format"))
	}
	out := make([]*DataServiceMetrics, 0, len(order))
	for _, uri := range order {
		out = append(out, byURI[uri])
	}
	return out
}

func GatherConceptMetrics(result sparql.QueryResult) []*ConceptMetrics {
	order := []string{}
	byURI := map[string]*ConceptMetrics{}
	for _, row := range result.Bindings() {
		uri := row.Str("concept")
		if uri == "" {
			continue
		}
		m, ok := byURI[uri]
		if !ok {
			m = &ConceptMetrics{URI: uri, OrgPath: missingOrgPath, Referers: newOrderedSet()}
			byURI[uri] = m
			order = append(order, uri)
		}
		if v := row.Str("firstHarvested"); v != "" {
			m.FirstHarvested = v
		}
		if v := CanonicalOrgNumber(row.Str("orgId")); v != "" {
			m.OrgID = v
		}
		if v := row.Str("orgPath"); v != "" {
			m.OrgPath = v
		}
		m.Referers.Add(row.Str("referer"))
	}
	out := make([]*ConceptMetrics, 0, len(order))
	for _, uri := range order {
		out = append(out, byURI[uri])
	}
	return out
}

func GatherInformationModelMetrics(result sparql.QueryResult) []*InformationModelMetrics {
	order := []string{}
	byURI := map[string]*InformationModelMetrics{}
	for _, row := range result.Bindings() {
		uri := row.Str("model")
		if uri == "" {
			continue
		}
		m, ok := byURI[uri]
		if !ok {
			m = &InformationModelMetrics{URI: uri, OrgPath: missingOrgPath}
			byURI[uri] = m
			order = append(order, uri)
		}
		if v := row.Str("firstHarvested"); v != "" {
			m.FirstHarvested = v
		}
		if v := CanonicalOrgNumber(row.Str("orgId")); v != "" {
			m.OrgID = v
		}
		if v := row.Str("orgPath"); v != "" {
			m.OrgPath = v
		}
	}
	out := make([]*InformationModelMetrics, 0, len(order))
	for _, uri := range order {
		out = append(out, byURI[uri])
	}
	return out
}
