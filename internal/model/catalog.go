package model

// Filter selects which view of the catalog data a request wants.
type Filter string

const (
	FilterNone    Filter = "none"
	FilterNAP     Filter = "transportportal"
	FilterInvalid Filter = "invalid"
)

// ParseFilter maps the raw `filter` query parameter to a Filter. An absent
// parameter means no filtering; anything other than the known values is
// rejected by the handlers with a 400.
func ParseFilter(param string) Filter {
	switch param {
	case "":
		return FilterNone
	case string(FilterNAP):
		return FilterNAP
	default:
		return FilterInvalid
	}
}

// Organization is the merged view of an organization from the organization
// catalog and Enhetsregisteret. Nil pointer fields serialize as JSON null,
// matching the upstream BFF contract.
type Organization struct {
	OrganizationID    string            `json:"organizationId"`
	Name              string            `json:"name"`
	PrefLabel         map[string]string `json:"prefLabel"`
	OrgPath           string            `json:"orgPath"`
	OrgType           *string           `json:"orgType"`
	SectorCode        *string           `json:"sectorCode"`
	IndustryCode      *string           `json:"industryCode"`
	Homepage          *string           `json:"homepage"`
	NumberOfEmployees *int              `json:"numberOfEmployees"`
	Icon              string            `json:"icon"`
}

// QualityScore is the aggregated metadata-quality result for a catalog.
// Score is the summed numerator, Percentage the rounded ratio against the
// summed denominator.
type QualityScore struct {
	Score      int `json:"score"`
	Percentage int `json:"percentage"`
}

type OrganizationDatasets struct {
	TotalCount         int           `json:"totalCount"`
	NewCount           int           `json:"newCount"`
	AuthoritativeCount int           `json:"authoritativeCount"`
	OpenCount          int           `json:"openCount"`
	Quality            *QualityScore `json:"quality"`
}

type OrganizationDataservices struct {
	TotalCount int `json:"totalCount"`
	NewCount   int `json:"newCount"`
}

type OrganizationConcepts struct {
	TotalCount int `json:"totalCount"`
	NewCount   int `json:"newCount"`
}

type OrganizationInformationModels struct {
	TotalCount int `json:"totalCount"`
	NewCount   int `json:"newCount"`
}

// OrganizationCatalog is the full per-organization response. Organization is
// nil when the organization is unknown to both registries; the catalog as a
// whole only exists when the organization has at least one dataset.
type OrganizationCatalog struct {
	Organization      *Organization                 `json:"organization"`
	Datasets          OrganizationDatasets          `json:"datasets"`
	Dataservices      OrganizationDataservices      `json:"dataservices"`
	Concepts          OrganizationConcepts          `json:"concepts"`
	InformationModels OrganizationInformationModels `json:"informationmodels"`
}

// OrganizationCatalogSummary is the lightweight list-view entry.
type OrganizationCatalogSummary struct {
	ID                    string            `json:"id"`
	Name                  string            `json:"name"`
	PrefLabel             map[string]string `json:"prefLabel"`
	OrgPath               string            `json:"orgPath"`
	DatasetCount          int               `json:"datasetCount"`
	ConceptCount          int               `json:"conceptCount"`
	DataserviceCount      int               `json:"dataserviceCount"`
	InformationModelCount int               `json:"informationmodelCount"`
}

// HasNoContent reports whether every entity count is zero.
func (s OrganizationCatalogSummary) HasNoContent() bool {
	return s.DatasetCount == 0 &&
		s.ConceptCount == 0 &&
		s.DataserviceCount == 0 &&
		s.InformationModelCount == 0
}

type OrganizationCatalogList struct {
	Organizations []OrganizationCatalogSummary `json:"organizations"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type CategoryNode struct {
	Category      Category                     `json:"category"`
	Organizations []OrganizationCatalogSummary `json:"organizations"`
}

type CategoryList struct {
	Categories []CategoryNode `json:"categories"`
}
