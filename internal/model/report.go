package model

// KeyCount is one bucket of a grouped count. Bucket order is the order keys
// were first seen while scanning, so identical input yields identical output.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type DatasetsReport struct {
	TotalObjects      int        `json:"totalObjects"`
	NewLastWeek       int        `json:"newLastWeek"`
	OrganizationCount int        `json:"organizationCount"`
	Opendata          int        `json:"opendata"`
	NationalComponent int        `json:"nationalComponent"`
	OrgPaths          []KeyCount `json:"orgPaths"`
	AllThemes         []KeyCount `json:"allThemes"`
	Formats           []KeyCount `json:"formats"`
	AccessRights      []KeyCount `json:"accessRights"`
}

type DataServiceReport struct {
	TotalObjects      int        `json:"totalObjects"`
	NewLastWeek       int        `json:"newLastWeek"`
	OrganizationCount int        `json:"organizationCount"`
	OrgPaths          []KeyCount `json:"orgPaths"`
	Formats           []KeyCount `json:"formats"`
}

type ConceptReport struct {
	TotalObjects      int        `json:"totalObjects"`
	NewLastWeek       int        `json:"newLastWeek"`
	OrganizationCount int        `json:"organizationCount"`
	OrgPaths          []KeyCount `json:"orgPaths"`
	MostInUse         []KeyCount `json:"mostInUse"`
}

type InformationModelReport struct {
	TotalObjects      int        `json:"totalObjects"`
	NewLastWeek       int        `json:"newLastWeek"`
	OrganizationCount int        `json:"organizationCount"`
	OrgPaths          []KeyCount `json:"orgPaths"`
}
