package mappers

import (
	"sort"
	"strings"
	"time"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/model"
)

const nationalProvenanceURI = "http://data.brreg.no/datakatalog/provinens/nasjonal"

// ThemeProfileTransport restricts dataset reports to transport-portal datasets.
const ThemeProfileTransport = "transport"

// keyCounter counts occurrences per key, emitting entries in first-seen order.
type keyCounter struct {
	order  []string
	counts map[string]int
}

func newKeyCounter() *keyCounter {
	return &keyCounter{counts: map[string]int{}}
}

func (k *keyCounter) Add(key string) {
	if _, ok := k.counts[key]; !ok {
		k.order = append(k.order, key)
	}
	k.counts[key]++
}

func (k *keyCounter) List() []model.KeyCount {
	out := make([]model.KeyCount, 0, len(k.order))
	for _, key := range k.order {
		out = append(out, model.KeyCount{Key: key, Count: k.counts[key]})
	}
	return out
}

// SortedList emits entries by descending count, ties broken by key.
func (k *keyCounter) SortedList() []model.KeyCount {
	out := k.List()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func skipOrgPath(filter, path string) bool {
	return filter != "" && !strings.Contains(path, filter)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// BuildDatasetsReport reduces joined dataset metrics into the flat
// statistical report. A transport theme profile is checked before the
// org-path filter; the filter matches as a substring of the record's path.
func BuildDatasetsReport(metrics []*DatasetMetrics, orgPath, themeProfile string, now time.Time) model.DatasetsReport {
	cutoff := ReportNewCutoff(now)
	orgs := map[string]bool{}
	orgPaths := newKeyCounter()
	themes := newKeyCounter()
	formats := newKeyCounter()
	accessRights := newKeyCounter()
	report := model.DatasetsReport{}

	for _, m := range metrics {
		if themeProfile == ThemeProfileTransport && m.Transportportal != "true" {
			continue
		}
		if skipOrgPath(orgPath, m.OrgPath) {
			continue
		}
		report.TotalObjects++
		if IssuedAfter(m.FirstHarvested, cutoff) {
			report.NewLastWeek++
		}
		if m.IsOpenData == "true" {
			report.Opendata++
		}
		if m.Provenance == nationalProvenanceURI {
			report.NationalComponent++
		}
		if m.OrgID != "" {
			orgs[m.OrgID] = true
		}
		for _, prefix := range SplitOrgPath(orDefault(m.OrgPath, missingOrgPath)) {
			orgPaths.Add(prefix)
		}
		for _, theme := range m.Themes.Values() {
			themes.Add(theme)
		}
		for _, format := range m.Formats.Values() {
			formats.Add(format)
		}
		accessRights.Add(orDefault(m.AccessRights, missingAccessRights))
	}

	report.OrganizationCount = len(orgs)
	report.OrgPaths = orgPaths.List()
	report.AllThemes = themes.List()
	report.Formats = formats.List()
	report.AccessRights = accessRights.List()
	return report
}

func BuildDataServiceReport(metrics []*DataServiceMetrics, orgPath string, now time.Time) model.DataServiceReport {
	cutoff := ReportNewCutoff(now)
	orgs := map[string]bool{}
	orgPaths := newKeyCounter()
	formats := newKeyCounter()
	report := model.DataServiceReport{}

	for _, m := range metrics {
		if skipOrgPath(orgPath, m.OrgPath) {
			continue
		}
		report.TotalObjects++
		if IssuedAfter(m.FirstHarvested, cutoff) {
			report.NewLastWeek++
		}
		if m.OrgID != "" {
			orgs[m.OrgID] = true
		}
		for _, prefix := range SplitOrgPath(orDefault(m.OrgPath, missingOrgPath)) {
			orgPaths.Add(prefix)
		}
		for _, format := range m.Formats.Values() {
			formats.Add(format)
		}
	}

	report.OrganizationCount = len(orgs)
	report.OrgPaths = orgPaths.List()
	report.Formats = formats.List()
	return report
}

func BuildConceptReport(metrics []*ConceptMetrics, orgPath string, now time.Time) model.ConceptReport {
	cutoff := ReportNewCutoff(now)
	orgs := map[string]bool{}
	orgPaths := newKeyCounter()
	mostInUse := newKeyCounter()
	report := model.ConceptReport{}

	for _, m := range metrics {
		if skipOrgPath(orgPath, m.OrgPath) {
			continue
		}
		report.TotalObjects++
		if IssuedAfter(m.FirstHarvested, cutoff) {
			report.NewLastWeek++
		}
		if m.OrgID != "" {
			orgs[m.OrgID] = true
		}
		for _, prefix := range SplitOrgPath(orDefault(m.OrgPath, missingOrgPath)) {
			orgPaths.Add(prefix)
		}
		for range m.Referers.Values() {
			mostInUse.Add(m.URI)
		}
	}

	report.OrganizationCount = len(orgs)
	report.OrgPaths = orgPaths.List()
	report.MostInUse = mostInUse.SortedList()
	if len(report.MostInUse) > 25 {
		report.MostInUse = report.MostInUse[:25]
	}
	return report
}

func BuildInformationModelReport(metrics []*InformationModelMetrics, orgPath string, now time.Time) model.InformationModelReport {
	cutoff := ReportNewCutoff(now)
	orgs := map[string]bool{}
	orgPaths := newKeyCounter()
	report := model.InformationModelReport{}

	for _, m := range metrics {
		if skipOrgPath(orgPath, m.OrgPath) {
			continue
		}
		report.TotalObjects++
		if IssuedAfter(m.FirstHarvested, cutoff) {
			report.NewLastWeek++
		}
		if m.OrgID != "" {
			orgs[m.OrgID] = true
		}
		for _, prefix := range SplitOrgPath(orDefault(m.OrgPath, missingOrgPath)) {
			orgPaths.Add(prefix)
		}
	}

	report.OrganizationCount = len(orgs)
	report.OrgPaths = orgPaths.List()
	return report
}
