package mappers

import (
	"math"
	"strconv"
	"time"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/brreg"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/orgreg"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/quality"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/model"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/sparql"
)

const iconBaseURL = "https://orglogo.digdir.no/api/logo/org/"

func codeLabel(code *brreg.Code) *string {
	if code == nil || (code.Kode == "" && code.Beskrivelse == "") {
		return nil
	}
	label := code.Kode + " " + code.Beskrivelse
	return &label
}

// MapOrganization merges a registry record and a company record into
// organization details. Returns nil when both sources came back empty.
func MapOrganization(org *orgreg.Organization, unit *brreg.Unit) *model.Organization {
	orgEmpty := org == nil || org.IsEmpty()
	unitEmpty := unit == nil || (unit.Organisasjonsnummer == "" && unit.Navn == "")
	if orgEmpty && unitEmpty {
		return nil
	}

	details := model.Organization{}
	if !orgEmpty {
		details.OrganizationID = org.OrganizationID
		details.Name = org.Name
		details.PrefLabel = org.PrefLabel
		details.OrgPath = org.OrgPath
	}
	if !unitEmpty {
		if details.OrganizationID == "" {
			details.OrganizationID = unit.Organisasjonsnummer
		}
		if details.Name == "" {
			details.Name = unit.Navn
		}
		if unit.Organisasjonsform != nil && unit.Organisasjonsform.Beskrivelse != "" {
			orgType := unit.Organisasjonsform.Beskrivelse
			details.OrgType = &orgType
		}
		details.SectorCode = codeLabel(unit.InstitusjonellSektorkode)
		details.IndustryCode = codeLabel(unit.Naeringskode1)
		if unit.Hjemmeside != "" {
			homepage := unit.Hjemmeside
			details.Homepage = &homepage
		}
		details.NumberOfEmployees = unit.AntallAnsatte.Value
	}
	details.Icon = iconBaseURL + details.OrganizationID
	return &details
}

// MapQualityScore folds assessment aggregations into a single score.
// Returns nil when there are no aggregations, when any score or max score
// fails numeric parsing, or when the maximum sums to zero.
func MapQualityScore(scores *quality.Scores) *model.QualityScore {
	if scores == nil || len(scores.Aggregations) == 0 {
		return nil
	}
	sumScore := 0
	sumMax := 0
	for _, agg := range scores.Aggregations {
		score, err := strconv.Atoi(agg.Score)
		if err != nil {
			return nil
		}
		max, err := strconv.Atoi(agg.MaxScore)
		if err != nil {
			return nil
		}
		sumScore += score
		sumMax += max
	}
	if sumMax == 0 {
		return nil
	}
	percentage := int(math.Round(float64(sumScore) * 100 / float64(sumMax)))
	return &model.QualityScore{Score: sumScore, Percentage: percentage}
}

// DatasetURIs lists the distinct dataset URIs of a publisher query result,
// in binding order.
func DatasetURIs(result sparql.QueryResult) []string {
	seen := map[string]bool{}
	uris := []string{}
	for _, b := range result.Bindings() {
		uri := b.Str("dataset")
		if uri == "" || seen[uri] {
			continue
		}
		seen[uri] = true
		uris = append(uris, uri)
	}
	return uris
}

// MapOrgDatasets reduces a publisher dataset query into catalog counts.
func MapOrgDatasets(result sparql.QueryResult, score *model.QualityScore, now time.Time) model.OrganizationDatasets {
	cutoff := CatalogNewCutoff(now)
	datasets := model.OrganizationDatasets{Quality: score}
	for _, b := range result.Bindings() {
		datasets.TotalCount++
		if IssuedAfter(b.Str("issued"), cutoff) {
			datasets.NewCount++
		}
		if b.Str("isAuthoritative") == "true" {
			datasets.AuthoritativeCount++
		}
		if b.Str("isOpenData") == "true" {
			datasets.OpenCount++
		}
	}
	return datasets
}

func countNew(result sparql.QueryResult, now time.Time) (total, recent int) {
	cutoff := CatalogNewCutoff(now)
	for _, b := range result.Bindings() {
		total++
		if IssuedAfter(b.Str("issued"), cutoff) {
			recent++
		}
	}
	return total, recent
}

func MapOrgDataservices(result sparql.QueryResult, now time.Time) model.OrganizationDataservices {
	total, recent := countNew(result, now)
	return model.OrganizationDataservices{TotalCount: total, NewCount: recent}
}

func MapOrgConcepts(result sparql.QueryResult, now time.Time) model.OrganizationConcepts {
	total, recent := countNew(result, now)
	return model.OrganizationConcepts{TotalCount: total, NewCount: recent}
}

func MapOrgInformationModels(result sparql.QueryResult, now time.Time) model.OrganizationInformationModels {
	total, recent := countNew(result, now)
	return model.OrganizationInformationModels{TotalCount: total, NewCount: recent}
}
