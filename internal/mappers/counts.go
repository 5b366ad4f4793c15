package mappers

import (
	"strconv"
	"strings"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/model"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/sparql"
)

// CanonicalOrgNumber strips embedded whitespace from an organization number.
func CanonicalOrgNumber(raw string) string {
	return strings.ReplaceAll(raw, " ", "")
}

// CountListFromBindings extracts the (organization number, count) projection
// from a grouped count query, in binding order. Rows missing either value,
// or carrying a non-numeric count, are dropped silently.
func CountListFromBindings(result sparql.QueryResult) []model.KeyCount {
	list := []model.KeyCount{}
	for _, b := range result.Bindings() {
		org := CanonicalOrgNumber(b.Str("organizationNumber"))
		raw := b.Str("count")
		if org == "" || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		list = append(list, model.KeyCount{Key: org, Count: n})
	}
	return list
}

// CountsByOrg indexes a count list by organization number.
func CountsByOrg(list []model.KeyCount) map[string]int {
	counts := make(map[string]int, len(list))
	for _, entry := range list {
		counts[entry.Key] = entry.Count
	}
	return counts
}
