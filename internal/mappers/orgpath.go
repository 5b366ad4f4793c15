package mappers

import "strings"

// SplitOrgPath expands an org-path into every prefix from root to leaf,
// so counts can be rolled up at each hierarchy level.
// "/A/B/C" yields ["/A", "/A/B", "/A/B/C"].
func SplitOrgPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	parts := strings.Split(trimmed, "/")
	prefixes := make([]string, 0, len(parts))
	current := ""
	for _, part := range parts {
		current += "/" + part
		prefixes = append(prefixes, current)
	}
	return prefixes
}
