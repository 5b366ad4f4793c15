package mappers

import "time"

// Harvest timestamps arrive in two flavors, with and without fractional
// seconds, always UTC.
var harvestLayouts = []string{
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05Z",
}

// ParseHarvestTime parses a harvest timestamp; ok is false when the value
// is empty or matches neither layout.
func ParseHarvestTime(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range harvestLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CatalogNewCutoff is the recency boundary for catalog counts: midnight UTC
// of the given day, minus one week. An item issued any time on the seventh
// day back still counts as new.
func CatalogNewCutoff(now time.Time) time.Time {
	day := now.UTC()
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, -7)
}

// ReportNewCutoff is the recency boundary for statistical reports: exactly
// one week before the given instant.
func ReportNewCutoff(now time.Time) time.Time {
	return now.UTC().Add(-7 * 24 * time.Hour)
}

// IssuedAfter reports whether raw parses as a harvest timestamp on or after
// the cutoff. Missing and unparsable values are never recent.
func IssuedAfter(raw string, cutoff time.Time) bool {
	t, ok := ParseHarvestTime(raw)
	if !ok {
		return false
	}
	return !t.Before(cutoff)
}
