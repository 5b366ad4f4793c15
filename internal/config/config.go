package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries every externally configurable value. It is built once in
// main and handed to the clients and services, so tests can substitute
// endpoints without touching the environment.
type Config struct {
	HTTPAddr string
	LogMode  string

	OrganizationCatalogURI string
	DataBrregURI           string
	SparqlServiceURI       string
	MetadataQualityURI     string
	ReferenceDataURI       string

	// UpstreamTimeout bounds every single upstream call. There are no
	// retries; a call either answers within the budget or its branch is
	// treated as empty.
	UpstreamTimeout time.Duration
}

func FromEnv() Config {
	return Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		LogMode:  getEnv("LOG_MODE", "development"),
		OrganizationCatalogURI: getEnv(
			"ORGANIZATION_CATALOG_URI",
			"https://organization-catalog.staging.fellesdatakatalog.digdir.no",
		),
		DataBrregURI: getEnv("DATA_BRREG_URI", "https://data.brreg.no"),
		SparqlServiceURI: getEnv(
			"FDK_SPARQL_URI",
			"https://sparql.staging.fellesdatakatalog.digdir.no",
		),
		MetadataQualityURI: getEnv(
			"FDK_METADATA_QUALITY_URI",
			"https://metadata-quality.staging.fellesdatakatalog.digdir.no",
		),
		ReferenceDataURI: getEnv(
			"REFERENCE_DATA_URI",
			"https://www.staging.fellesdatakatalog.digdir.no/reference-data",
		),
		UpstreamTimeout: time.Duration(getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 5)) * time.Second,
	}
}

func getEnv(key, defaultVal string) string {
	val, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(val) == "" {
		return defaultVal
	}
	return val
}

func getEnvAsInt(key string, defaultVal int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	i, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return defaultVal
	}
	return i
}
