package sparql

import "fmt"

// Query catalog for the fdk-sparql-service. Every function returns the full
// query text; the organization-scoped builders interpolate the organization
// number as a plain literal, identifiers are digits only.

const prefixes = `PREFIX dct: <http://purl.org/dc/terms/>
PREFIX dcat: <http://www.w3.org/ns/dcat#>
PREFIX foaf: <http://xmlns.com/foaf/0.1/>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
PREFIX modelldcatno: <https://data.norge.no/vocabulary/modelldcatno#>
PREFIX fdk: <https://raw.githubusercontent.com/Informasjonsforvaltning/fdk-reasoning-service/main/src/main/resources/ontology/fdk.owl#>
PREFIX br: <https://raw.githubusercontent.com/Informasjonsforvaltning/organization-catalog/main/src/main/resources/ontology/organization-catalog.owl#>
`

func OrgDatasetsQuery(orgID string) string {
	return fmt.Sprintf(prefixes+`
SELECT DISTINCT ?dataset ?issued ?isAuthoritative ?isOpenData
WHERE {
    ?dataset a dcat:Dataset .
    ?record foaf:primaryTopic ?dataset .
    ?record a dcat:CatalogRecord .
    ?record dct:issued ?issued .
    OPTIONAL { ?dataset fdk:isOpenData ?isOpenData . }
    OPTIONAL { ?dataset fdk:isAuthoritative ?isAuthoritative . }
    ?dataset dct:publisher ?publisher .
    ?publisher dct:identifier "%s" .
}`, orgID)
}

func NapOrgDatasetsQuery(orgID string) string {
	return fmt.Sprintf(prefixes+`
SELECT DISTINCT ?dataset ?issued ?isAuthoritative ?isOpenData
WHERE {
    ?dataset a dcat:Dataset .
    ?dataset fdk:isRelatedToTransportportal ?isNAP .
    FILTER (STR(?isNAP) = "true")
    ?record foaf:primaryTopic ?dataset .
    ?record a dcat:CatalogRecord .
    ?record dct:issued ?issued .
    OPTIONAL { ?dataset fdk:isOpenData ?isOpenData . }
    OPTIONAL { ?dataset fdk:isAuthoritative ?isAuthoritative . }
    ?dataset dct:publisher ?publisher .
    ?publisher dct:identifier "%s" .
}`, orgID)
}

func OrgDataservicesQuery(orgID string) string {
	return fmt.Sprintf(prefixes+`
SELECT DISTINCT ?service ?issued
WHERE {
    ?service a dcat:DataService .
    ?record foaf:primaryTopic ?service .
    ?record a dcat:CatalogRecord .
    ?record dct:issued ?issued .
    ?service dct:publisher ?publisher .
    ?publisher dct:identifier "%s" .
}`, orgID)
}

func OrgConceptsQuery(orgID string) string {
	return fmt.Sprintf(prefixes+`
SELECT DISTINCT ?concept ?issued
WHERE {
    ?concept a skos:Concept .
    ?record foaf:primaryTopic ?concept .
    ?record a dcat:CatalogRecord .
    ?record dct:issued ?issued .
    ?concept dct:publisher ?publisher .
    ?publisher dct:identifier "%s" .
}`, orgID)
}

func OrgInformationModelsQuery(orgID string) string {
	return fmt.Sprintf(prefixes+`
SELECT DISTINCT ?model ?issued
WHERE {
    ?model a modelldcatno:InformationModel .
    ?record foaf:primaryTopic ?model .
    ?record a dcat:CatalogRecord .
    ?record dct:issued ?issued .
    ?model dct:publisher ?publisher .
    ?publisher dct:identifier "%s" .
}`, orgID)
}

func DatasetsByPublisherQuery() string {
	return prefixes + `
SELECT ?organizationNumber (COUNT(DISTINCT ?dataset) AS ?count)
WHERE {
    ?dataset a dcat:Dataset .
    ?record foaf:primaryTopic ?dataset .
    ?record a dcat:CatalogRecord .
    ?dataset dct:publisher ?publisher .
    ?publisher dct:identifier ?organizationNumber .
}
GROUP BY ?organizationNumber`
}

func NapDatasetsByPublisherQuery() string {
	return prefixes + `
SELECT ?organizationNumber (COUNT(DISTINCT ?dataset) AS ?count)
WHERE {
    ?dataset a dcat:Dataset .
    ?record foaf:primaryTopic ?dataset .
    ?record a dcat:CatalogRecord .
    ?dataset fdk:isRelatedToTransportportal ?isNAP .
    FILTER (STR(?isNAP) = "true")
    ?dataset dct:publisher ?publisher .
    ?publisher dct:identifier ?organizationNumber .
}
GROUP BY ?organizationNumber`
}

func DataservicesByPublisherQuery() string {
	return prefixes + `
SELECT ?organizationNumber (COUNT(DISTINCT ?service) AS ?count)
WHERE {
    ?service a dcat:DataService .
    ?record foaf:primaryTopic ?service .
    ?record a dcat:CatalogRecord .
    ?service dct:publisher ?publisher .
    ?publisher dct:identifier ?organizationNumber .
}
GROUP BY ?organizationNumber`
}

func ConceptsByPublisherQuery() string {
	return prefixes + `
SELECT ?organizationNumber (COUNT(DISTINCT ?concept) AS ?count)
WHERE {
    ?concept a skos:Concept .
    ?record foaf:primaryTopic ?concept .
    ?record a dcat:CatalogRecord .
    ?concept dct:publisher ?publisher .
    ?publisher dct:identifier ?organizationNumber .
}
GROUP BY ?organizationNumber`
}

func InformationModelsByPublisherQuery() string {
	return prefixes + `
SELECT ?organizationNumber (COUNT(DISTINCT ?model) AS ?count)
WHERE {
    ?model a modelldcatno:InformationModel .
    ?record foaf:primaryTopic ?model .
    ?record a dcat:CatalogRecord .
    ?model dct:publisher ?publisher .
    ?publisher dct:identifier ?organizationNumber .
}
GROUP BY ?organizationNumber`
}

func DatasetsGeneralReportQuery() string {
	return prefixes + `
SELECT ?dataset ?firstHarvested ?theme ?accessRights ?provenance ?isOpenData ?transportportal
WHERE {
    ?dataset a dcat:Dataset .
    ?record foaf:primaryTopic ?dataset .
    ?record a dcat:CatalogRecord .
    ?record dct:issued ?firstHarvested .
    OPTIONAL { ?dataset dcat:theme ?theme . }
    OPTIONAL { ?dataset dct:accessRights ?accessRights . }
    OPTIONAL { ?dataset dct:provenance ?provenance . }
    OPTIONAL { ?dataset fdk:isOpenData ?isOpenData . }
    OPTIONAL { ?dataset fdk:isRelatedToTransportportal ?transportportal . }
}`
}

func DatasetsFormatReportQuery() string {
	return prefixes + `
SELECT ?dataset ?mediaType ?format
WHERE {
    ?dataset a dcat:Dataset .
    ?record foaf:primaryTopic ?dataset .
    ?record a dcat:CatalogRecord .
    ?dataset dcat:distribution ?distribution .
    ?distribution dcat:mediaType ?mediaType .
    ?distribution dct:format ?format .
}`
}

func DatasetsPublisherReportQuery() string {
	return prefixes + `
SELECT ?dataset ?orgId ?orgPath
WHERE {
    ?dataset a dcat:Dataset .
    ?record foaf:primaryTopic ?dataset .
    ?record a dcat:CatalogRecord .
    ?dataset dct:publisher ?publisher .
    ?publisher dct:identifier ?orgId .
    ?publisher br:orgPath ?orgPath .
}`
}

func DataServicesReportQuery() string {
	return prefixes + `
SELECT DISTINCT ?service ?firstHarvested ?mediaType ?format ?orgId ?orgPath
WHERE {
    ?service a dcat:DataService .
    ?record foaf:primaryTopic ?service .
    ?record a dcat:CatalogRecord .
    ?record dct:issued ?firstHarvested .
    OPTIONAL { ?service dcat:mediaType ?mediaType . }
    OPTIONAL { ?service dct:format ?format . }
    OPTIONAL {
        ?service dct:publisher ?publisher .
        ?publisher dct:identifier ?orgId .
        ?publisher br:orgPath ?orgPath .
    }
}`
}

func ConceptsReportQuery() string {
	return prefixes + `
SELECT DISTINCT ?concept ?firstHarvested ?orgId ?orgPath ?referer
WHERE {
    ?concept a skos:Concept .
    ?record foaf:primaryTopic ?concept .
    ?record a dcat:CatalogRecord .
    ?record dct:issued ?firstHarvested .
    OPTIONAL {
        ?concept dct:publisher ?publisher .
        ?publisher dct:identifier ?orgId .
        ?publisher br:orgPath ?orgPath .
    }
    OPTIONAL { ?referer dct:subject ?concept . }
}`
}

func InformationModelsReportQuery() string {
	return prefixes + `
SELECT DISTINCT ?model ?firstHarvested ?orgId ?orgPath
WHERE {
    ?model a modelldcatno:InformationModel .
    ?record foaf:primaryTopic ?model .
    ?record a dcat:CatalogRecord .
    ?record dct:issued ?firstHarvested .
    OPTIONAL {
        ?model dct:publisher ?publisher .
        ?publisher dct:identifier ?orgId .
        ?publisher br:orgPath ?orgPath .
    }
}`
}
