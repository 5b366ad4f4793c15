package mappers

import (
	"encoding/json"
	"testing"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/sparql"
)

func row(values map[string]string) sparql.Binding {
	b := sparql.Binding{}
	for name, value := range values {
		b[name] = sparql.Value{Type: "literal", Value: value}
	}
	return b
}

func resultOf(rows ...sparql.Binding) sparql.QueryResult {
	return sparql.QueryResult{Results: sparql.Results{Bindings: rows}}
}

func TestCountListFromBindingsEmptyShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "empty_bindings", body: `{"results":{"bindings":[]}}`},
		{name: "missing_bindings", body: `{"results":{}}`},
		{name: "missing_results", body: `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var result sparql.QueryResult
			if err := json.Unmarshal([]byte(tc.body), &result); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := CountListFromBindings(result); len(got) != 0 {
				t.Fatalf("expected empty list, got %v", got)
			}
		})
	}
}

func TestCountListFromBindings(t *testing.T) {
	result := resultOf(
		row(map[string]string{"organizationNumber": "123 456 78", "count": "3"}),
		row(map[string]string{"organizationNumber": "", "count": "5"}),
		row(map[string]string{"organizationNumber": "987654321", "count": ""}),
		row(map[string]string{"organizationNumber": "555444333", "count": "abc"}),
		row(map[string]string{"count": "5"}),
		row(map[string]string{"organizationNumber": "910244132", "count": "71"}),
	)

	list := CountListFromBindings(result)
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(list), list)
	}
	if list[0].Key != "12345678" || list[0].Count != 3 {
		t.Errorf("expected canonicalized first entry, got %+v", list[0])
	}
	if list[1].Key != "910244132" || list[1].Count != 71 {
		t.Errorf("unexpected second entry %+v", list[1])
	}

	counts := CountsByOrg(list)
	if counts["12345678"] != 3 {
		t.Errorf("expected indexed count 3, got %d", counts["12345678"])
	}
}
