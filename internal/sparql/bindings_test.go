package sparql

import (
	"encoding/json"
	"testing"
)

func TestQueryResultDecoding(t *testing.T) {
	body := `{
		"head": {"vars": ["organizationNumber", "count"]},
		"results": {"bindings": [
			{"organizationNumber": {"type": "literal", "value": "910244132"},
			 "count": {"type": "literal", "value": "71"}}
		]}
	}`
	var result QueryResult
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	bindings := result.Bindings()
	if len(bindings) != 1 {
		t.Fatalf("expected 1 binding, got %d", len(bindings))
	}
	if got := bindings[0].Str("organizationNumber"); got != "910244132" {
		t.Errorf("unexpected organizationNumber %q", got)
	}
	if got := bindings[0].Str("missing"); got != "" {
		t.Errorf("expected empty string for absent variable, got %q", got)
	}
	if !bindings[0].Has("count") || bindings[0].Has("missing") {
		t.Errorf("unexpected Has results")
	}
}

func TestQueryResultZeroValue(t *testing.T) {
	var result QueryResult
	if got := result.Bindings(); len(got) != 0 {
		t.Fatalf("expected no bindings, got %v", got)
	}
}
