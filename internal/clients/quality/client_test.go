package quality

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/pkg/logger"
)

func newTestClient(t *testing.T, baseURL string) Client {
	t.Helper()
	c, err := New(logger.NewNop(), Config{BaseURL: baseURL, Timeout: time.Second})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestScoresForDatasets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/scores" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string][]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(body["datasets"]) != 2 {
			t.Errorf("unexpected request body %v", body)
		}
		w.Write([]byte(`{"aggregations":[{"score":"33","max_score":"100"}]}`))
	}))
	defer srv.Close()

	scores, err := newTestClient(t, srv.URL).ScoresForDatasets(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("ScoresForDatasets: %v", err)
	}
	if scores == nil || len(scores.Aggregations) != 1 {
		t.Fatalf("unexpected scores %+v", scores)
	}
	if scores.Aggregations[0].Score != "33" || scores.Aggregations[0].MaxScore != "100" {
		t.Errorf("unexpected aggregation %+v", scores.Aggregations[0])
	}
}

func TestScoresForDatasetsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	scores, err := newTestClient(t, srv.URL).ScoresForDatasets(context.Background(), []string{"a"})
	if err != nil || scores != nil {
		t.Fatalf("expected (nil, nil), got (%+v, %v)", scores, err)
	}
}
