package reference

import (
	"context"
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

func TestFylkeOrganizations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fylkeorganisasjoner" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"fylkeOrganisasjoner":[{"fylkesnummer":"50","organisasjonsnummer":"817920632","fylkesnavn":"Trøndelag"}]}`))
	}))
	defer srv.Close()

	fylker, err := newTestClient(t, srv.URL).FylkeOrganizations(context.Background())
	if err != nil {
		t.Fatalf("FylkeOrganizations: %v", err)
	}
	if len(fylker) != 1 || fylker[0].Fylkesnavn != "Trøndelag" {
		t.Fatalf("unexpected fylker %v", fylker)
	}
}

func TestKommuneOrganizationsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	kommuner, err := newTestClient(t, srv.URL).KommuneOrganizations(context.Background())
	if err != nil {
		t.Fatalf("expected nil error for 500, got %v", err)
	}
	if len(kommuner) != 0 {
		t.Fatalf("expected empty list, got %v", kommuner)
	}
}
