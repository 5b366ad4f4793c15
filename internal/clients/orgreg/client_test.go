package orgreg

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

func TestOrganizationFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/organizations/910244132" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"organizationId":"910244132","name":"RAMSUND OG ROGNAN REVISJON","orgPath":"/ANNET/910244132"}`))
	}))
	defer srv.Close()

	org, err := newTestClient(t, srv.URL).Organization(context.Background(), "910244132")
	if err != nil {
		t.Fatalf("Organization: %v", err)
	}
	if org == nil || org.Name != "RAMSUND OG ROGNAN REVISJON" {
		t.Fatalf("unexpected organization %+v", org)
	}
}

func TestOrganizationNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	org, err := newTestClient(t, srv.URL).Organization(context.Background(), "missing")
	if err != nil {
		t.Fatalf("expected nil error for 404, got %v", err)
	}
	if org != nil {
		t.Fatalf("expected nil organization, got %+v", org)
	}
}

func TestOrganizationBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	org, err := newTestClient(t, srv.URL).Organization(context.Background(), "910244132")
	if err != nil {
		t.Fatalf("expected nil error for undecodable body, got %v", err)
	}
	if org != nil {
		t.Fatalf("expected nil organization, got %+v", org)
	}
}

func TestOrganizationsKeyedByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("orgPath"); got != "/STAT" {
			t.Errorf("unexpected orgPath param %q", got)
		}
		w.Write([]byte(`[{"organizationId":"1"},{"organizationId":"2"},{"name":"no id"}]`))
	}))
	defer srv.Close()

	orgs, err := newTestClient(t, srv.URL).Organizations(context.Background(), "/STAT")
	if err != nil {
		t.Fatalf("Organizations: %v", err)
	}
	if len(orgs) != 2 {
		t.Fatalf("expected records without an id dropped, got %v", orgs)
	}
}

func TestOrganizationTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	if _, err := newTestClient(t, srv.URL).Organization(context.Background(), "910244132"); err == nil {
		t.Fatal("expected transport error")
	}
	if err := newTestClient(t, srv.URL).Ready(context.Background()); err == nil {
		t.Fatal("expected readiness failure")
	}
}
