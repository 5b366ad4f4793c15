package orgreg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/pkg/logger"
)

// Organization is the organization-catalog record for one organization.
type Organization struct {
	OrganizationID string            `json:"organizationId"`
	Name           string            `json:"name"`
	PrefLabel      map[string]string `json:"prefLabel"`
	OrgPath        string            `json:"orgPath"`
}

// IsEmpty reports whether the record carries no identity at all.
func (o Organization) IsEmpty() bool {
	return o.OrganizationID == "" && o.Name == ""
}

type Client interface {
	// Organization fetches a single record. A missing organization, a
	// non-success status or an undecodable body all yield (nil, nil);
	// only transport failures produce an error.
	Organization(ctx context.Context, id string) (*Organization, error)
	// Organizations fetches the full population, optionally restricted to
	// an org-path prefix, keyed by organization id.
	Organizations(ctx context.Context, orgPath string) (map[string]Organization, error)
	// Ready probes the service; any HTTP answer counts as reachable.
	Ready(ctx context.Context) error
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type client struct {
	log  *logger.Logger
	cfg  Config
	http *http.Client
}

func New(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("missing organization-catalog base URL")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &client{
		log:  log.With("client", "OrganizationCatalogClient"),
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (c *client) Organization(ctx context.Context, id string) (*Organization, error) {
	u := strings.TrimRight(c.cfg.BaseURL, "/") + "/organizations/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug("organization lookup non-200", "id", id, "status", resp.StatusCode)
		return nil, nil
	}
	var org Organization
	if err := json.NewDecoder(resp.Body).Decode(&org); err != nil {
		c.log.Warn("organization lookup returned undecodable body", "id", id, "error", err)
		return nil, nil
	}
	return &org, nil
}

func (c *client) Organizations(ctx context.Context, orgPath string) (map[string]Organization, error) {
	u := strings.TrimRight(c.cfg.BaseURL, "/") + "/organizations"
	if orgPath != "" {
		u += "?orgPath=" + url.QueryEscape(orgPath)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	orgs := map[string]Organization{}
	if resp.StatusCode != http.StatusOK {
		c.log.Debug("organization population non-200", "status", resp.StatusCode)
		return orgs, nil
	}
	var list []Organization
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		c.log.Warn("organization population returned undecodable body", "error", err)
		return orgs, nil
	}
	for _, org := range list {
		if org.OrganizationID != "" {
			orgs[org.OrganizationID] = org
		}
	}
	return orgs, nil
}

func (c *client) Ready(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(c.cfg.BaseURL, "/")+"/ready", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
