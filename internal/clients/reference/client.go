package reference

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/pkg/logger"
)

// FylkeOrganisasjon ties a county number to the organization owning it.
type FylkeOrganisasjon struct {
	Fylkesnummer        string `json:"fylkesnummer"`
	Organisasjonsnummer string `json:"organisasjonsnummer"`
	Fylkesnavn          string `json:"fylkesnavn"`
}

// KommuneOrganisasjon ties a municipality number to the organization owning it.
type KommuneOrganisasjon struct {
	Kommunenummer       string `json:"kommunenummer"`
	Organisasjonsnummer string `json:"organisasjonsnummer"`
	Kommunenavn         string `json:"kommunenavn"`
}

type fylkeResponse struct {
	FylkeOrganisasjoner []FylkeOrganisasjon `json:"fylkeOrganisasjoner"`
}

type kommuneResponse struct {
	KommuneOrganisasjoner []KommuneOrganisasjon `json:"kommuneOrganisasjoner"`
}

type Client interface {
	// FylkeOrganizations lists county organizations. Non-success statuses
	// and undecodable bodies yield an empty list; only transport failures
	// produce an error.
	FylkeOrganizations(ctx context.Context) ([]FylkeOrganisasjon, error)
	KommuneOrganizations(ctx context.Context) ([]KommuneOrganisasjon, error)
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
		return nil, fmt.Errorf("missing reference-data base URL")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &client{
		log:  log.With("client", "ReferenceDataClient"),
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (c *client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(c.cfg.BaseURL, "/")+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug("reference lookup non-200", "path", path, "status", resp.StatusCode)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Warn("reference lookup returned undecodable body", "path", path, "error", err)
	}
	return nil
}

func (c *client) FylkeOrganizations(ctx context.Context) ([]FylkeOrganisasjon, error) {
	var body fylkeResponse
	if err := c.get(ctx, "/fylkeorganisasjoner", &body); err != nil {
		return nil, err
	}
	return body.FylkeOrganisasjoner, nil
}

func (c *client) KommuneOrganizations(ctx context.Context) ([]KommuneOrganisasjon, error) {
	var body kommuneResponse
	if err := c.get(ctx, "/kommuneorganisasjoner", &body); err != nil {
		return nil, err
	}
	return body.KommuneOrganisasjoner, nil
}

func (c *client) Ready(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL, nil)
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
