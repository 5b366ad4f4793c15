package sparqlsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/pkg/ctxutil"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/pkg/logger"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/sparql"
)

type Client interface {
	// Select runs a SELECT query and decodes the standard SPARQL JSON
	// result. Non-success statuses and undecodable bodies yield an empty
	// result; only transport failures produce an error.
	Select(ctx context.Context, query string) (sparql.QueryResult, error)
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
		return nil, fmt.Errorf("missing sparql endpoint base URL")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &client{
		log:  log.With("client", "SparqlClient"),
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (c *client) Select(ctx context.Context, query string) (sparql.QueryResult, error) {
	ctx = ctxutil.Default(ctx)

	params := url.Values{}
	params.Set("query", query)
	u := strings.TrimRight(c.cfg.BaseURL, "/") + "?" + params.Encode()

	var result sparql.QueryResult
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return result, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return result, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug("sparql select non-200", "status", resp.StatusCode)
		return sparql.QueryResult{}, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.log.Warn("sparql select returned undecodable body", "error", err)
		return sparql.QueryResult{}, nil
	}
	return result, nil
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
