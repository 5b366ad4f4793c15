package quality

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/pkg/logger"
)

// Aggregation carries one assessment entry. Scores arrive as strings and
// are parsed downstream so a single bad entry can void the aggregate.
type Aggregation struct {
	Score    string `json:"score"`
	MaxScore string `json:"max_score"`
}

type Scores struct {
	Aggregations []Aggregation `json:"aggregations"`
}

type Client interface {
	// ScoresForDatasets fetches assessment scores for the given dataset
	// URIs. Non-success statuses and undecodable bodies yield (nil, nil);
	// only transport failures produce an error.
	ScoresForDatasets(ctx context.Context, uris []string) (*Scores, error)
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
		return nil, fmt.Errorf("missing metadata-quality base URL")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &client{
		log:  log.With("client", "MetadataQualityClient"),
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (c *client) ScoresForDatasets(ctx context.Context, uris []string) (*Scores, error) {
	body, err := json.Marshal(map[string][]string{"datasets": uris})
	if err != nil {
		return nil, err
	}
	u := strings.TrimRight(c.cfg.BaseURL, "/") + "/api/scores"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug("score lookup non-200", "status", resp.StatusCode)
		return nil, nil
	}
	var scores Scores
	if err := json.NewDecoder(resp.Body).Decode(&scores); err != nil {
		c.log.Warn("score lookup returned undecodable body", "error", err)
		return nil, nil
	}
	return &scores, nil
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
