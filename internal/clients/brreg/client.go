package brreg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/pkg/logger"
)

// Code is a code with its human readable description, as the company
// registry models organization forms, industry codes and sector codes.
type Code struct {
	Kode        string `json:"kode"`
	Beskrivelse string `json:"beskrivelse"`
}

// EmployeeCount tolerates both bare and quoted numbers; anything else is
// treated as absent rather than failing the whole record.
type EmployeeCount struct {
	Value *int
}

func (e *EmployeeCount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		e.Value = &n
	}
	return nil
}

// Unit is the subset of an Enhetsregisteret record the catalog needs.
type Unit struct {
	Organisasjonsnummer      string        `json:"organisasjonsnummer"`
	Navn                     string        `json:"navn"`
	Organisasjonsform        *Code         `json:"organisasjonsform"`
	Naeringskode1            *Code         `json:"naeringskode1"`
	InstitusjonellSektorkode *Code         `json:"institusjonellSektorkode"`
	Hjemmeside               string        `json:"hjemmeside"`
	AntallAnsatte            EmployeeCount `json:"antallAnsatte"`
}

type Client interface {
	// Unit fetches a company record. Missing units and malformed bodies
	// yield (nil, nil); only transport failures produce an error.
	Unit(ctx context.Context, id string) (*Unit, error)
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
		return nil, fmt.Errorf("missing company-registry base URL")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &client{
		log:  log.With("client", "CompanyRegistryClient"),
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (c *client) Unit(ctx context.Context, id string) (*Unit, error) {
	u := strings.TrimRight(c.cfg.BaseURL, "/") + "/enhetsregisteret/api/enheter/" + url.PathEscape(id)
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
		c.log.Debug("company lookup non-200", "id", id, "status", resp.StatusCode)
		return nil, nil
	}
	var unit Unit
	if err := json.NewDecoder(resp.Body).Decode(&unit); err != nil {
		c.log.Warn("company lookup returned undecodable body", "id", id, "error", err)
		return nil, nil
	}
	return &unit, nil
}

func (c *client) Ready(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(c.cfg.BaseURL, "/")+"/enhetsregisteret/api", nil)
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
