package services

import (
	"context"
	"sync"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/brreg"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/orgreg"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/quality"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/reference"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/clients/sparqlsvc"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/pkg/logger"
)

// ReadyStatus reports upstream reachability. The organization registry is
// the one hard requirement; other dependencies only produce warnings.
type ReadyStatus struct {
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

func (r ReadyStatus) Ready() bool {
	return len(r.Errors) == 0
}

func (r ReadyStatus) Healthy() bool {
	return r.Ready() && len(r.Warnings) == 0
}

type StatusService interface {
	Ready(ctx context.Context) ReadyStatus
}

type probe struct {
	name  string
	hard  bool
	check func(context.Context) error
}

type statusService struct {
	log    *logger.Logger
	probes []probe
}

func NewStatusService(
	log *logger.Logger,
	orgs orgreg.Client,
	companies brreg.Client,
	store sparqlsvc.Client,
	scores quality.Client,
	ref reference.Client,
) StatusService {
	return &statusService{
		log: log.With("service", "StatusService"),
		probes: []probe{
			{name: "organization-catalog", hard: true, check: orgs.Ready},
			{name: "enhetsregisteret", check: companies.Ready},
			{name: "sparql-service", check: store.Ready},
			{name: "metadata-quality", check: scores.Ready},
			{name: "reference-data", check: ref.Ready},
		},
	}
}

func (s *statusService) Ready(ctx context.Context) ReadyStatus {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		status ReadyStatus
	)
	for _, p := range s.probes {
		wg.Add(1)
		go func(p probe) {
			defer wg.Done()
			err := p.check(ctx)
			if err == nil {
				return
			}
			message := p.name + " unavailable: " + err.Error()
			mu.Lock()
			defer mu.Unlock()
			if p.hard {
				status.Errors = append(status.Errors, message)
			} else {
				status.Warnings = append(status.Warnings, message)
			}
		}(p)
	}
	wg.Wait()

	if !status.Ready() {
		s.log.Error("readiness probe failed", "errors", status.Errors)
	} else if len(status.Warnings) > 0 {
		s.log.Warn("readiness probe degraded", "warnings", status.Warnings)
	}
	return status
}
