// Package service contains the notice analytics workflows
package service

import (
	"context"
	"sync"

	"fiscaliza/internal/core/crossref"
	"fiscaliza/internal/platform/logger"
	"fiscaliza/internal/services/api/estatisticas/domain"
	"fiscaliza/internal/services/api/estatisticas/repo"
)

// Service defines the analytics service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the analytics service
type Svc struct {
	Repo repo.Repo
	refs domain.References

	mu    sync.Mutex
	ready bool
}

var _ Service = (*Svc)(nil)

// New constructs the service. refs may be nil; infraction names are then left empty
func New(r repo.Repo, refs domain.References) *Svc {
	if r == nil {
		panic("estatisticas.Service requires a non nil Repo")
	}
	return &Svc{Repo: r, refs: refs}
}

// ensure creates the events table on first use and retries after a failure
func (s *Svc) ensure(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}
	if err := s.Repo.Ensure(ctx); err != nil {
		return err
	}
	s.ready = true
	logger.C(ctx).Info().Msg("notice events table ready")
	return nil
}

// ByInfraction returns the net notice count per infraction code in a year
func (s *Svc) ByInfraction(ctx context.Context, in domain.YearInput) ([]domain.ByInfractionRow, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	rows, err := s.Repo.ByInfraction(ctx, in.Ano)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ByInfractionRow, 0, len(rows))
	for _, r := range rows {
		row := domain.ByInfractionRow{CodigoInfracao: r.Code, Total: r.Total}
		if s.refs != nil {
			res, err := s.refs.Validate(ctx, crossref.InfractionType, r.Code)
			if err != nil {
				return nil, err
			}
			row.NomeInfracao = res.Label
		}
		out = append(out, row)
	}
	return out, nil
}

// ByMonth returns the net notice count per month in a year
func (s *Svc) ByMonth(ctx context.Context, in domain.YearInput) ([]domain.ByMonthRow, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	rows, err := s.Repo.ByMonth(ctx, in.Ano)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ByMonthRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ByMonthRow{Mes: int(r.Month), Total: r.Total})
	}
	return out, nil
}
