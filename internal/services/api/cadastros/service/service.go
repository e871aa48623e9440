package service

import (
	"context"
	"time"

	"fiscaliza/internal/core/crossref"
	"fiscaliza/internal/modkit/repokit"
	perr "fiscaliza/internal/platform/errors"
	"fiscaliza/internal/services/api/cadastros/domain"
	"fiscaliza/internal/services/api/cadastros/repo"

	"github.com/patrickmn/go-cache"
)

// DefaultTTL is how long a reference snapshot is served from memory
const DefaultTTL = time.Minute

type snapshotter interface {
	Snapshot(ctx context.Context) ([]crossref.Pair[string], error)
	Validate(ctx context.Context, key string) (crossref.Result, error)
}

// Service groups the five catalogs and implements domain.Validator
type Service struct {
	Agents      *Catalog[domain.Agent]
	Vehicles    *Catalog[domain.Vehicle]
	Lines       *Catalog[domain.Line]
	Consortia   *Catalog[domain.Consortium]
	Infractions *Catalog[domain.InfractionType]

	byEntity map[crossref.Entity]snapshotter
}

var _ domain.Validator = (*Service)(nil)

// Repos are the per-entity repos a Service is built on
type Repos struct {
	Agents      repo.Repo[domain.Agent]
	Vehicles    repo.Repo[domain.Vehicle]
	Lines       repo.Repo[domain.Line]
	Consortia   repo.Repo[domain.Consortium]
	Infractions repo.Repo[domain.InfractionType]
}

// BindRepos binds every reference table to q
func BindRepos(q repokit.Queryer) Repos {
	return Repos{
		Agents:      repokit.MustBind(repo.Agents, q),
		Vehicles:    repokit.MustBind(repo.Vehicles, q),
		Lines:       repokit.MustBind(repo.Lines, q),
		Consortia:   repokit.MustBind(repo.Consortia, q),
		Infractions: repokit.MustBind(repo.Infractions, q),
	}
}

// New builds the catalogs over rs, sharing one snapshot cache with ttl
func New(rs Repos, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := cache.New(ttl, 2*ttl)
	s := &Service{
		Agents:      NewCatalog(repo.Agents, rs.Agents, c),
		Vehicles:    NewCatalog(repo.Vehicles, rs.Vehicles, c),
		Lines:       NewCatalog(repo.Lines, rs.Lines, c),
		Consortia:   NewCatalog(repo.Consortia, rs.Consortia, c),
		Infractions: NewCatalog(repo.Infractions, rs.Infractions, c),
	}
	s.byEntity = map[crossref.Entity]snapshotter{
		crossref.Agent:          s.Agents,
		crossref.Vehicle:        s.Vehicles,
		crossref.Line:           s.Lines,
		crossref.Consortium:     s.Consortia,
		crossref.InfractionType: s.Infractions,
	}
	return s
}

func (s *Service) catalog(entity crossref.Entity) (snapshotter, error) {
	c, ok := s.byEntity[entity]
	if !ok {
		return nil, perr.InvalidArgf("entidade desconhecida: %q", entity)
	}
	return c, nil
}

// Validate cross-checks key against entity's snapshot
func (s *Service) Validate(ctx context.Context, entity crossref.Entity, key string) (crossref.Result, error) {
	c, err := s.catalog(entity)
	if err != nil {
		return crossref.Result{}, err
	}
	return c.Validate(ctx, key)
}

// Snapshot returns entity's key/label pairs
func (s *Service) Snapshot(ctx context.Context, entity crossref.Entity) ([]crossref.Pair[string], error) {
	c, err := s.catalog(entity)
	if err != nil {
		return nil, err
	}
	return c.Snapshot(ctx)
}
