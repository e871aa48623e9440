// Package service contains the reference table workflows and the snapshot
// cache behind cross-reference validation
package service

import (
	"context"
	"strings"
	"sync"

	"fiscaliza/internal/core/crossref"
	perr "fiscaliza/internal/platform/errors"
	"fiscaliza/internal/platform/logger"
	"fiscaliza/internal/platform/metrics"
	"fiscaliza/internal/services/api/cadastros/repo"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Catalog is the CRUD and validation service of one reference entity
type Catalog[R crossref.Record[string]] struct {
	table repo.Table[R]
	repo  repo.Repo[R]
	cache *cache.Cache
	newID func() string

	// gen counts writes; a snapshot loaded across a write is not cached
	mu  sync.Mutex
	gen uint64
}

// NewCatalog builds a Catalog over rp. Snapshots are kept in c under the
// entity name
func NewCatalog[R crossref.Record[string]](t repo.Table[R], rp repo.Repo[R], c *cache.Cache) *Catalog[R] {
	if rp == nil || c == nil {
		panic("cadastros: catalog requires a repo and a cache")
	}
	return &Catalog[R]{table: t, repo: rp, cache: c, newID: uuid.NewString}
}

// Entity names the catalogued entity
func (c *Catalog[R]) Entity() crossref.Entity { return c.table.Entity }

// List returns every record ordered by key
func (c *Catalog[R]) List(ctx context.Context) ([]R, error) { return c.repo.List(ctx) }

// Get returns the record with id
func (c *Catalog[R]) Get(ctx context.Context, id string) (R, error) {
	if err := checkID(id); err != nil {
		var zero R
		return zero, err
	}
	return c.repo.Get(ctx, id)
}

// Create stores rec under a fresh id
func (c *Catalog[R]) Create(ctx context.Context, rec R) (R, error) {
	id := c.newID()
	rec = c.table.WithID(rec, id)
	if err := c.repo.Insert(ctx, id, rec); err != nil {
		var zero R
		return zero, err
	}
	c.invalidate(ctx)
	return rec, nil
}

// Update replaces the record with id
func (c *Catalog[R]) Update(ctx context.Context, id string, rec R) (R, error) {
	if err := checkID(id); err != nil {
		var zero R
		return zero, err
	}
	rec = c.table.WithID(rec, id)
	if err := c.repo.Update(ctx, id, rec); err != nil {
		var zero R
		return zero, err
	}
	c.invalidate(ctx)
	return rec, nil
}

// Delete removes the record with id
func (c *Catalog[R]) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := c.repo.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Snapshot returns the key/label pairs of every record, from the cache when
// it is still fresh
func (c *Catalog[R]) Snapshot(ctx context.Context) ([]crossref.Pair[string], error) {
	key := string(c.table.Entity)
	if v, ok := c.cache.Get(key); ok {
		metrics.ReferenceCache(key, true)
		return v.([]crossref.Pair[string]), nil
	}
	metrics.ReferenceCache(key, false)

	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	recs, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	pairs := crossref.Pairs[string](recs)

	c.mu.Lock()
	stale := gen != c.gen
	if !stale {
		c.cache.SetDefault(key, pairs)
	}
	c.mu.Unlock()

	logger.C(ctx).Debug().Str("entidade", key).Int("registros", len(pairs)).Bool("cacheado", !stale).Msg("reference snapshot loaded")
	return pairs, nil
}

// Validate cross-checks key against the current snapshot
func (c *Catalog[R]) Validate(ctx context.Context, key string) (crossref.Result, error) {
	pairs, err := c.Snapshot(ctx)
	if err != nil {
		return crossref.Result{}, err
	}
	res := crossref.Validate(c.table.Entity, key, pairs)
	metrics.CrossRefLookup(string(c.table.Entity), res.Matched)
	return res, nil
}

func (c *Catalog[R]) invalidate(ctx context.Context) {
	c.mu.Lock()
	c.gen++
	c.cache.Delete(string(c.table.Entity))
	c.mu.Unlock()
	logger.C(ctx).Debug().Str("entidade", string(c.table.Entity)).Msg("reference snapshot invalidated")
}

func checkID(id string) error {
	if err := uuid.Validate(strings.TrimSpace(id)); err != nil {
		return perr.NotFoundf("registro não encontrado: id inválido")
	}
	return nil
}
