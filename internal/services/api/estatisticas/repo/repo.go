// Package repo provides clickhouse access for the notice analytics
package repo

import (
	"context"

	"fiscaliza/internal/modkit/repokit"
	perr "fiscaliza/internal/platform/errors"
	"fiscaliza/internal/platform/store"
	"fiscaliza/internal/platform/store/schema"
)

// Repo is the analytics read surface
type Repo interface {
	// Ensure creates the events table when missing
	Ensure(ctx context.Context) error
	ByInfraction(ctx context.Context, year int) ([]RowByInfraction, error)
	ByMonth(ctx context.Context, year int) ([]RowByMonth, error)
}

// RowByInfraction is a net count per infraction code
type RowByInfraction struct {
	Code  string
	Total int64
}

// RowByMonth is a net count per month
type RowByMonth struct {
	Month uint8
	Total int64
}

// created events count +1 and removals -1, so edits and deletions net out
const (
	netTotal = "sum(if(tipo = 'criada', 1, -1))"

	byInfractionSQL = "SELECT codigo_infracao, " + netTotal + " AS total FROM " + schema.EventsTable +
		" WHERE ano = ? GROUP BY codigo_infracao HAVING total > 0 ORDER BY total DESC, codigo_infracao"
	byMonthSQL = "SELECT mes, " + netTotal + " AS total FROM " + schema.EventsTable +
		" WHERE ano = ? GROUP BY mes HAVING total > 0 ORDER BY mes"
)

type queries struct{ ch repokit.Clickhouse }

// New returns the repo over ch
func New(ch repokit.Clickhouse) Repo {
	if ch == nil {
		panic("estatisticas: repo requires clickhouse")
	}
	return &queries{ch: ch}
}

func (r *queries) Ensure(ctx context.Context) error {
	if err := schema.Apply(ctx, r.ch, schema.Clickhouse()); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "tabela de eventos indisponível")
	}
	return nil
}

func (r *queries) ByInfraction(ctx context.Context, year int) ([]RowByInfraction, error) {
	rs, err := r.ch.Query(ctx, byInfractionSQL, uint16(year))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "consultar totais por infração")
	}
	out, err := store.ScanAll(rs, func(row repokit.Row) (x RowByInfraction, err error) {
		err = row.Scan(&x.Code, &x.Total)
		return
	})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "ler totais por infração")
	}
	return out, nil
}

func (r *queries) ByMonth(ctx context.Context, year int) ([]RowByMonth, error) {
	rs, err := r.ch.Query(ctx, byMonthSQL, uint16(year))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "consultar totais mensais")
	}
	out, err := store.ScanAll(rs, func(row repokit.Row) (x RowByMonth, err error) {
		err = row.Scan(&x.Month, &x.Total)
		return
	})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "ler totais mensais")
	}
	return out, nil
}
