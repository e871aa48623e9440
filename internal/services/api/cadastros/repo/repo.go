// Package repo provides postgres access for the reference tables
package repo

import (
	"context"
	"fmt"
	"strings"

	"fiscaliza/internal/core/crossref"
	"fiscaliza/internal/modkit/repokit"
	perr "fiscaliza/internal/platform/errors"
	"fiscaliza/internal/platform/store"
)

// Repo is the persistence surface of one reference table
type Repo[R any] interface {
	List(ctx context.Context) ([]R, error)
	Get(ctx context.Context, id string) (R, error)
	Insert(ctx context.Context, id string, r R) error
	Update(ctx context.Context, id string, r R) error
	Delete(ctx context.Context, id string) error
}

// Table maps one reference entity onto its table. Columns lists the data
// columns after id; Scan reads id first, then Columns in order
type Table[R any] struct {
	Entity   crossref.Entity
	Name     string
	Key      string
	KeyField string
	Columns  []string
	Scan     func(repokit.Row) (R, error)
	Values   func(R) []any
	WithID   func(R, string) R
}

var _ repokit.Binder[Repo[struct{}]] = Table[struct{}]{}

// Bind returns the table's repo on q
func (t Table[R]) Bind(q repokit.Queryer) Repo[R] {
	cols := strings.Join(t.Columns, ", ")
	return &queries[R]{
		t:      t,
		q:      q,
		list:   fmt.Sprintf("select id::text, %s from %s order by %s", cols, t.Name, t.Key),
		get:    fmt.Sprintf("select id::text, %s from %s where id = $1", cols, t.Name),
		insert: fmt.Sprintf("insert into %s (id, %s) values (%s)", t.Name, cols, placeholders(1, len(t.Columns)+1)),
		update: fmt.Sprintf("update %s set %s where id = $1", t.Name, assignments(t.Columns)),
		delete: fmt.Sprintf("delete from %s where id = $1", t.Name),
	}
}

type queries[R any] struct {
	t Table[R]
	q repokit.Queryer

	list, get, insert, update, delete string
}

func (r *queries[R]) List(ctx context.Context) ([]R, error) {
	out, err := store.Many(ctx, r.q, r.t.Scan, r.list)
	if err != nil {
		return nil, perr.FromPostgresf(err, "listar %s", r.t.Entity.Plural())
	}
	return out, nil
}

func (r *queries[R]) Get(ctx context.Context, id string) (R, error) {
	out, err := store.One(ctx, r.q, r.t.Scan, r.get, id)
	if err != nil {
		var zero R
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return zero, perr.NotFoundf("%s não encontrado(a)", r.t.Entity)
		}
		return zero, perr.FromPostgresf(err, "buscar %s", r.t.Entity)
	}
	return out, nil
}

func (r *queries[R]) Insert(ctx context.Context, id string, rec R) error {
	args := append([]any{id}, r.t.Values(rec)...)
	if _, err := r.q.Exec(ctx, r.insert, args...); err != nil {
		return r.writeErr(err, "cadastrar")
	}
	return nil
}

func (r *queries[R]) Update(ctx context.Context, id string, rec R) error {
	args := append([]any{id}, r.t.Values(rec)...)
	if err := store.ExecOne(ctx, r.q, r.update, args...); err != nil {
		return r.writeErr(err, "atualizar")
	}
	return nil
}

func (r *queries[R]) Delete(ctx context.Context, id string) error {
	if err := store.ExecOne(ctx, r.q, r.delete, id); err != nil {
		return r.writeErr(err, "excluir")
	}
	return nil
}

func (r *queries[R]) writeErr(err error, op string) error {
	switch {
	case perr.IsDuplicateKey(err):
		return perr.WithField(perr.Wrapf(err, perr.ErrorCodeDuplicateKey, "%s já cadastrado(a) com esta chave", r.t.Entity), r.t.KeyField)
	case perr.IsCode(err, perr.ErrorCodeNotFound):
		return perr.NotFoundf("%s não encontrado(a)", r.t.Entity)
	}
	return perr.WithOp(perr.FromPostgresf(err, "%s %s", op, r.t.Entity), op)
}

func placeholders(from, n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(ps, ", ")
}

func assignments(cols []string) string {
	as := make([]string, len(cols))
	for i, c := range cols {
		as[i] = fmt.Sprintf("%s = $%d", c, i+2)
	}
	return strings.Join(as, ", ")
}
