// Package repo provides postgres access for notices and the analytics sink
// their events go to
package repo

import (
	"context"
	"fmt"
	"strings"

	"fiscaliza/internal/modkit/repokit"
	perr "fiscaliza/internal/platform/errors"
	"fiscaliza/internal/platform/store"
	"fiscaliza/internal/services/api/irregularidades/domain"
)

// Repo is the notice persistence surface
type Repo interface {
	List(ctx context.Context) ([]domain.Notice, error)
	ByNumber(ctx context.Context, numero string) ([]domain.Notice, error)
	Numbers(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id string) (domain.Notice, error)
	Insert(ctx context.Context, n domain.Notice) error
	Update(ctx context.Context, n domain.Notice) error
	Delete(ctx context.Context, id string) (domain.Notice, error)
}

// Binder binds Repo to the pool or a transaction
type Binder struct{}

var _ repokit.Binder[Repo] = Binder{}

// Bind returns the repo on q
func (Binder) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// columns follow the field order of domain.Notice after id
var columns = []string{
	"numero", "data_irregularidade", "horario", "local", "numero_local", "bairro", "descricao",
	"data_emissao", "prazo_cumprimento_conferencia", "mat_agente_conferente", "matricula_agente",
	"codigo_infracao", "numero_linha", "numero_veiculo", "numero_consorcio", "placa_veiculo",
	"subconcessionaria",
}

var (
	selectCols = "id::text, " + strings.Join(columns, ", ")

	listSQL     = "select " + selectCols + " from irregularidades order by criado_em, numero"
	byNumberSQL = "select " + selectCols + " from irregularidades where numero = $1 order by criado_em"
	numbersSQL  = "select numero from irregularidades"
	getSQL      = "select " + selectCols + " from irregularidades where id = $1"
	insertSQL   = fmt.Sprintf("insert into irregularidades (id, %s) values (%s)", strings.Join(columns, ", "), params(len(columns)+1))
	updateSQL   = fmt.Sprintf("update irregularidades set %s, atualizado_em = now() where id = $1", sets())
	deleteSQL   = "delete from irregularidades where id = $1 returning " + selectCols
)

type queries struct{ q repokit.Queryer }

func scan(r repokit.Row) (n domain.Notice, err error) {
	err = r.Scan(&n.ID, &n.NumeroIrregularidade, &n.DataIrregularidade, &n.Horario, &n.Local,
		&n.NumeroLocal, &n.Bairro, &n.Descricao, &n.DataEmissao, &n.PrazoCumprimentoConferencia,
		&n.MatAgenteConferente, &n.MatriculaAgente, &n.CodigoInfracao, &n.NumeroLinha,
		&n.NumeroVeiculo, &n.NumeroConsorcio, &n.PlacaVeiculo, &n.Subconcessionaria)
	return
}

func values(n domain.Notice) []any {
	return []any{n.ID, n.NumeroIrregularidade, n.DataIrregularidade, n.Horario, n.Local,
		n.NumeroLocal, n.Bairro, n.Descricao, n.DataEmissao, n.PrazoCumprimentoConferencia,
		n.MatAgenteConferente, n.MatriculaAgente, n.CodigoInfracao, n.NumeroLinha,
		n.NumeroVeiculo, n.NumeroConsorcio, n.PlacaVeiculo, n.Subconcessionaria}
}

func (r *queries) List(ctx context.Context) ([]domain.Notice, error) {
	out, err := store.Many(ctx, r.q, scan, listSQL)
	if err != nil {
		return nil, perr.FromPostgres(err, "listar irregularidades")
	}
	return out, nil
}

func (r *queries) ByNumber(ctx context.Context, numero string) ([]domain.Notice, error) {
	out, err := store.Many(ctx, r.q, scan, byNumberSQL, numero)
	if err != nil {
		return nil, perr.FromPostgres(err, "buscar irregularidade por número")
	}
	return out, nil
}

func (r *queries) Numbers(ctx context.Context) ([]string, error) {
	out, err := store.Many(ctx, r.q, func(row repokit.Row) (s string, err error) {
		err = row.Scan(&s)
		return
	}, numbersSQL)
	if err != nil {
		return nil, perr.FromPostgres(err, "listar números de irregularidade")
	}
	return out, nil
}

func (r *queries) Get(ctx context.Context, id string) (domain.Notice, error) {
	n, err := store.One(ctx, r.q, scan, getSQL, id)
	if err != nil {
		return n, notFoundOr(err, "buscar irregularidade")
	}
	return n, nil
}

func (r *queries) Insert(ctx context.Context, n domain.Notice) error {
	if _, err := r.q.Exec(ctx, insertSQL, values(n)...); err != nil {
		return writeErr(err, "cadastrar irregularidade")
	}
	return nil
}

func (r *queries) Update(ctx context.Context, n domain.Notice) error {
	if err := store.ExecOne(ctx, r.q, updateSQL, values(n)...); err != nil {
		return writeErr(err, "atualizar irregularidade")
	}
	return nil
}

func (r *queries) Delete(ctx context.Context, id string) (domain.Notice, error) {
	n, err := store.One(ctx, r.q, scan, deleteSQL, id)
	if err != nil {
		return n, notFoundOr(err, "excluir irregularidade")
	}
	return n, nil
}

func notFoundOr(err error, msg string) error {
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return perr.NotFoundf("irregularidade não encontrada")
	}
	return perr.FromPostgres(err, msg)
}

func writeErr(err error, msg string) error {
	if perr.IsDuplicateKey(err) {
		return perr.WithField(perr.Wrap(err, perr.ErrorCodeDuplicateKey, "número de irregularidade já cadastrado"), "numeroIrregularidade")
	}
	return notFoundOr(err, msg)
}

func params(n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(ps, ", ")
}

func sets() string {
	as := make([]string, len(columns))
	for i, c := range columns {
		as[i] = fmt.Sprintf("%s = $%d", c, i+2)
	}
	return strings.Join(as, ", ")
}
