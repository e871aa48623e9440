package repo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fiscaliza/internal/modkit/repokit"
	perr "fiscaliza/internal/platform/errors"
	"fiscaliza/internal/services/api/cadastros/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRows struct {
	data [][]string
	i    int
}

func (f *fakeRows) Next() bool { f.i++; return f.i <= len(f.data) }
func (f *fakeRows) Scan(dest ...any) error {
	for i, d := range dest {
		*(d.(*string)) = f.data[f.i-1][i]
	}
	return nil
}
func (f *fakeRows) Err() error        { return nil }
func (f *fakeRows) Close()            {}
func (f *fakeRows) Columns() []string { return nil }

type tag int64

func (tag) String() string        { return "" }
func (t tag) RowsAffected() int64 { return int64(t) }

type fakeQ struct {
	sql      []string
	args     [][]any
	rows     [][]string
	affected int64
	err      error
}

func (f *fakeQ) record(sql string, args []any) {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, args)
}

func (f *fakeQ) Exec(_ context.Context, sql string, args ...any) (repokit.CommandTag, error) {
	f.record(sql, args)
	return tag(f.affected), f.err
}

func (f *fakeQ) Query(_ context.Context, sql string, args ...any) (repokit.Rows, error) {
	f.record(sql, args)
	if f.err != nil {
		return nil, f.err
	}
	return &fakeRows{data: f.rows}, nil
}

func (f *fakeQ) QueryRow(context.Context, string, ...any) repokit.Row { return nil }

func vehicle() domain.Vehicle {
	return domain.Vehicle{Numero: "12345", Placa: "ABC1D23", Subconcessionaria: "Central", NumeroConsorcio: "2"}
}

func line() domain.Line { return domain.Line{Numero: "100", Nome: "Centro"} }

func TestBind_SQL(t *testing.T) {
	q := &fakeQ{affected: 1}
	r := Vehicles.Bind(q)
	ctx := context.Background()

	_, _ = r.List(ctx)
	_ = r.Update(ctx, "id-1", vehicle())
	_ = r.Insert(ctx, "id-2", vehicle())

	want := []string{
		"select id::text, numero, placa, subconcessionaria, numero_consorcio from veiculos order by numero",
		"update veiculos set numero = $2, placa = $3, subconcessionaria = $4, numero_consorcio = $5 where id = $1",
		"insert into veiculos (id, numero, placa, subconcessionaria, numero_consorcio) values ($1, $2, $3, $4, $5)",
	}
	for i, w := range want {
		if q.sql[i] != w {
			t.Fatalf("sql[%d]\n got %q\nwant %q", i, q.sql[i], w)
		}
	}
	if got := q.args[2]; len(got) != 5 || got[0] != "id-2" || got[2] != "ABC1D23" {
		t.Fatalf("insert args = %v", got)
	}
}

func TestList_ScansRows(t *testing.T) {
	q := &fakeQ{rows: [][]string{{"1", "A1", "Ana"}, {"2", "B2", "Bia"}}}
	got, err := Agents.Bind(q).List(context.Background())
	if err != nil || len(got) != 2 || got[1].Nome != "Bia" || got[0].ID != "1" {
		t.Fatalf("List = %+v, %v", got, err)
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := Lines.Bind(&fakeQ{}).Get(context.Background(), "x")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestWrites_ErrorMapping(t *testing.T) {
	ctx := context.Background()
	dup := &pgconn.PgError{Code: "23505", TableName: "linhas", ConstraintName: "linhas_numero_key"}

	err := Lines.Bind(&fakeQ{err: dup}).Insert(ctx, "id", line())
	if !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("dup err = %v", err)
	}
	if e, _ := perr.As(err); e.Field() != "numeroLinha" {
		t.Fatalf("field = %q", e.Field())
	}

	err = Lines.Bind(&fakeQ{affected: 0}).Update(ctx, "id", line())
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("update missing err = %v", err)
	}
	err = Lines.Bind(&fakeQ{affected: 0}).Delete(ctx, "id")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("delete missing err = %v", err)
	}

	boom := errors.New("conn reset")
	err = Lines.Bind(&fakeQ{err: boom}).Delete(ctx, "id")
	if !errors.Is(err, boom) || !strings.Contains(err.Error(), "excluir") {
		t.Fatalf("err = %v", err)
	}
}
