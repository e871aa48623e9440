package repo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fiscaliza/internal/modkit/repokit"
	perr "fiscaliza/internal/platform/errors"
)

type fakeRows struct {
	data [][]any
	i    int
}

func (f *fakeRows) Next() bool { f.i++; return f.i <= len(f.data) }
func (f *fakeRows) Scan(dest ...any) error {
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = f.data[f.i-1][i].(string)
		case *int64:
			*p = f.data[f.i-1][i].(int64)
		case *uint8:
			*p = f.data[f.i-1][i].(uint8)
		}
	}
	return nil
}
func (f *fakeRows) Err() error        { return nil }
func (f *fakeRows) Close()            {}
func (f *fakeRows) Columns() []string { return nil }

type fakeCH struct {
	execs   []string
	queries []string
	args    [][]any
	rows    [][]any
	err     error
}

func (f *fakeCH) Exec(_ context.Context, sql string, _ ...any) error {
	f.execs = append(f.execs, sql)
	return f.err
}
func (f *fakeCH) Query(_ context.Context, sql string, args ...any) (repokit.Rows, error) {
	f.queries, f.args = append(f.queries, sql), append(f.args, args)
	if f.err != nil {
		return nil, f.err
	}
	return &fakeRows{data: f.rows}, nil
}
func (f *fakeCH) InsertRows(context.Context, string, []string, [][]any) error { return nil }
func (f *fakeCH) Ping(context.Context) error                                 { return nil }
func (f *fakeCH) Close() error                                               { return nil }

func TestByInfraction(t *testing.T) {
	ch := &fakeCH{rows: [][]any{{"501", int64(3)}, {"702", int64(1)}}}
	got, err := New(ch).ByInfraction(context.Background(), 2024)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Code != "501" || got[0].Total != 3 {
		t.Fatalf("got %+v", got)
	}
	if ch.args[0][0] != uint16(2024) || !strings.Contains(ch.queries[0], "GROUP BY codigo_infracao") {
		t.Fatalf("query %q args %v", ch.queries[0], ch.args[0])
	}
}

func TestByMonth(t *testing.T) {
	ch := &fakeCH{rows: [][]any{{uint8(1), int64(5)}, {uint8(3), int64(2)}}}
	got, err := New(ch).ByMonth(context.Background(), 2024)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1].Month != 3 || got[1].Total != 2 {
		t.Fatalf("got %+v", got)
	}
}

func TestEnsureAndErrors(t *testing.T) {
	ch := &fakeCH{}
	if err := New(ch).Ensure(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(ch.execs) == 0 || !strings.Contains(ch.execs[0], "irregularidade_eventos") {
		t.Fatalf("execs = %v", ch.execs)
	}

	down := &fakeCH{err: errors.New("connection refused")}
	if err := New(down).Ensure(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("ensure err = %v", err)
	}
	if _, err := New(down).ByMonth(context.Background(), 2024); !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("query err = %v", err)
	}
}
