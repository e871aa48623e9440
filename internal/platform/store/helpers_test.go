package store

import (
	"context"
	"errors"
	"testing"

	perr "fiscaliza/internal/platform/errors"
)

type fakeRows struct {
	data   [][]any
	i      int
	err    error
	closed bool
}

func (f *fakeRows) Next() bool {
	if f.i >= len(f.data) {
		return false
	}
	f.i++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = f.data[f.i-1][i].(string)
		case *int:
			*p = f.data[f.i-1][i].(int)
		}
	}
	return nil
}

func (f *fakeRows) Err() error        { return f.err }
func (f *fakeRows) Close()            { f.closed = true }
func (f *fakeRows) Columns() []string { return nil }

type fakeTag int64

func (t fakeTag) String() string      { return "UPDATE" }
func (t fakeTag) RowsAffected() int64 { return int64(t) }

type fakeQ struct {
	rows     *fakeRows
	affected int64
	err      error
}

func (f *fakeQ) Exec(context.Context, string, ...any) (CommandTag, error) {
	return fakeTag(f.affected), f.err
}

func (f *fakeQ) Query(context.Context, string, ...any) (Rows, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeQ) QueryRow(context.Context, string, ...any) Row { return nil }

func scanName(r Row) (string, error) {
	var s string
	err := r.Scan(&s)
	return s, err
}

func TestExecOne(t *testing.T) {
	ctx := context.Background()
	if err := ExecOne(ctx, &fakeQ{affected: 1}, "x"); err != nil {
		t.Fatalf("err = %v", err)
	}
	if err := ExecOne(ctx, &fakeQ{affected: 0}, "x"); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
	boom := errors.New("boom")
	if err := ExecOne(ctx, &fakeQ{err: boom}, "x"); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}

func TestOne(t *testing.T) {
	ctx := context.Background()
	rs := &fakeRows{data: [][]any{{"a"}, {"b"}}}
	got, err := One(ctx, &fakeQ{rows: rs}, scanName, "x")
	if err != nil || got != "a" {
		t.Fatalf("One = %q, %v", got, err)
	}
	if !rs.closed {
		t.Fatalf("rows not closed")
	}
	if _, err := One(ctx, &fakeQ{rows: &fakeRows{}}, scanName, "x"); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestMany(t *testing.T) {
	ctx := context.Background()
	got, err := Many(ctx, &fakeQ{rows: &fakeRows{data: [][]any{{"a"}, {"b"}}}}, scanName, "x")
	if err != nil || len(got) != 2 || got[1] != "b" {
		t.Fatalf("Many = %v, %v", got, err)
	}

	empty, err := Many(ctx, &fakeQ{rows: &fakeRows{}}, scanName, "x")
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("empty Many = %#v, %v", empty, err)
	}

	iterErr := errors.New("iter")
	if _, err := Many(ctx, &fakeQ{rows: &fakeRows{err: iterErr}}, scanName, "x"); !errors.Is(err, iterErr) {
		t.Fatalf("err = %v", err)
	}
}

func TestGuard_NilStore(t *testing.T) {
	var s *Store
	if err := s.Guard(context.Background()); err == nil {
		t.Fatalf("want error")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close nil store: %v", err)
	}
}

type pingFail struct{ fakeQ }

func (pingFail) Ping(context.Context) error { return errors.New("down") }
func (pingFail) Tx(context.Context, func(RowQuerier) error) error {
	return nil
}

func TestGuard_ReportsPG(t *testing.T) {
	s := &Store{PG: &pingFail{}}
	if err := s.Guard(context.Background()); err == nil {
		t.Fatalf("want error")
	}
	if err := (&Store{}).Guard(context.Background()); err != nil {
		t.Fatalf("empty store guard: %v", err)
	}
}
