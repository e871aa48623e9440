package schema

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestStatements(t *testing.T) {
	got := Statements("-- header\nCREATE TABLE a (x int);\n\n-- only a comment\n;\nCREATE INDEX i ON a (x);\n")
	if len(got) != 2 {
		t.Fatalf("statements = %q", got)
	}
	if got[0] != "CREATE TABLE a (x int)" || !strings.HasPrefix(got[1], "CREATE INDEX") {
		t.Fatalf("statements = %q", got)
	}
}

func TestEmbeddedDDL(t *testing.T) {
	pg := strings.Join(Postgres(), "\n")
	for _, table := range []string{"agentes", "veiculos", "linhas", "consorcios", "infracoes", "irregularidades"} {
		if !strings.Contains(pg, "CREATE TABLE IF NOT EXISTS "+table+" ") {
			t.Fatalf("missing table %s", table)
		}
	}
	ch := Clickhouse()
	if len(ch) != 1 || !strings.Contains(ch[0], EventsTable) {
		t.Fatalf("clickhouse ddl = %q", ch)
	}
}

func TestApply_StopsAtFirstError(t *testing.T) {
	var ran []string
	boom := errors.New("boom")
	db := ExecFunc(func(_ context.Context, sql string, _ ...any) error {
		ran = append(ran, sql)
		if sql == "b" {
			return boom
		}
		return nil
	})
	err := Apply(context.Background(), db, []string{"a", "b", "c"})
	if !errors.Is(err, boom) || len(ran) != 2 {
		t.Fatalf("err=%v ran=%v", err, ran)
	}
	if !strings.Contains(err.Error(), "statement 2") {
		t.Fatalf("err = %v", err)
	}
}
