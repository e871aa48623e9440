//go:build integration_pg

package pg

import (
	"context"
	"testing"
	"time"

	"fiscaliza/internal/platform/store/pg/pgtest"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestOpen_ApplicationNameAndTempTable(t *testing.T) {
	dsn := pgtest.Start(t)
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	const app = "fiscaliza-pg-integration"
	p := withTestDB(t, dsn, nil, func(pc *pgxpool.Config) {
		pc.ConnConfig.RuntimeParams["application_name"] = app
		pc.MinConns = 1
	})
	conn := acquireConn(t, p, ctx)

	if _, err := conn.Exec(ctx, `create temporary table agentes_tmp (matricula text primary key, nome text)`); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := conn.Exec(ctx, `insert into agentes_tmp values ($1,$2)`, "A123", "João"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	type agente struct {
		Matricula string
		Nome      string
	}
	rows, err := conn.Query(ctx, `select matricula, nome from agentes_tmp`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	got, err := pgx.CollectRows(rows, pgx.RowToStructByPos[agente])
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(got) != 1 || got[0].Nome != "João" {
		t.Fatalf("rows = %#v", got)
	}

	var gotApp string
	if err := conn.QueryRow(ctx, `select current_setting('application_name')`).Scan(&gotApp); err != nil {
		t.Fatalf("app name: %v", err)
	}
	if gotApp != app {
		t.Fatalf("application_name = %q, want %q", gotApp, app)
	}
}
