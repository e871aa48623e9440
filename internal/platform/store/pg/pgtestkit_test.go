package pg

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// withTestDB opens a client with an optional pool mutator and closes it on cleanup
func withTestDB(t *testing.T, dsn string, tracer QueryTracer, poolMut func(*pgxpool.Config)) *PG {
	t.Helper()
	client, err := Open(context.Background(), Config{URL: dsn, SlowMs: -1}, tracer, poolMut)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(client.Close)
	return client
}

// acquireConn keeps session state such as TEMP tables on one connection
func acquireConn(t *testing.T, p *PG, ctx context.Context) *pgxpool.Conn {
	t.Helper()
	conn, err := p.Pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	t.Cleanup(conn.Release)
	return conn
}
