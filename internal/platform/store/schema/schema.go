// Package schema carries the DDL of both stores. Statements are idempotent
// so Apply can run on every deploy
package schema

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
)

//go:embed postgres.sql
var postgresDDL string

//go:embed clickhouse.sql
var clickhouseDDL string

// EventsTable is the ClickHouse table notice events are appended to
const EventsTable = "irregularidade_eventos"

// Execer is the one method both stores need to take DDL
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) error
}

// ExecFunc adapts a function to Execer
type ExecFunc func(ctx context.Context, sql string, args ...any) error

// Exec calls f
func (f ExecFunc) Exec(ctx context.Context, sql string, args ...any) error { return f(ctx, sql, args...) }

// Statements splits ddl on ";" and drops comment-only chunks
func Statements(ddl string) []string {
	var out []string
	for _, chunk := range strings.Split(ddl, ";") {
		var lines []string
		for _, ln := range strings.Split(chunk, "\n") {
			if t := strings.TrimSpace(ln); t != "" && !strings.HasPrefix(t, "--") {
				lines = append(lines, ln)
			}
		}
		if len(lines) > 0 {
			out = append(out, strings.TrimSpace(strings.Join(lines, "\n")))
		}
	}
	return out
}

// Postgres returns the Postgres statements in order
func Postgres() []string { return Statements(postgresDDL) }

// Clickhouse returns the ClickHouse statements in order
func Clickhouse() []string { return Statements(clickhouseDDL) }

// Apply runs stmts in order and stops at the first failure
func Apply(ctx context.Context, db Execer, stmts []string) error {
	for i, s := range stmts {
		if err := db.Exec(ctx, s); err != nil {
			return fmt.Errorf("schema: statement %d: %w", i+1, err)
		}
	}
	return nil
}
