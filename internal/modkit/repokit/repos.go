// Package repokit provides the types repos are written against, so repos do
// not import the store or a driver directly
package repokit

import (
	"context"

	"fiscaliza/internal/platform/store"
)

type (
	// Queryer is the read and write surface for SQL repos
	Queryer = store.RowQuerier
	// TxRunner can also run a function inside a transaction
	TxRunner = store.TxRunner
	// Clickhouse is the analytics surface
	Clickhouse = store.Clickhouse
	// Rows is a result set
	Rows = store.Rows
	// Row is a single row result
	Row = store.Row
	// CommandTag is the outcome of a write
	CommandTag = store.CommandTag
)

// WithTx runs fn inside a transaction on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
