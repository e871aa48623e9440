package errors

// Postgres helpers: SQLSTATE classification, field extraction and retry hints

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE values the repos care about
const (
	SQLStateUniqueViolation     = "23505"
	SQLStateForeignKeyViolation = "23503"
	SQLStateNotNullViolation    = "23502"
	SQLStateCheckViolation      = "23514"
	SQLStateStringTruncation    = "22001"
	SQLStateInvalidText         = "22P02"
	SQLStateSerialization       = "40001"
	SQLStateDeadlock            = "40P01"
	SQLStateLockNotAvailable    = "55P03"
	SQLStateReadOnlyTx          = "25006"
	SQLStateCannotConnectNow    = "57P03"
)

var sqlStateCodes = map[string]ErrorCode{
	SQLStateUniqueViolation:     ErrorCodeDuplicateKey,
	SQLStateForeignKeyViolation: ErrorCodeInvalidArgument,
	SQLStateNotNullViolation:    ErrorCodeValidation,
	SQLStateCheckViolation:      ErrorCodeValidation,
	SQLStateStringTruncation:    ErrorCodeInvalidArgument,
	SQLStateInvalidText:         ErrorCodeInvalidArgument,
	SQLStateSerialization:       ErrorCodeDB,
	SQLStateDeadlock:            ErrorCodeDB,
	SQLStateLockNotAvailable:    ErrorCodeDB,
	SQLStateReadOnlyTx:          ErrorCodeUnavailable,
	SQLStateCannotConnectNow:    ErrorCodeUnavailable,
}

// PgError returns the *pgconn.PgError in err's chain
func PgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a Postgres error with the given SQLSTATE
func IsSQLState(err error, state string) bool {
	pgErr, ok := PgError(err)
	return ok && pgErr.Code == state
}

// IsDuplicateKey reports a unique constraint violation
func IsDuplicateKey(err error) bool { return IsSQLState(err, SQLStateUniqueViolation) }

// IsForeignKeyViolation reports a foreign key violation
func IsForeignKeyViolation(err error) bool { return IsSQLState(err, SQLStateForeignKeyViolation) }

// DBErrorCode classifies a Postgres error; ok is false for anything else
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := PgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	if c, ok := sqlStateCodes[pgErr.Code]; ok {
		return c, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err with its classified code. nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// FromPostgresf is FromPostgres with a formatted message
func FromPostgresf(err error, format string, a ...any) error {
	return FromPostgres(err, fmt.Sprintf(format, a...))
}

// FromPostgresWithField is FromPostgres plus the column the server blamed.
// The column comes from the error itself, or from a constraint named
// <table>_<column>_key (irregularidades_numero_key -> numero)
func FromPostgresWithField(err error, msg string) error {
	out := FromPostgres(err, msg)
	pgErr, ok := PgError(err)
	if !ok {
		return out
	}
	if col := strings.TrimSpace(pgErr.ColumnName); col != "" {
		return WithField(out, col)
	}
	if f := constraintColumn(pgErr.TableName, pgErr.ConstraintName); f != "" {
		return WithField(out, f)
	}
	return out
}

func constraintColumn(table, constraint string) string {
	c := strings.TrimSpace(constraint)
	for _, suffix := range []string{"_key", "_fkey", "_check"} {
		if strings.HasSuffix(c, suffix) {
			c = strings.TrimSuffix(c, suffix)
			if table != "" {
				c = strings.TrimPrefix(c, table+"_")
			} else if i := strings.Index(c, "_"); i >= 0 {
				c = c[i+1:]
			}
			return c
		}
	}
	return ""
}

// IsRetryable reports transient contention worth retrying. Context
// cancellation is never retryable
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgErr, ok := PgError(err); ok {
		switch pgErr.Code {
		case SQLStateSerialization, SQLStateDeadlock, SQLStateLockNotAvailable:
			return true
		}
		return false
	}
	s := strings.ToLower(Root(err).Error())
	for _, frag := range []string{
		"commit unexpectedly resulted in rollback",
		"deadlock detected",
		"could not serialize access",
		"canceling statement due to lock timeout",
		"terminating connection due to administrator command",
	} {
		if strings.Contains(s, frag) {
			return true
		}
	}
	return false
}
