package domain

import (
	"context"

	"fiscaliza/internal/core/crossref"
)

// Validator cross-checks a key against the current reference snapshot of an
// entity. Unknown keys are a Result with Matched=false, not an error
type Validator interface {
	Validate(ctx context.Context, entity crossref.Entity, key string) (crossref.Result, error)
	Snapshot(ctx context.Context, entity crossref.Entity) ([]crossref.Pair[string], error)
}
