package domain

import (
	"context"

	"fiscaliza/internal/core/crossref"
)

// References resolves reference keys. The cadastros validator satisfies it
type References interface {
	Validate(ctx context.Context, entity crossref.Entity, key string) (crossref.Result, error)
}

// EventSink receives notice events. Failures never fail the write that
// produced the event
type EventSink interface {
	Publish(ctx context.Context, events ...NoticeEvent) error
}

// ServicePort is consumed by the handlers
type ServicePort interface {
	List(ctx context.Context) ([]Notice, error)
	Query(ctx context.Context, in QueryInput) (Page, error)
	Get(ctx context.Context, id string) (Notice, error)
	Create(ctx context.Context, n Notice) (Notice, error)
	Update(ctx context.Context, id string, n Notice) (Notice, error)
	Delete(ctx context.Context, id string) error
	NextNumber(ctx context.Context) (NextNumber, error)
	Validate(ctx context.Context, in ValidateInput) (ValidationReport, error)
	Print(ctx context.Context, in PrintInput) (PrintSheet, error)
	Protocol(ctx context.Context, in ProtocolInput) (Protocol, error)
}
