package repo

import (
	"context"

	"fiscaliza/internal/modkit/repokit"
	perr "fiscaliza/internal/platform/errors"
	"fiscaliza/internal/platform/store/schema"
	"fiscaliza/internal/services/api/irregularidades/domain"

	"github.com/google/uuid"
)

var eventColumns = []string{
	"id", "irregularidade_id", "numero", "tipo", "codigo_infracao", "ano", "mes", "matricula", "ocorrido_em",
}

// ClickhouseSink appends notice events to the analytics table
type ClickhouseSink struct{ ch repokit.Clickhouse }

// NewClickhouseSink returns a sink over ch, or a no-op sink when ch is nil
func NewClickhouseSink(ch repokit.Clickhouse) domain.EventSink {
	if ch == nil {
		return NopSink{}
	}
	return &ClickhouseSink{ch: ch}
}

// Publish writes events in one batch
func (s *ClickhouseSink) Publish(ctx context.Context, events ...domain.NoticeEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(events))
	for _, e := range events {
		id, err := uuid.Parse(e.ID)
		if err != nil {
			return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "evento com id inválido: %q", e.ID)
		}
		noticeID, err := uuid.Parse(e.NoticeID)
		if err != nil {
			return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "evento com irregularidade inválida: %q", e.NoticeID)
		}
		rows = append(rows, []any{
			id, noticeID, e.Numero, e.Tipo, e.CodigoInfracao,
			uint16(e.Ano), uint8(e.Mes), e.Matricula, e.OcorridoEm.UTC(),
		})
	}
	if err := s.ch.InsertRows(ctx, schema.EventsTable, eventColumns, rows); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "gravar eventos de irregularidade")
	}
	return nil
}

// NopSink drops every event
type NopSink struct{}

// Publish does nothing
func (NopSink) Publish(context.Context, ...domain.NoticeEvent) error { return nil }
