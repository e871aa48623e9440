// Package service contains the notice workflows: CRUD, consultation by
// number or period, next number suggestion, cross-reference validation, the
// print sheet and the delivery protocol
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"fiscaliza/internal/core/crossref"
	"fiscaliza/internal/core/daterange"
	"fiscaliza/internal/core/numbering"
	"fiscaliza/internal/core/textfold"
	"fiscaliza/internal/modkit/repokit"
	perr "fiscaliza/internal/platform/errors"
	"fiscaliza/internal/platform/logger"
	"fiscaliza/internal/platform/metrics"
	ptime "fiscaliza/internal/platform/time"
	"fiscaliza/internal/services/api/irregularidades/domain"
	"fiscaliza/internal/services/api/irregularidades/repo"

	"github.com/google/uuid"
)

// NumberingLock is the advisory lock key held while a notice is inserted
const NumberingLock int64 = 0x6669736361

// periodFields maps the bound names of a malformed date to request fields
var periodFields = map[string]string{
	daterange.FieldStart:  "dataInicio",
	daterange.FieldEnd:    "dataFim",
	daterange.FieldRecord: "dataIrregularidade",
}

// Service defines the notice service contract
type Service interface {
	domain.ServicePort
}

// Options carries the collaborators of Svc
type Options struct {
	Refs  domain.References
	Sink  domain.EventSink
	Clock ptime.Clock
	// Loc is the zone the current year is read in; nil means local time
	Loc *time.Location
}

// Svc implements the notice service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	create repokit.TxRunner

	refs  domain.References
	sink  domain.EventSink
	clock ptime.Clock
	loc   *time.Location
	newID func() string
}

var _ Service = (*Svc)(nil)

// New constructs the notice service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], o Options) *Svc {
	if db == nil {
		panic("irregularidades.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("irregularidades.Service requires a non nil Repo binder")
	}
	if o.Refs == nil {
		panic("irregularidades.Service requires a reference validator")
	}
	if o.Sink == nil {
		o.Sink = repo.NopSink{}
	}
	if o.Clock == nil {
		o.Clock = ptime.System()
	}
	return &Svc{
		Repo:   binder.Bind(db),
		binder: binder,
		db:     db,
		create: repokit.WithBeginHooks(db, repokit.AdvisoryLock(NumberingLock)),
		refs:   o.Refs,
		sink:   o.Sink,
		clock:  o.Clock,
		loc:    o.Loc,
		newID:  uuid.NewString,
	}
}

// List returns every notice
func (s *Svc) List(ctx context.Context) ([]domain.Notice, error) { return s.Repo.List(ctx) }

// Get returns the notice with id
func (s *Svc) Get(ctx context.Context, id string) (domain.Notice, error) {
	if err := checkID(id); err != nil {
		return domain.Notice{}, err
	}
	return s.Repo.Get(ctx, id)
}

// Create stores n under a fresh id. Inserts are serialized on NumberingLock;
// a number already in use is a DuplicateKey error
func (s *Svc) Create(ctx context.Context, n domain.Notice) (domain.Notice, error) {
	n.ID = s.newID()
	err := repokit.WithTx(ctx, s.create, func(q repokit.Queryer) error {
		return s.binder.Bind(q).Insert(ctx, n)
	})
	if err != nil {
		return domain.Notice{}, err
	}
	s.publish(ctx, s.event(n, domain.EventCreated))
	return n, nil
}

// Update replaces the notice with id. A change is published as the removal
// of the old notice plus the creation of the new one
func (s *Svc) Update(ctx context.Context, id string, n domain.Notice) (domain.Notice, error) {
	if err := checkID(id); err != nil {
		return domain.Notice{}, err
	}
	n.ID = id
	var old domain.Notice
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		var err error
		if old, err = r.Get(ctx, id); err != nil {
			return err
		}
		return r.Update(ctx, n)
	})
	if err != nil {
		return domain.Notice{}, err
	}
	s.publish(ctx, s.event(old, domain.EventDeleted), s.event(n, domain.EventCreated))
	return n, nil
}

// Delete removes the notice with id
func (s *Svc) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	old, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.publish(ctx, s.event(old, domain.EventDeleted))
	return nil
}

// Query selects by number or by period, narrows by Busca and pages the
// result. Total counts every match
func (s *Svc) Query(ctx context.Context, in domain.QueryInput) (domain.Page, error) {
	hasNumber := strings.TrimSpace(in.Numero) != ""
	hasPeriod := in.DataInicio != "" || in.DataFim != ""
	if hasNumber == hasPeriod {
		return domain.Page{}, perr.WithField(
			perr.InvalidArgf("informe o número da irregularidade ou o período (dataInicio e dataFim)"),
			"numeroIrregularidade")
	}

	var (
		items []domain.Notice
		err   error
	)
	if hasNumber {
		items, err = s.byNumber(ctx, in.Numero)
	} else {
		items, err = s.byPeriod(ctx, in.DataInicio, in.DataFim)
	}
	if err != nil {
		return domain.Page{}, err
	}

	if strings.TrimSpace(in.Busca) != "" {
		kept := items[:0:0]
		for _, n := range items {
			if textfold.AnyContains(in.Busca, n.SearchText()...) {
				kept = append(kept, n)
			}
		}
		items = kept
	}
	return paginate(items, in.Pagina, in.TamanhoPagina), nil
}

// NextNumber suggests the next notice number for the current year. The
// suggestion is advisory; the unique constraint settles concurrent creates
func (s *Svc) NextNumber(ctx context.Context) (domain.NextNumber, error) {
	existing, err := s.Repo.Numbers(ctx)
	if err != nil {
		metrics.Numbering(metrics.Failed)
		return domain.NextNumber{}, err
	}
	year := ptime.Year(s.clock, s.loc)
	next, err := numbering.Next(year, existing)
	switch {
	case err == nil:
		metrics.Numbering(metrics.OK)
	case errors.Is(err, numbering.ErrEmptyReference):
		metrics.Numbering(metrics.Empty)
	default:
		metrics.Numbering(metrics.Failed)
	}
	if err != nil {
		logger.C(ctx).Warn().Err(err).Int("ano", year).Int("existentes", len(existing)).Msg("next notice number unavailable")
		return domain.NextNumber{}, perr.FromDomain(err)
	}
	return domain.NextNumber{Numero: next, Ano: year}, nil
}

// Validate runs the five cross-reference checks of a draft
func (s *Svc) Validate(ctx context.Context, in domain.ValidateInput) (domain.ValidationReport, error) {
	var rep domain.ValidationReport
	checks := []struct {
		entity crossref.Entity
		key    string
		out    *crossref.Result
	}{
		{crossref.Agent, in.MatriculaAgente, &rep.Agente},
		{crossref.Line, in.NumeroLinha, &rep.Linha},
		{crossref.InfractionType, in.CodigoInfracao, &rep.Infracao},
		{crossref.Vehicle, in.NumeroVeiculo, &rep.Veiculo},
		{crossref.Consortium, in.NumeroConsorcio, &rep.Consorcio},
	}
	rep.Valido = true
	for _, c := range checks {
		res, err := s.refs.Validate(ctx, c.entity, c.key)
		if err != nil {
			return domain.ValidationReport{}, err
		}
		*c.out = res
		rep.Valido = rep.Valido && res.Matched
	}
	return rep, nil
}

// Print builds the print sheet of a period (lote) or of one number
// (unitaria), resolving the reference labels of every notice
func (s *Svc) Print(ctx context.Context, in domain.PrintInput) (domain.PrintSheet, error) {
	items, err := s.selectFor(ctx, in.Tipo == domain.ModeSingle, in.Numero, in.DataInicio, in.DataFim)
	if err != nil {
		return domain.PrintSheet{}, err
	}
	out := domain.PrintSheet{Tipo: in.Tipo, Itens: make([]domain.PrintItem, 0, len(items))}
	for _, n := range items {
		it, err := s.printItem(ctx, n)
		if err != nil {
			return domain.PrintSheet{}, err
		}
		out.Itens = append(out.Itens, it)
	}
	return out, nil
}

// Protocol lists the numbers of a period (porLote) or of one number
// (unitaria) handed over on DataConferencia
func (s *Svc) Protocol(ctx context.Context, in domain.ProtocolInput) (domain.Protocol, error) {
	items, err := s.selectFor(ctx, in.Tipo == domain.ModeSingle, in.Numero, in.DataInicio, in.DataFim)
	if err != nil {
		return domain.Protocol{}, err
	}
	nums := make([]string, 0, len(items))
	for _, n := range items {
		nums = append(nums, n.NumeroIrregularidade)
	}
	return domain.Protocol{
		Tipo:            in.Tipo,
		DataConferencia: in.DataConferencia,
		Numeros:         nums,
		Quantidade:      len(nums),
	}, nil
}

func (s *Svc) selectFor(ctx context.Context, single bool, numero, start, end string) ([]domain.Notice, error) {
	if !single {
		return s.byPeriod(ctx, start, end)
	}
	if strings.TrimSpace(numero) == "" {
		return nil, perr.WithField(perr.InvalidArgf("informe o número da irregularidade"), "numeroIrregularidade")
	}
	items, err := s.byNumber(ctx, numero)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, perr.NotFoundf("irregularidade %s não encontrada", numero)
	}
	return items, nil
}

func (s *Svc) byNumber(ctx context.Context, numero string) ([]domain.Notice, error) {
	return s.Repo.ByNumber(ctx, strings.TrimSpace(numero))
}

func (s *Svc) byPeriod(ctx context.Context, start, end string) ([]domain.Notice, error) {
	all, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out, err := daterange.FilterByRange(all, func(n domain.Notice) string { return n.DataIrregularidade }, start, end)
	if err != nil {
		metrics.DateFilterRejected()
		logger.C(ctx).Info().Err(err).Str("inicio", start).Str("fim", end).Msg("period filter rejected")
		out := perr.FromDomain(err)
		var md *daterange.MalformedDateError
		if errors.As(err, &md) {
			out = perr.WithField(out, periodFields[md.Field])
		}
		return nil, out
	}
	return out, nil
}

func (s *Svc) printItem(ctx context.Context, n domain.Notice) (domain.PrintItem, error) {
	it := domain.PrintItem{Notice: n}
	labels := []struct {
		entity crossref.Entity
		key    string
		out    *string
	}{
		{crossref.Agent, n.MatriculaAgente, &it.NomeAgente},
		{crossref.Agent, n.MatAgenteConferente, &it.NomeAgenteConferente},
		{crossref.InfractionType, n.CodigoInfracao, &it.NomeInfracao},
		{crossref.Line, n.NumeroLinha, &it.NomeLinha},
		{crossref.Vehicle, n.NumeroVeiculo, &it.PlacaCadastrada},
		{crossref.Consortium, n.NumeroConsorcio, &it.NomeConsorcio},
	}
	for _, l := range labels {
		res, err := s.refs.Validate(ctx, l.entity, l.key)
		if err != nil {
			return domain.PrintItem{}, err
		}
		*l.out = res.Label
	}
	return it, nil
}

func (s *Svc) event(n domain.Notice, kind string) domain.NoticeEvent {
	now := s.clock.Now()
	year, month := now.Year(), int(now.Month())
	if d, err := daterange.ParseDate(n.DataIrregularidade); err == nil {
		year, month = d.Year, d.Month
	}
	return domain.NoticeEvent{
		ID:             s.newID(),
		NoticeID:       n.ID,
		Numero:         n.NumeroIrregularidade,
		Tipo:           kind,
		CodigoInfracao: n.CodigoInfracao,
		Ano:            year,
		Mes:            month,
		Matricula:      n.MatriculaAgente,
		OcorridoEm:     now,
	}
}

func (s *Svc) publish(ctx context.Context, events ...domain.NoticeEvent) {
	if err := s.sink.Publish(ctx, events...); err != nil {
		logger.C(ctx).Error().Err(err).Int("eventos", len(events)).Msg("notice events not recorded")
	}
}

func paginate(items []domain.Notice, page, size int) domain.Page {
	total := len(items)
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		return domain.Page{Items: items, Total: total, Page: 1, Size: total}
	}
	from := total
	if page-1 <= total/size {
		from = min((page-1)*size, total)
	}
	to := total
	if size < total-from {
		to = from + size
	}
	return domain.Page{Items: items[from:to], Total: total, Page: page, Size: size}
}

func checkID(id string) error {
	if err := uuid.Validate(strings.TrimSpace(id)); err != nil {
		return perr.NotFoundf("irregularidade não encontrada")
	}
	return nil
}
