package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"fiscaliza/internal/core/crossref"
	"fiscaliza/internal/modkit/repokit"
	perr "fiscaliza/internal/platform/errors"
	ptime "fiscaliza/internal/platform/time"
	"fiscaliza/internal/services/api/irregularidades/domain"
	"fiscaliza/internal/services/api/irregularidades/repo"
)

type memRepo struct {
	notices []domain.Notice
	err     error
}

func (m *memRepo) List(context.Context) ([]domain.Notice, error) {
	return append([]domain.Notice(nil), m.notices...), m.err
}

func (m *memRepo) ByNumber(_ context.Context, numero string) ([]domain.Notice, error) {
	var out []domain.Notice
	for _, n := range m.notices {
		if n.NumeroIrregularidade == numero {
			out = append(out, n)
		}
	}
	return out, m.err
}

func (m *memRepo) Numbers(context.Context) ([]string, error) {
	out := []string{}
	for _, n := range m.notices {
		out = append(out, n.NumeroIrregularidade)
	}
	return out, m.err
}

func (m *memRepo) Get(_ context.Context, id string) (domain.Notice, error) {
	for _, n := range m.notices {
		if n.ID == id {
			return n, nil
		}
	}
	return domain.Notice{}, perr.NotFoundf("irregularidade não encontrada")
}

func (m *memRepo) Insert(_ context.Context, n domain.Notice) error {
	for _, x := range m.notices {
		if x.NumeroIrregularidade == n.NumeroIrregularidade {
			return perr.WithField(perr.DuplicateKeyf("número de irregularidade já cadastrado"), "numeroIrregularidade")
		}
	}
	m.notices = append(m.notices, n)
	return nil
}

func (m *memRepo) Update(_ context.Context, n domain.Notice) error {
	for i, x := range m.notices {
		if x.ID == n.ID {
			m.notices[i] = n
			return nil
		}
	}
	return perr.NotFoundf("irregularidade não encontrada")
}

func (m *memRepo) Delete(_ context.Context, id string) (domain.Notice, error) {
	for i, x := range m.notices {
		if x.ID == id {
			m.notices = append(m.notices[:i], m.notices[i+1:]...)
			return x, nil
		}
	}
	return domain.Notice{}, perr.NotFoundf("irregularidade não encontrada")
}

// fakeDB runs Tx inline and records statements issued by begin hooks
type fakeDB struct {
	execs []string
	txs   int
}

func (f *fakeDB) Exec(_ context.Context, sql string, _ ...any) (repokit.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return nil, nil
}
func (f *fakeDB) Query(context.Context, string, ...any) (repokit.Rows, error) { return nil, nil }
func (f *fakeDB) QueryRow(context.Context, string, ...any) repokit.Row        { return nil }
func (f *fakeDB) Tx(_ context.Context, fn func(q repokit.Queryer) error) error {
	f.txs++
	return fn(f)
}

type refs map[crossref.Entity]map[string]string

func (r refs) Validate(_ context.Context, e crossref.Entity, key string) (crossref.Result, error) {
	var pairs []crossref.Pair[string]
	for k, v := range r[e] {
		pairs = append(pairs, crossref.Pair[string]{Key: k, Label: v})
	}
	return crossref.Validate(e, key, pairs), nil
}

type recSink struct {
	events []domain.NoticeEvent
	err    error
}

func (s *recSink) Publish(_ context.Context, ev ...domain.NoticeEvent) error {
	s.events = append(s.events, ev...)
	return s.err
}

var testRefs = refs{
	crossref.Agent:          {"A123": "João", "B456": "Maria"},
	crossref.Line:           {"100": "Centro"},
	crossref.InfractionType: {"501": "Atraso"},
	crossref.Vehicle:        {"12345": "ABC1D23"},
	crossref.Consortium:     {"2": "Consórcio Norte"},
}

type fixture struct {
	svc  *Svc
	repo *memRepo
	db   *fakeDB
	sink *recSink
}

func newFixture(now time.Time, notices ...domain.Notice) fixture {
	f := fixture{repo: &memRepo{notices: notices}, db: &fakeDB{}, sink: &recSink{}}
	f.svc = New(f.db, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f.repo }), Options{
		Refs:  testRefs,
		Sink:  f.sink,
		Clock: ptime.Fixed(now),
		Loc:   time.UTC,
	})
	return f
}

func notice(id, numero, data string) domain.Notice {
	return domain.Notice{
		ID: id, NumeroIrregularidade: numero, DataIrregularidade: data, Horario: "08:30",
		Local: "Av. Central", Bairro: "Centro", Descricao: "Não parou no ponto",
		MatriculaAgente: "A123", MatAgenteConferente: "B456", CodigoInfracao: "501",
		NumeroLinha: "100", NumeroVeiculo: "12345", NumeroConsorcio: "2",
	}
}

const (
	id1 = "11111111-1111-4111-8111-111111111111"
	id2 = "22222222-2222-4222-8222-222222222222"
	id3 = "33333333-3333-4333-8333-333333333333"
)

func seeded(now time.Time) fixture {
	return newFixture(now,
		notice(id1, "202400001", "05/01/2024"),
		notice(id2, "202400002", "15/03/2024"),
		notice(id3, "202400003", "31/12/2024"),
	)
}

var march = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func TestNextNumber(t *testing.T) {
	ctx := context.Background()

	got, err := seeded(march).svc.NextNumber(ctx)
	if err != nil || got.Numero != "202400004" || got.Ano != 2024 {
		t.Fatalf("NextNumber = %+v, %v", got, err)
	}

	_, err = newFixture(march).svc.NextNumber(ctx)
	if !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("empty store err = %v, want conflict", err)
	}

	bad := newFixture(march, notice(id1, "20A4", "01/01/2024"))
	if _, err := bad.svc.NextNumber(ctx); !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("malformed number err = %v", err)
	}
}

func TestQuery_Period(t *testing.T) {
	f := seeded(march)
	page, err := f.svc.Query(context.Background(), domain.QueryInput{DataInicio: "1/3/2024", DataFim: "31/12/2024"})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 2 || page.Items[0].ID != id2 || page.Items[1].ID != id3 {
		t.Fatalf("page = %+v", page)
	}
}

func TestQuery_Errors(t *testing.T) {
	f := seeded(march)
	ctx := context.Background()

	tests := []struct {
		name  string
		in    domain.QueryInput
		code  perr.ErrorCode
		field string
	}{
		{"neither", domain.QueryInput{}, perr.ErrorCodeInvalidArgument, "numeroIrregularidade"},
		{"both", domain.QueryInput{Numero: "1", DataInicio: "01/01/2024", DataFim: "02/01/2024"}, perr.ErrorCodeInvalidArgument, "numeroIrregularidade"},
		{"bad start", domain.QueryInput{DataInicio: "31/02/2024", DataFim: "01/03/2024"}, perr.ErrorCodeInvalidArgument, "dataInicio"},
		{"missing end", domain.QueryInput{DataInicio: "01/01/2024"}, perr.ErrorCodeInvalidArgument, "dataFim"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Query(ctx, tc.in)
			if !perr.IsCode(err, tc.code) {
				t.Fatalf("err = %v", err)
			}
			if e, _ := perr.As(err); e.Field() != tc.field {
				t.Fatalf("field = %q, want %q", e.Field(), tc.field)
			}
		})
	}
}

func TestQuery_MalformedStoredDateAborts(t *testing.T) {
	f := newFixture(march, notice(id1, "1", "05/01/2024"), notice(id2, "2", "2024-03-15"))
	_, err := f.svc.Query(context.Background(), domain.QueryInput{DataInicio: "01/01/2024", DataFim: "31/12/2024"})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v", err)
	}
}

func TestQuery_NumberSearchAndPaging(t *testing.T) {
	f := seeded(march)
	ctx := context.Background()

	page, err := f.svc.Query(ctx, domain.QueryInput{Numero: " 202400002 "})
	if err != nil || page.Total != 1 || page.Items[0].ID != id2 {
		t.Fatalf("by number = %+v, %v", page, err)
	}

	f.repo.notices[2].Bairro = "São José"
	page, _ = f.svc.Query(ctx, domain.QueryInput{DataInicio: "01/01/2024", DataFim: "31/12/2024", Busca: "SAO jose"})
	if page.Total != 1 || page.Items[0].ID != id3 {
		t.Fatalf("busca = %+v", page)
	}

	page, _ = f.svc.Query(ctx, domain.QueryInput{DataInicio: "01/01/2024", DataFim: "31/12/2024", Pagina: 2, TamanhoPagina: 2})
	if page.Total != 3 || len(page.Items) != 1 || page.Items[0].ID != id3 || page.Page != 2 {
		t.Fatalf("paging = %+v", page)
	}
	page, _ = f.svc.Query(ctx, domain.QueryInput{DataInicio: "01/01/2024", DataFim: "31/12/2024", Pagina: 9, TamanhoPagina: 2})
	if page.Total != 3 || len(page.Items) != 0 {
		t.Fatalf("past end = %+v", page)
	}
}

func TestPaginate_Bounds(t *testing.T) {
	items := make([]domain.Notice, 5)
	tests := []struct {
		name      string
		page      int
		size      int
		wantItems int
	}{
		{"first page", 1, 2, 2},
		{"last partial page", 3, 2, 1},
		{"just past the end", 4, 2, 0},
		{"huge page", math.MaxInt64/2 + 2, 2, 0},
		{"max page", math.MaxInt, 3, 0},
		{"huge size", 2, math.MaxInt, 0},
		{"huge size first page", 1, math.MaxInt, 5},
		{"zero size returns all", 7, 0, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := paginate(items, tc.page, tc.size)
			if got.Total != 5 || len(got.Items) != tc.wantItems {
				t.Fatalf("paginate(%d, %d) = total %d, %d items; want 5, %d", tc.page, tc.size, got.Total, len(got.Items), tc.wantItems)
			}
		})
	}
}

func TestQuery_PageFarPastEnd(t *testing.T) {
	f := seeded(march)
	page, err := f.svc.Query(context.Background(), domain.QueryInput{
		DataInicio: "01/01/2024", DataFim: "31/12/2024", Pagina: math.MaxInt64/2 + 2, TamanhoPagina: 2,
	})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if page.Total != 3 || len(page.Items) != 0 {
		t.Fatalf("page = %+v", page)
	}
}

func TestCreate_LocksAndPublishes(t *testing.T) {
	f := seeded(march)
	n, err := f.svc.Create(context.Background(), notice("", "202400004", "19/03/2024"))
	if err != nil {
		t.Fatal(err)
	}
	if n.ID == "" || len(f.repo.notices) != 4 {
		t.Fatalf("created %+v", n)
	}
	if f.db.txs != 1 || len(f.db.execs) != 1 || !strings.Contains(f.db.execs[0], "pg_advisory_xact_lock") {
		t.Fatalf("tx=%d execs=%v", f.db.txs, f.db.execs)
	}
	if len(f.sink.events) != 1 {
		t.Fatalf("events = %+v", f.sink.events)
	}
	ev := f.sink.events[0]
	if ev.Tipo != domain.EventCreated || ev.NoticeID != n.ID || ev.Ano != 2024 || ev.Mes != 3 || ev.CodigoInfracao != "501" {
		t.Fatalf("event = %+v", ev)
	}
}

func TestCreate_DuplicateAndSinkFailure(t *testing.T) {
	f := seeded(march)
	ctx := context.Background()
	if _, err := f.svc.Create(ctx, notice("", "202400001", "01/01/2024")); !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("dup err = %v", err)
	}
	if len(f.sink.events) != 0 {
		t.Fatalf("failed create published %d events", len(f.sink.events))
	}

	f.sink.err = errors.New("clickhouse down")
	if _, err := f.svc.Create(ctx, notice("", "202400009", "01/01/2024")); err != nil {
		t.Fatalf("sink failure must not fail create: %v", err)
	}
}

func TestUpdateDelete(t *testing.T) {
	f := seeded(march)
	ctx := context.Background()

	changed := notice("", "202400002", "15/03/2024")
	changed.CodigoInfracao = "702"
	got, err := f.svc.Update(ctx, id2, changed)
	if err != nil || got.ID != id2 || f.repo.notices[1].CodigoInfracao != "702" {
		t.Fatalf("update = %+v, %v", got, err)
	}
	if len(f.sink.events) != 2 || f.sink.events[0].Tipo != domain.EventDeleted || f.sink.events[0].CodigoInfracao != "501" ||
		f.sink.events[1].Tipo != domain.EventCreated || f.sink.events[1].CodigoInfracao != "702" {
		t.Fatalf("update events = %+v", f.sink.events)
	}

	if err := f.svc.Delete(ctx, id1); err != nil {
		t.Fatal(err)
	}
	if last := f.sink.events[len(f.sink.events)-1]; last.Tipo != domain.EventDeleted || last.Mes != 1 {
		t.Fatalf("delete event = %+v", last)
	}

	for _, id := range []string{"x", id1} {
		if err := f.svc.Delete(ctx, id); !perr.IsCode(err, perr.ErrorCodeNotFound) {
			t.Fatalf("delete %q err = %v", id, err)
		}
	}
	if _, err := f.svc.Update(ctx, id1, changed); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("update missing err = %v", err)
	}
}

func TestValidate(t *testing.T) {
	f := seeded(march)
	rep, err := f.svc.Validate(context.Background(), domain.ValidateInput{
		MatriculaAgente: "A123", NumeroLinha: "100", CodigoInfracao: "999", NumeroVeiculo: "12345", NumeroConsorcio: "2",
	})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Valido || !rep.Agente.Matched || rep.Infracao.Matched || rep.Infracao.Label != "Infração não cadastrada" {
		t.Fatalf("report = %+v", rep)
	}
}

func TestPrint(t *testing.T) {
	f := seeded(march)
	ctx := context.Background()

	sheet, err := f.svc.Print(ctx, domain.PrintInput{Tipo: domain.ModeBatch, DataInicio: "01/03/2024", DataFim: "31/03/2024"})
	if err != nil {
		t.Fatal(err)
	}
	if len(sheet.Itens) != 1 {
		t.Fatalf("itens = %d", len(sheet.Itens))
	}
	it := sheet.Itens[0]
	if it.NomeAgente != "João" || it.NomeAgenteConferente != "Maria" || it.NomeInfracao != "Atraso" || it.PlacaCadastrada != "ABC1D23" {
		t.Fatalf("item = %+v", it)
	}

	if _, err := f.svc.Print(ctx, domain.PrintInput{Tipo: domain.ModeSingle, Numero: "404"}); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing number err = %v", err)
	}
}

func TestProtocol(t *testing.T) {
	f := seeded(march)
	p, err := f.svc.Protocol(context.Background(), domain.ProtocolInput{
		Tipo: domain.ModeProtocolBatch, DataInicio: "01/01/2024", DataFim: "31/03/2024", DataConferencia: "20/03/2024",
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.Quantidade != 2 || p.Numeros[0] != "202400001" || p.DataConferencia != "20/03/2024" {
		t.Fatalf("protocol = %+v", p)
	}

	p, err = f.svc.Protocol(context.Background(), domain.ProtocolInput{Tipo: domain.ModeSingle, Numero: "202400003", DataConferencia: "20/03/2024"})
	if err != nil || p.Quantidade != 1 || p.Tipo != domain.ModeSingle {
		t.Fatalf("single = %+v, %v", p, err)
	}
}
