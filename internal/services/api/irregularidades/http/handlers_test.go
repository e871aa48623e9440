package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fiscaliza/internal/core/daterange"
	"fiscaliza/internal/core/numbering"
	perr "fiscaliza/internal/platform/errors"
	phttp "fiscaliza/internal/platform/net/http"
	"fiscaliza/internal/platform/testkit"
	"fiscaliza/internal/services/api/irregularidades/domain"
)

type stubSvc struct {
	domain.ServicePort

	created domain.Notice
	query   domain.QueryInput
	nextErr error
}

func (s *stubSvc) Query(_ context.Context, in domain.QueryInput) (domain.Page, error) {
	s.query = in
	if in.DataInicio == "bad" {
		return domain.Page{}, perr.WithField(perr.FromDomain(&daterange.MalformedDateError{Value: "bad", Index: -1, Field: daterange.FieldStart}), "dataInicio")
	}
	return domain.Page{Items: []domain.Notice{{ID: "a"}, {ID: "b"}}, Total: 7, Page: 2, Size: 2}, nil
}

func (s *stubSvc) NextNumber(context.Context) (domain.NextNumber, error) {
	if s.nextErr != nil {
		return domain.NextNumber{}, perr.FromDomain(s.nextErr)
	}
	return domain.NextNumber{Numero: "202400043", Ano: 2024}, nil
}

func (s *stubSvc) Create(_ context.Context, n domain.Notice) (domain.Notice, error) {
	n.ID = "new"
	s.created = n
	return n, nil
}

func (s *stubSvc) Get(_ context.Context, id string) (domain.Notice, error) {
	return domain.Notice{}, perr.NotFoundf("irregularidade não encontrada")
}

func serve(s domain.ServicePort, method, path, body string) *httptest.ResponseRecorder {
	r := phttp.NewRouter()
	Register(r, s)
	var req *stdhttp.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)
	return rr
}

const validNotice = `{
	"numeroIrregularidade": "202400042",
	"dataIrregularidade": "15/03/2024",
	"horario": "08:30",
	"local": "Av. Central",
	"bairro": "Centro",
	"descricao": "Não parou no ponto",
	"dataEmissao": "16/03/2024",
	"prazoCumprimentoConferencia": "31/03/2024",
	"matAgenteConferente": "B456",
	"matriculaAgente": "A123",
	"codigoInfracao": "501",
	"numeroLinha": "100",
	"numeroVeiculo": "12345",
	"numeroConsorcio": "2"
}`

func TestNextNumber_Status(t *testing.T) {
	rr := serve(&stubSvc{}, stdhttp.MethodGet, "/proximo-numero", "")
	testkit.MustStatus(t, rr, stdhttp.StatusOK)
	if _, got := testkit.DecodeData[domain.NextNumber](t, rr); got.Numero != "202400043" {
		t.Fatalf("got %+v", got)
	}

	rr = serve(&stubSvc{nextErr: numbering.ErrEmptyReference}, stdhttp.MethodGet, "/proximo-numero", "")
	testkit.MustStatus(t, rr, stdhttp.StatusConflict)
}

func TestQuery_ListEnvelope(t *testing.T) {
	s := &stubSvc{}
	rr := serve(s, stdhttp.MethodPost, "/consulta", `{"dataInicio":"01/03/2024","dataFim":"31/03/2024","pagina":2,"tamanhoPagina":2}`)
	testkit.MustStatus(t, rr, stdhttp.StatusOK)

	type listBody struct {
		Itens     []domain.Notice `json:"itens"`
		Paginacao struct {
			Total int `json:"total"`
		} `json:"paginacao"`
	}
	_, got := testkit.DecodeData[listBody](t, rr)
	if len(got.Itens) != 2 || got.Paginacao.Total != 7 || s.query.TamanhoPagina != 2 {
		t.Fatalf("got %+v, query %+v", got, s.query)
	}
}

func TestQuery_MalformedPeriodIs422(t *testing.T) {
	rr := serve(&stubSvc{}, stdhttp.MethodPost, "/consulta", `{"dataInicio":"bad","dataFim":"31/03/2024"}`)
	testkit.MustStatus(t, rr, stdhttp.StatusUnprocessableEntity)
	if env, _ := testkit.DecodeData[any](t, rr); env.Field != "dataInicio" {
		t.Fatalf("field = %q", env.Field)
	}
}

func TestCreate_Validation(t *testing.T) {
	s := &stubSvc{}
	rr := serve(s, stdhttp.MethodPost, "/", validNotice)
	testkit.MustStatus(t, rr, stdhttp.StatusCreated)
	if s.created.NumeroIrregularidade != "202400042" {
		t.Fatalf("created = %+v", s.created)
	}

	tests := []struct {
		name  string
		from  string
		to    string
		field string
	}{
		{"bad date", `"15/03/2024"`, `"31/02/2024"`, "dataIrregularidade"},
		{"bad time", `"08:30"`, `"8h30"`, "horario"},
		{"letters in number", `"202400042"`, `"2024-42"`, "numeroIrregularidade"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body := strings.Replace(validNotice, tc.from, tc.to, 1)
			rr := serve(&stubSvc{}, stdhttp.MethodPost, "/", body)
			testkit.MustStatus(t, rr, stdhttp.StatusBadRequest)
			if env, _ := testkit.DecodeData[any](t, rr); env.Field != tc.field {
				t.Fatalf("field = %q, want %q", env.Field, tc.field)
			}
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	rr := serve(&stubSvc{}, stdhttp.MethodGet, "/6b2f1c9e-0d3a-4c55-8f1e-9a7b2c3d4e5f", "")
	testkit.MustStatus(t, rr, stdhttp.StatusNotFound)
}
