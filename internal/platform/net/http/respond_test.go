package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "fiscaliza/internal/platform/errors"
	pnet "fiscaliza/internal/platform/net"
	kit "fiscaliza/internal/platform/testkit"
)

func serve(h Handler, req *stdhttp.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestHandle_Success(t *testing.T) {
	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	req = req.WithContext(pnet.WithRequest(req.Context(), "rid-1"))

	rr := serve(Handle(func(*stdhttp.Request) Response { return Created(map[string]string{"id": "x"}) }), req)
	kit.MustStatus(t, rr, stdhttp.StatusCreated)
	env, data := kit.DecodeData[map[string]string](t, rr)
	if env.RequestID != "rid-1" || data["id"] != "x" {
		t.Fatalf("env=%+v data=%v", env, data)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
}

func TestHandle_ErrorAndNoContent(t *testing.T) {
	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)

	err := perr.WithField(perr.InvalidArgf("data inválida"), "dataInicio")
	rr := serve(Handle(func(*stdhttp.Request) Response { return Error(err) }), req)
	kit.MustStatus(t, rr, stdhttp.StatusUnprocessableEntity)
	env, _ := kit.DecodeData[any](t, rr)
	if env.Code != "invalid_argument" || env.Field != "dataInicio" || env.Error != "data inválida" {
		t.Fatalf("env = %+v", env)
	}

	rr = serve(Handle(func(*stdhttp.Request) Response { return NoContent() }), req)
	kit.MustStatus(t, rr, stdhttp.StatusNoContent)
	if rr.Body.Len() != 0 {
		t.Fatalf("204 with body %q", rr.Body.String())
	}
}

func TestList_NilItemsBecomeEmpty(t *testing.T) {
	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	rr := serve(Handle(func(*stdhttp.Request) Response { return List[string](nil, 0, 1, 20) }), req)
	kit.MustStatus(t, rr, stdhttp.StatusOK)
	_, body := kit.DecodeData[ListBody[string]](t, rr)
	if body.Items == nil || body.Page.PageSize != 20 || body.Page.Page != 1 {
		t.Fatalf("body = %+v", body)
	}
}

func TestRouter_ParamsAndSugar(t *testing.T) {
	r := NewRouter()
	r.Route("/itens", func(sub Router) {
		GetJSON(sub, "/{id}", func(req *stdhttp.Request) (any, error) {
			return map[string]string{"id": URLParam(req, "id")}, nil
		})
		DeleteJSON(sub, "/{id}", func(*stdhttp.Request) (any, error) {
			return nil, perr.NotFoundf("não encontrado")
		})
		type in struct {
			Nome string `json:"nome" validate:"required"`
		}
		PostJSON(sub, "/", func(_ *stdhttp.Request, v in) (any, error) { return Created(v), nil })
	})

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/itens/42", nil))
	kit.MustStatus(t, rr, stdhttp.StatusOK)
	kit.MustContain(t, rr.Body.String(), `"id":"42"`)

	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodDelete, "/itens/42", nil))
	kit.MustStatus(t, rr, stdhttp.StatusNotFound)

	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodPost, "/itens/", stringsReader(`{}`)))
	kit.MustStatus(t, rr, stdhttp.StatusBadRequest)

	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodPost, "/itens/", stringsReader(`{"nome":"x"}`)))
	kit.MustStatus(t, rr, stdhttp.StatusCreated)
}

func stringsReader(s string) *strings.Reader { return strings.NewReader(s) }
