package errors

import (
	"encoding/json"
	stderrs "errors"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrorCodeNotFound:        http.StatusNotFound,
		ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
		ErrorCodeDuplicateKey:    http.StatusConflict,
		ErrorCodeConflict:        http.StatusConflict,
		ErrorCodeValidation:      http.StatusBadRequest,
		ErrorCodeJSON:            http.StatusBadRequest,
		ErrorCodeUnauthorized:    http.StatusUnauthorized,
		ErrorCodeForbidden:       http.StatusForbidden,
		ErrorCodeUnavailable:     http.StatusServiceUnavailable,
		ErrorCodeDB:              http.StatusInternalServerError,
		ErrorCode(999):           http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := HTTPStatusCode(code); got != want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", code, got, want)
		}
	}
}

func TestErrorChain(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil render")
	}

	cause := stderrs.New("conn reset")
	e := Wrapf(cause, ErrorCodeDB, "falha ao listar %s", "agentes")
	if e.Error() != "falha ao listar agentes: conn reset" {
		t.Fatalf("Error() = %q", e.Error())
	}
	if !stderrs.Is(e, cause) || Root(e) != cause {
		t.Fatalf("cause lost")
	}
	if CodeOf(e) != ErrorCodeDB || CodeOf(cause) != ErrorCodeUnknown {
		t.Fatalf("CodeOf")
	}

	f := WithOp(WithField(e, "matricula"), "agentes.list")
	pe, ok := As(f)
	if !ok || pe.Field() != "matricula" || pe.Op() != "agentes.list" || pe.Message() != "falha ao listar agentes" {
		t.Fatalf("mutators: %+v", pe)
	}
	if orig, _ := As(e); orig.Field() != "" {
		t.Fatalf("WithField mutated the original")
	}
	if WithField(cause, "x") != cause {
		t.Fatalf("foreign error must pass through")
	}
	if WrapIf(nil, ErrorCodeDB, "x") != nil {
		t.Fatalf("WrapIf(nil)")
	}
}

func TestWireFrom(t *testing.T) {
	w := WireFrom(WithField(InvalidArgf("data inválida"), "dataInicio"))
	if w.Code != ErrorCodeInvalidArgument || w.Field != "dataInicio" || w.Message != "data inválida" {
		t.Fatalf("wire = %+v", w)
	}
	if w := WireFrom(stderrs.New("pq: secret detail")); w.Message != "erro interno" {
		t.Fatalf("foreign message leaked: %q", w.Message)
	}
	if (WireFrom(nil) != Wire{}) {
		t.Fatalf("nil wire")
	}

	b, err := json.Marshal(Wire{Code: ErrorCodeNotFound, Message: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"code":"not_found","message":"x"}` {
		t.Fatalf("json = %s", b)
	}
	var back Wire
	if err := json.Unmarshal(b, &back); err != nil || back.Code != ErrorCodeNotFound {
		t.Fatalf("unmarshal = %+v, %v", back, err)
	}
}

func TestSugarCodes(t *testing.T) {
	cases := map[ErrorCode]error{
		ErrorCodeNotFound:     NotFoundf("x"),
		ErrorCodeConflict:     Conflictf("x"),
		ErrorCodeValidation:   Validationf("x"),
		ErrorCodeDuplicateKey: DuplicateKeyf("x"),
		ErrorCodeUnauthorized: Unauthorizedf("x"),
		ErrorCodeUnavailable:  Unavailablef("x"),
		ErrorCodeJSON:         JSONErrf("x"),
		ErrorCodePanic:        PanicErrf("x"),
	}
	for code, err := range cases {
		if !IsCode(err, code) {
			t.Fatalf("%v: got %v", code, CodeOf(err))
		}
	}
}
