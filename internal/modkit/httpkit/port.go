package httpkit

import (
	"net/http"

	perrs "fiscaliza/internal/platform/errors"
	"fiscaliza/internal/platform/net/middleware"
)

// TokenFunc verifies a bearer token and returns the clerk it was issued to
type TokenFunc func(token string) (clerk string, err error)

// Port implements middleware.AuthPort over a TokenFunc
type Port struct{ parse TokenFunc }

var _ middleware.AuthPort = (*Port)(nil)

// NewPortFunc builds a Port. A nil fn rejects every token
func NewPortFunc(fn TokenFunc) *Port { return &Port{parse: fn} }

// Parse reads the bearer token and delegates to the TokenFunc. Every
// failure is reported as unauthorized without detail
func (p *Port) Parse(r *http.Request) (string, error) {
	raw, err := BearerToken(r)
	if err != nil {
		return "", err
	}
	if p.parse == nil {
		return "", perrs.Unauthorizedf("token de acesso inválido")
	}
	clerk, err := p.parse(raw)
	if err != nil || clerk == "" {
		return "", perrs.Unauthorizedf("token de acesso inválido")
	}
	return clerk, nil
}
