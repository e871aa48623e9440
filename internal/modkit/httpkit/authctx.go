package httpkit

import (
	"net/http"
	"strings"

	perrs "fiscaliza/internal/platform/errors"
	pnet "fiscaliza/internal/platform/net"
)

// Clerk returns the registration number of the authenticated clerk
func Clerk(r *http.Request) (string, error) {
	if id := pnet.ClerkID(r.Context()); id != "" {
		return id, nil
	}
	return "", perrs.Unauthorizedf("token de acesso ausente")
}

// BearerToken returns the raw token of an "Authorization: Bearer" header.
// The scheme is matched case-insensitively
func BearerToken(r *http.Request) (string, error) {
	authz := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, raw, ok := strings.Cut(authz, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", perrs.Unauthorizedf("token de acesso ausente")
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", perrs.Unauthorizedf("token de acesso ausente")
	}
	return raw, nil
}
