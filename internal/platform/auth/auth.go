// Package auth issues and verifies the HS256 bearer tokens that identify a
// clerk by registration number (matrícula)
package auth

import (
	"errors"
	"strings"
	"time"

	perrs "fiscaliza/internal/platform/errors"
	ptime "fiscaliza/internal/platform/time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL is the lifetime of a token when Options.TTL is zero
const DefaultTTL = 12 * time.Hour

// Claims are the token claims; the clerk is also the subject
type Claims struct {
	Matricula string `json:"matricula"`
	jwt.RegisteredClaims
}

// Options configures a Tokens
type Options struct {
	Secret string
	Issuer string
	TTL    time.Duration
	Clock  ptime.Clock
}

// Tokens signs and verifies clerk tokens
type Tokens struct {
	key    []byte
	issuer string
	ttl    time.Duration
	clock  ptime.Clock
}

// New returns a Tokens; the secret is required
func New(o Options) (*Tokens, error) {
	if strings.TrimSpace(o.Secret) == "" {
		return nil, errors.New("auth: empty secret")
	}
	if o.Issuer == "" {
		o.Issuer = "fiscaliza"
	}
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	if o.Clock == nil {
		o.Clock = ptime.System()
	}
	return &Tokens{key: []byte(o.Secret), issuer: o.Issuer, ttl: o.TTL, clock: o.Clock}, nil
}

// Sign issues a token for clerk
func (t *Tokens) Sign(clerk string) (string, error) {
	clerk = strings.TrimSpace(clerk)
	if clerk == "" {
		return "", perrs.InvalidArgf("matrícula é obrigatória")
	}
	now := t.clock.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Matricula: clerk,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clerk,
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			ID:        uuid.NewString(),
		},
	})
	return tok.SignedString(t.key)
}

// Parse verifies raw and returns its clerk. Expired, foreign or malformed
// tokens are reported as unauthorized
func (t *Tokens) Parse(raw string) (string, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return t.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", perrs.Unauthorizedf("token expirado")
		}
		return "", perrs.Unauthorizedf("token inválido")
	}
	if claims.Matricula == "" {
		return "", perrs.Unauthorizedf("token sem matrícula")
	}
	return claims.Matricula, nil
}
