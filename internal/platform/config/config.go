// Package config reads process configuration from environment variables
//
// Required values use Must* and panic through the logger so a misconfigured
// binary dies at boot. Optional values use May* and fall back to a default,
// warning when a value is present but unparsable
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"fiscaliza/internal/platform/logger"
)

// Conf is a namespaced view over the environment, e.g. Prefix("SERVICE_PGSQL_")
type Conf struct{ prefix string }

// New returns the root Conf
func New() Conf { return Conf{} }

// Prefix returns a child Conf whose keys are prefixed with p
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(key string) (string, string) {
	k := c.key(key)
	return k, strings.TrimSpace(os.Getenv(k))
}

// must returns the parsed value of key or panics naming the env var
func must[T any](c Conf, key, what string, parse func(string) (T, bool)) T {
	k, s := c.lookup(key)
	if s == "" {
		logger.Get().Panic().Str("key", k).Msg("missing required env")
	}
	v, ok := parse(s)
	if !ok {
		logger.Get().Panic().Str("key", k).Str("value", s).Msg("invalid " + what)
	}
	return v
}

// may returns the parsed value of key, or def when unset or unparsable
func may[T any](c Conf, key, what string, def T, parse func(string) (T, bool)) T {
	k, s := c.lookup(key)
	if s == "" {
		return def
	}
	if v, ok := parse(s); ok {
		return v
	}
	logger.Get().Warn().Str("key", k).Str("value", s).Interface("default", def).Msg("invalid " + what + "; using default")
	return def
}

func parseString(s string) (string, bool) { return s, true }

func parseInt(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	return v, err == nil
}

func parseBool(s string) (bool, bool) {
	v, err := strconv.ParseBool(s)
	return v, err == nil
}

func parseDuration(s string) (time.Duration, bool) {
	v, err := time.ParseDuration(s)
	return v, err == nil
}

// MustString panics if key is missing or empty
func (c Conf) MustString(key string) string { return must(c, key, "string", parseString) }

// MustInt panics if key is missing or not an int
func (c Conf) MustInt(key string) int { return must(c, key, "int value", parseInt) }

// MustDuration panics if key is missing or not a duration (250ms, 2s, 1h)
func (c Conf) MustDuration(key string) time.Duration {
	return must(c, key, "duration", parseDuration)
}

// MustURL panics if key is missing or not an absolute URL
func (c Conf) MustURL(key string) *url.URL {
	return must(c, key, "absolute URL", func(s string) (*url.URL, bool) {
		u, err := url.Parse(s)
		return u, err == nil && u.IsAbs()
	})
}

// MustPort returns a listen address like ":4000" for a port in 1..65535
func (c Conf) MustPort(key string) string {
	return must(c, key, "TCP port; expected 1..65535", func(s string) (string, bool) {
		p, err := strconv.Atoi(s)
		return ":" + s, err == nil && p >= 1 && p <= 65535
	})
}

// Require panics on the first of keys that is missing or empty
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		_ = c.MustString(k)
	}
}

// MayString returns the value of key or def
func (c Conf) MayString(key, def string) string { return may(c, key, "string", def, parseString) }

// MayInt returns the value of key or def
func (c Conf) MayInt(key string, def int) int { return may(c, key, "int", def, parseInt) }

// MayBool returns the value of key or def
func (c Conf) MayBool(key string, def bool) bool { return may(c, key, "bool", def, parseBool) }

// MayDuration returns the value of key or def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, "duration", def, parseDuration)
}

// MayCSV splits a comma separated value, dropping blanks; def when nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	_, s := c.lookup(key)
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value of key (or def) and panics when it is not one of allowed
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(a)
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
