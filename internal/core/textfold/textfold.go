// Package textfold folds free text into a comparison key so that clerk searches
// ignore accents, case and spacing ("São  JOÃO" matches "sao joao")
//
// Pipeline
// 1 Clean: drop invalid UTF-8, NUL, C0/C1 controls except line breaks and tabs
// 2 NFKD decomposition
// 3 Unicode case folding
// 4 Remove combining marks and format chars
// 5 Width fold fullwidth to ASCII
// 6 Collapse whitespace to single spaces and trim
package textfold

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// transformer chains are stateful so each goroutine takes its own
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// Fold returns the comparison key of s. Fold is idempotent
func Fold(s string) string {
	if s == "" {
		return ""
	}
	s = Clean(s)

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(out), " ")
}

// Contains reports whether the folded needle occurs in the folded haystack.
// An empty needle matches everything
func Contains(haystack, needle string) bool {
	n := Fold(needle)
	if n == "" {
		return true
	}
	return strings.Contains(Fold(haystack), n)
}

// AnyContains reports whether any of fields contains needle after folding
func AnyContains(needle string, fields ...string) bool {
	n := Fold(needle)
	if n == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Fold(f), n) {
			return true
		}
	}
	return false
}
