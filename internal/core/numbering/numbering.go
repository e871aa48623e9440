// Package numbering derives the next sequential notice number for a year
//
// A notice number is intended to be the 4 digit issuing year followed by a
// 5 digit zero padded counter (202500042). The next number is computed from a
// snapshot of existing numbers and is advisory only: two callers working from
// the same snapshot will propose the same value. Uniqueness must come from the
// authoritative store (the notices table carries a unique constraint)
package numbering

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SeqDigits is the width of the per-year counter
const SeqDigits = 5

var (
	// ErrEmptyReference is returned when there is no existing number to derive from
	ErrEmptyReference = errors.New("numbering: no existing notice numbers")

	// ErrYearOutOfRange is returned when the year does not fit in 4 digits
	ErrYearOutOfRange = errors.New("numbering: year must be between 0 and 9999")
)

// MalformedNumberError reports an existing number that is not made of digits
type MalformedNumberError struct {
	Value string
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("numbering: notice number %q is not numeric", e.Value)
}

// Ordinal normalizes number into the year's ordinal space: the number is left
// padded to SeqDigits, its last SeqDigits characters are kept and the year is
// prefixed. The prefix is always year, whatever year number was issued in
func Ordinal(year int, number string) (int64, error) {
	if year < 0 || year > 9999 {
		return 0, ErrYearOutOfRange
	}
	s := strings.TrimSpace(number)
	if s == "" || !digits(s) {
		return 0, &MalformedNumberError{Value: number}
	}
	if len(s) < SeqDigits {
		s = strings.Repeat("0", SeqDigits-len(s)) + s
	}
	seq := s[len(s)-SeqDigits:]
	return strconv.ParseInt(fmt.Sprintf("%04d%s", year, seq), 10, 64)
}

// Next returns max(Ordinal(year, n) for n in existing) + 1
func Next(year int, existing []string) (string, error) {
	if len(existing) == 0 {
		return "", ErrEmptyReference
	}
	var highest int64
	for i, n := range existing {
		o, err := Ordinal(year, n)
		if err != nil {
			return "", err
		}
		if i == 0 || o > highest {
			highest = o
		}
	}
	return strconv.FormatInt(highest+1, 10), nil
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
