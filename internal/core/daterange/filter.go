package daterange

import (
	"errors"
	"fmt"
)

// Field names reported by MalformedDateError
const (
	FieldStart  = "inicio"
	FieldEnd    = "fim"
	FieldRecord = "registro"
)

// MalformedDateError reports a date that could not be parsed. Index is the
// position of the offending record or -1 when a bound was malformed
type MalformedDateError struct {
	Value string
	Index int
	Field string
}

func (e *MalformedDateError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("daterange: malformed date %q at record %d", e.Value, e.Index)
	}
	if e.Field != "" {
		return fmt.Sprintf("daterange: malformed %s date %q", e.Field, e.Value)
	}
	return fmt.Sprintf("daterange: malformed date %q", e.Value)
}

// IsMalformed reports whether err carries a MalformedDateError
func IsMalformed(err error) bool {
	var me *MalformedDateError
	return errors.As(err, &me)
}

// Range is an inclusive period. A Range whose Start is after End contains nothing
type Range struct {
	Start Date
	End   Date
}

// Contains reports Start <= d <= End
func (r Range) Contains(d Date) bool {
	return r.Start.Compare(d) <= 0 && d.Compare(r.End) <= 0
}

func (r Range) String() string { return r.Start.String() + " - " + r.End.String() }

// ParseRange parses both bounds, reporting which one failed
func ParseRange(start, end string) (Range, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Range{}, &MalformedDateError{Value: start, Index: -1, Field: FieldStart}
	}
	e, err := ParseDate(end)
	if err != nil {
		return Range{}, &MalformedDateError{Value: end, Index: -1, Field: FieldEnd}
	}
	return Range{Start: s, End: e}, nil
}

// Filter returns the records whose date lies in r, in input order. The input is
// never modified. The first record with a malformed date aborts the whole call
func Filter[T any](records []T, dateOf func(T) string, r Range) ([]T, error) {
	out := make([]T, 0, len(records))
	for i, rec := range records {
		raw := dateOf(rec)
		d, err := ParseDate(raw)
		if err != nil {
			return nil, &MalformedDateError{Value: raw, Index: i, Field: FieldRecord}
		}
		if r.Contains(d) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// FilterByRange parses start and end then applies Filter
func FilterByRange[T any](records []T, dateOf func(T) string, start, end string) ([]T, error) {
	r, err := ParseRange(start, end)
	if err != nil {
		return nil, err
	}
	return Filter(records, dateOf, r)
}
