// Package crossref checks typed keys against reference tables
// (agents, vehicles, lines, consortia and infraction types)
//
// Lookups are a first-match linear scan over the snapshot the caller supplies.
// A missing key is a normal outcome reported through Result, never an error
package crossref

// Record is a reference row addressable by a typed key
type Record[K comparable] interface {
	RefKey() K
	RefLabel() string
}

// Result is the outcome of a lookup
type Result struct {
	Matched bool   `json:"encontrado" example:"true"`
	Label   string `json:"rotulo" example:"João da Silva"`
}

// Validate scans records in the given order and returns the label of the first
// record whose key equals key. Empty or non-matching collections yield the
// entity's not found label
func Validate[K comparable, R Record[K]](entity Entity, key K, records []R) Result {
	for _, r := range records {
		if r.RefKey() == key {
			return Result{Matched: true, Label: r.RefLabel()}
		}
	}
	return Result{Matched: false, Label: entity.NotFoundLabel()}
}

// Pair is a plain key and label record
type Pair[K comparable] struct {
	Key   K      `json:"chave"`
	Label string `json:"rotulo"`
}

// RefKey implements Record
func (p Pair[K]) RefKey() K { return p.Key }

// RefLabel implements Record
func (p Pair[K]) RefLabel() string { return p.Label }

// Pairs projects any record slice into key and label pairs, preserving order
func Pairs[K comparable, R Record[K]](records []R) []Pair[K] {
	out := make([]Pair[K], 0, len(records))
	for _, r := range records {
		out = append(out, Pair[K]{Key: r.RefKey(), Label: r.RefLabel()})
	}
	return out
}
