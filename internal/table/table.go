// Package table produces the leaderboard view: a filtered and sorted
// subsequence of the dataset. Every function here is pure and total; bad
// values are ordered as unknown instead of being reported.
package table

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"llmboard/pkg/types"
)

// Order is the direction requested by the caller.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ParseOrder accepts "asc" or "desc"; empty means Asc.
func ParseOrder(s string) (Order, bool) {
	switch Order(strings.ToLower(s)) {
	case "", Asc:
		return Asc, true
	case Desc:
		return Desc, true
	}
	return "", false
}

// Query is the full input of a view: search term plus sort spec.
type Query struct {
	Term  string
	Field Field
	Order Order
}

// DefaultQuery is the view shown when nothing has been chosen: best
// operational rank first.
func DefaultQuery() Query {
	return Query{Field: FieldOperationalRank, Order: Asc}
}

// Apply filters then sorts.
func Apply(models []types.Model, q Query) []types.Model {
	return Sort(Filter(models, q.Term), q.Field, q.Order)
}

// Filter keeps records whose name, developer, license or knowledge cutoff
// contains term, ignoring case. An empty term keeps everything. The result
// preserves dataset order.
func Filter(models []types.Model, term string) []types.Model {
	out := make([]types.Model, 0, len(models))
	if term == "" {
		return append(out, models...)
	}
	fold := cases.Fold()
	needle := fold.String(term)
	for _, m := range models {
		for _, s := range []string{m.Name, m.Developer, m.License, m.CutoffKnowledge} {
			if s != "" && strings.Contains(fold.String(s), needle) {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

type sortKey struct {
	known bool
	num   float64
	text  string
}

// Sort returns a stably sorted copy of models. Unknown values ("-", null,
// unparseable) always come after known ones, whatever the order. Numeric
// columns honour their polarity; text columns use English collation.
// An unrecognised field returns the input order unchanged.
func Sort(models []types.Model, field Field, order Order) []types.Model {
	out := append([]types.Model(nil), models...)
	spec, ok := Lookup(field)
	if !ok {
		return out
	}

	keys := make([]sortKey, len(out))
	for i, m := range out {
		keys[i] = spec.key(m)
	}
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}

	var less func(a, b sortKey) bool
	if spec.Kind == KindText {
		col := collate.New(language.English)
		less = func(a, b sortKey) bool {
			c := col.CompareString(a.text, b.text)
			if order == Desc {
				return c > 0
			}
			return c < 0
		}
	} else {
		descending := (order == Desc) != (spec.Polarity == HigherIsBetter)
		less = func(a, b sortKey) bool {
			if descending {
				return a.num > b.num
			}
			return a.num < b.num
		}
	}

	sort.SliceStable(idx, func(i, j int) bool {
		a, b := keys[idx[i]], keys[idx[j]]
		if a.known != b.known {
			return a.known
		}
		if !a.known {
			return false
		}
		return less(a, b)
	})

	sorted := make([]types.Model, len(out))
	for i, k := range idx {
		sorted[i] = out[k]
	}
	return sorted
}

func (s Spec) key(m types.Model) sortKey {
	if s.Kind == KindText {
		v := s.text(m)
		if v == "" || v == "-" {
			return sortKey{}
		}
		return sortKey{known: true, text: v}
	}
	n, ok := s.number(m).Float()
	return sortKey{known: ok, num: n}
}
