// Package cutoff backfills knowledge-cutoff dates from a spreadsheet export.
package cutoff

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"llmboard/internal/common/fsutil"
	"llmboard/pkg/types"
)

const (
	// Placeholder marks a record whose cutoff was never filled in. It is the
	// serial number a spreadsheet produced for a date cell during import.
	Placeholder = "45536"
	// NotAvailable replaces the placeholder when no source row matches.
	NotAvailable = "N/A"

	nameColumn   = 0
	cutoffColumn = 11
)

// Source maps model names to cutoff strings in file order.
type Source struct {
	rows *orderedmap.OrderedMap[string, string]
}

// Len reports the number of distinct names.
func (s *Source) Len() int { return s.rows.Len() }

// Lookup returns the cutoff for an exact name.
func (s *Source) Lookup(name string) (string, bool) { return s.rows.Get(name) }

// LoadFile reads a CSV export from path.
func LoadFile(path string) (*Source, error) {
	p, err := fsutil.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck
	return Parse(f)
}

// Parse reads the export. The first row is a header. Rows with no cutoff
// column are skipped; a blank cutoff becomes NotAvailable. When a name
// repeats, the later row wins but keeps the earlier position.
func Parse(r io.Reader) (*Source, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	src := &Source{rows: orderedmap.New[string, string]()}
	header := true
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: parse: %w", err)
		}
		if header {
			header = false
			continue
		}
		if len(rec) <= cutoffColumn {
			continue
		}
		name := strings.TrimSpace(rec[nameColumn])
		if name == "" {
			continue
		}
		cutoff := strings.TrimSpace(rec[cutoffColumn])
		if cutoff == "" {
			cutoff = NotAvailable
		}
		src.rows.Set(name, cutoff)
	}
	return src, nil
}

// Match is how a record's cutoff was resolved.
type Match struct {
	ID     string
	Name   string
	Source string // matched source name, empty when unmatched
	Cutoff string
	Fuzzy  bool
}

// Report summarises a backfill run.
type Report struct {
	Exact     []Match
	Fuzzy     []Match
	Unmatched []Match
}

// Updated is the number of records whose placeholder was replaced.
func (r Report) Updated() int { return len(r.Exact) + len(r.Fuzzy) + len(r.Unmatched) }

// Apply replaces the placeholder cutoff on every record that carries it.
// Exact name matches win; otherwise the first source name, in file order,
// that contains or is contained in the model name (or equals it ignoring
// case) is used. Records with no match get NotAvailable. Only
// cutoffKnowledge is modified.
func Apply(models []types.Model, src *Source) Report {
	var rep Report
	for i := range models {
		m := &models[i]
		if m.CutoffKnowledge != Placeholder {
			continue
		}
		if v, ok := src.Lookup(m.Name); ok {
			m.CutoffKnowledge = v
			rep.Exact = append(rep.Exact, Match{ID: m.ID, Name: m.Name, Source: m.Name, Cutoff: v})
			continue
		}
		if name, v, ok := src.fuzzy(m.Name); ok {
			m.CutoffKnowledge = v
			rep.Fuzzy = append(rep.Fuzzy, Match{ID: m.ID, Name: m.Name, Source: name, Cutoff: v, Fuzzy: true})
			continue
		}
		m.CutoffKnowledge = NotAvailable
		rep.Unmatched = append(rep.Unmatched, Match{ID: m.ID, Name: m.Name, Cutoff: NotAvailable})
	}
	return rep
}

func (s *Source) fuzzy(name string) (string, string, bool) {
	for pair := s.rows.Oldest(); pair != nil; pair = pair.Next() {
		k := pair.Key
		if strings.Contains(name, k) || strings.Contains(k, name) || strings.EqualFold(name, k) {
			return k, pair.Value, true
		}
	}
	return "", "", false
}
