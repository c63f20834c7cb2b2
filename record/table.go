package record

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/laskit/section"
)

// Table is an insertion-ordered, name-keyed collection of property records.
// Later records with a duplicate mnemonic overwrite earlier ones while
// keeping the original position, matching a mapping keyed by name.
type Table struct {
	byName map[string]Record
	order  []string
}

// ParseTable decodes a well, curve, or parameter section body: comments are
// filtered, each non-blank line is decoded with ParseLine, and records are
// inserted by mnemonic. An empty or absent body yields ErrEmptySection.
func ParseTable(body string) (*Table, error) {
	t := &Table{byName: make(map[string]Record)}

	for i, line := range splitLines(body) {
		rec, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		t.put(rec)
	}

	if len(t.order) == 0 {
		return nil, ErrEmptySection
	}
	return t, nil
}

func (t *Table) put(rec Record) {
	if _, exists := t.byName[rec.Mnem]; !exists {
		t.order = append(t.order, rec.Mnem)
	}
	t.byName[rec.Mnem] = rec
}

// Get returns the record for a mnemonic.
func (t *Table) Get(name string) (Record, bool) {
	rec, ok := t.byName[name]
	return rec, ok
}

// Names returns the mnemonics in first-insertion order.
func (t *Table) Names() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// Records returns the records in first-insertion order.
func (t *Table) Records() []Record {
	recs := make([]Record, 0, len(t.order))
	for _, name := range t.order {
		recs = append(recs, t.byName[name])
	}
	return recs
}

// Len returns the number of distinct mnemonics in the table.
func (t *Table) Len() int {
	return len(t.order)
}

// splitLines filters comments from a section body and returns its non-blank,
// left-trimmed lines.
func splitLines(body string) []string {
	clean := section.StripComments(body)
	if clean == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(clean, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
