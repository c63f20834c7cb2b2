package data

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidWidth indicates a requested row width below one; decoding a
// data section requires at least one declared curve.
var ErrInvalidWidth = errors.New("row width must be at least 1")

// Options configures token coercion.
type Options struct {
	// LegacyZeroStrings preserves the historical coercion asymmetry: a
	// token whose numeric value is zero (e.g. "0" or "0.0") is kept as
	// text instead of becoming the number 0. Off by default, which treats
	// zero readings as numbers.
	LegacyZeroStrings bool `json:"legacy_zero_strings" yaml:"legacy_zero_strings" toml:"legacy_zero_strings"`
}

// Row is one ordered line of the data matrix. Its length equals the curve
// count except for a trailing short row in malformed documents.
type Row []Value

// Matrix is the ordered sequence of data rows, in document order.
type Matrix []Row

// Parse tokenizes a ~A section body and groups the coerced token stream
// into rows of the given width. The final partial chunk of a stream whose
// token count is not evenly divisible is emitted as a short row rather
// than rejected.
func Parse(body string, width int, opts Options) (Matrix, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}

	tokens := strings.Fields(strings.TrimSpace(body))
	if len(tokens) == 0 {
		return Matrix{}, nil
	}

	m := make(Matrix, 0, (len(tokens)+width-1)/width)
	for start := 0; start < len(tokens); start += width {
		end := start + width
		if end > len(tokens) {
			end = len(tokens)
		}
		row := make(Row, 0, end-start)
		for _, tok := range tokens[start:end] {
			row = append(row, coerce(tok, opts.LegacyZeroStrings))
		}
		m = append(m, row)
	}

	return m, nil
}

// StripNull returns a copy of the matrix without any row containing a
// value numerically equal to the NULL sentinel. Row order is preserved.
func (m Matrix) StripNull(sentinel float64) Matrix {
	kept := make(Matrix, 0, len(m))
	for _, row := range m {
		if row.containsNumber(sentinel) {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

// Column returns the values at index i of every row that is long enough.
func (m Matrix) Column(i int) []Value {
	col := make([]Value, 0, len(m))
	for _, row := range m {
		if i < len(row) {
			col = append(col, row[i])
		}
	}
	return col
}

// Strings renders a row as raw token text, one cell per token.
func (r Row) Strings() []string {
	cells := make([]string, len(r))
	for i, v := range r {
		cells[i] = v.String()
	}
	return cells
}

func (r Row) containsNumber(f float64) bool {
	for _, v := range r {
		if v.EqualNumber(f) {
			return true
		}
	}
	return false
}
