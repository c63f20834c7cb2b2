package record

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Sentinel errors for property parsing.
var (
	// ErrMalformedLine indicates a property line without the ':' separator
	// required to split value from description.
	ErrMalformedLine = errors.New("property line missing ':' separator")

	// ErrEmptySection indicates a section body with no parsable property
	// lines.
	ErrEmptySection = errors.New("section has no property lines")
)

// Record is one decoded property-definition line.
type Record struct {
	// Mnem is the mnemonic identifying the property (e.g., "DEPT", "NULL").
	Mnem string

	// Unit is the unit of measure following the mnemonic's dot. Empty when
	// the line declares no unit.
	Unit string

	// Value is the value-slot content. May legitimately be empty for
	// curve-style lines such as "DEPT.M : Depth".
	Value string

	// Descr is the free-text description after the ':'. Lines with no
	// description carry the literal "none".
	Descr string
}

// ParseLine decodes a single property-definition line. The disambiguation
// rules are applied in the order documented in the package comment; they
// are deliberately positional, not grammatical, to match how LAS writers
// actually pad these lines.
func ParseLine(line string) (Record, error) {
	head, descr, found := strings.Cut(line, ":")
	if !found {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedLine, strings.TrimSpace(line))
	}

	descr = strings.TrimSpace(descr)
	if descr == "" {
		descr = "none"
	}

	// Tabs behave like single spaces for field separation.
	head = strings.TrimSpace(strings.ReplaceAll(head, "\t", " "))

	// Rule 1: mnemonic ends at the first '.' or whitespace.
	end := strings.IndexFunc(head, func(r rune) bool {
		return r == '.' || unicode.IsSpace(r)
	})
	if end < 0 {
		return Record{Mnem: head, Descr: descr}, nil
	}

	rec := Record{Mnem: head[:end], Descr: descr}

	rest := strings.TrimLeft(head[end:], " ")
	if strings.HasPrefix(rest, ".") {
		rest = rest[1:]
		// Rules 2 and 3: a '.' directly followed by whitespace means the
		// unit is absent; otherwise the unit runs to the next whitespace.
		switch sp := strings.IndexByte(rest, ' '); {
		case sp == 0:
			// unit absent
		case sp < 0:
			rec.Unit, rest = rest, ""
		default:
			rec.Unit, rest = rest[:sp], rest[sp:]
		}
	}

	// Rule 6: the value is the last segment of the remaining value region.
	// Splitting on single spaces keeps the blank artifacts that multi-space
	// separators produce, so a trailing blank falls back to the segment
	// before it.
	segs := strings.Split(rest, " ")
	value := segs[len(segs)-1]
	if value == "" && len(segs) > 1 {
		value = segs[len(segs)-2]
	}
	rec.Value = value

	return rec, nil
}

// Mnemonics returns the ordered mnemonic list of a section body: per line,
// the token preceding the first whitespace or '.'. Comment lines are
// filtered first. Order follows line order and duplicates are preserved;
// callers that index by name match the first occurrence.
func Mnemonics(body string) []string {
	var names []string

	for _, line := range splitLines(body) {
		end := strings.IndexFunc(line, func(r rune) bool {
			return r == '.' || unicode.IsSpace(r)
		})
		if end < 0 {
			names = append(names, line)
			continue
		}
		if end == 0 {
			continue
		}
		names = append(names, line[:end])
	}

	return names
}
