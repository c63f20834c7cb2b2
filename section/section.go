package section

import (
	"regexp"
	"strings"
)

// Kind identifies a LAS section by its one-letter marker code.
type Kind byte

const (
	// Version is the ~V section holding format version and wrap mode.
	Version Kind = 'V'

	// Well is the ~W section holding well parameters (NULL, STRT, STOP...).
	Well Kind = 'W'

	// Curve is the ~C section declaring the data columns.
	Curve Kind = 'C'

	// Parameter is the optional ~P section holding log parameters.
	Parameter Kind = 'P'

	// Other is the optional ~O free-form section.
	Other Kind = 'O'

	// Data is the ~A section holding the whitespace-delimited data matrix.
	Data Kind = 'A'
)

// Kinds lists all section kinds in conventional document order.
var Kinds = []Kind{Version, Well, Curve, Parameter, Other, Data}

// String returns the conventional section name for error messages.
func (k Kind) String() string {
	switch k {
	case Version:
		return "version"
	case Well:
		return "well"
	case Curve:
		return "curve"
	case Parameter:
		return "parameter"
	case Other:
		return "other"
	case Data:
		return "data"
	}
	return "unknown"
}

// markerRE matches the start of any section marker line.
var markerRE = regexp.MustCompile(`(?m)^[ \t]*~`)

// Splitter extracts section bodies from a LAS document.
// It compiles one marker pattern per section kind and caches them
// for repeated matching.
type Splitter struct {
	patterns map[Kind]*regexp.Regexp
}

// NewSplitter creates a splitter with patterns for all six section kinds.
func NewSplitter() *Splitter {
	s := &Splitter{patterns: make(map[Kind]*regexp.Regexp, len(Kinds))}
	for _, k := range Kinds {
		// Marker: ~ + code letter, case-insensitive, optionally followed
		// by a label on the same line ("~VERSION", "~C INFORMATION").
		s.patterns[k] = regexp.MustCompile(`(?mi)^[ \t]*~` + string(rune(k)) + `[^\n]*`)
	}
	return s
}

// Split returns the body of the requested section: everything between the
// end of its marker line and the next marker line (or end of document).
// ok is false when the marker is absent. Absence is not an error at this
// layer; callers decide whether it is fatal.
func (s *Splitter) Split(doc string, kind Kind) (body string, ok bool) {
	pattern, known := s.patterns[kind]
	if !known {
		return "", false
	}

	loc := pattern.FindStringIndex(doc)
	if loc == nil {
		return "", false
	}

	// Body starts after the marker line's newline.
	start := loc[1]
	if nl := strings.IndexByte(doc[start:], '\n'); nl >= 0 {
		start += nl + 1
	} else {
		// Marker is the last line of the document.
		return "", true
	}

	end := len(doc)
	if next := markerRE.FindStringIndex(doc[start:]); next != nil {
		end = start + next[0]
	}

	return doc[start:end], true
}

// Contains reports whether the document carries a marker for the kind.
func (s *Splitter) Contains(doc string, kind Kind) bool {
	pattern, known := s.patterns[kind]
	return known && pattern.MatchString(doc)
}

// defaultSplitter backs the package-level convenience functions.
var defaultSplitter = NewSplitter()

// Split extracts a section body using the default splitter.
func Split(doc string, kind Kind) (string, bool) {
	return defaultSplitter.Split(doc, kind)
}

// Contains reports marker presence using the default splitter.
func Contains(doc string, kind Kind) bool {
	return defaultSplitter.Contains(doc, kind)
}

// StripComments removes comment lines from a block of text. The block is
// trimmed, each line is left-trimmed, and lines whose first character is
// '#' are dropped. Line order is preserved. Empty input yields empty output.
func StripComments(block string) string {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimLeft(line, " \t")
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}
