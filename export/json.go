package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/randalmurphal/laskit/data"
	"github.com/randalmurphal/laskit/record"
)

// Log is the facade surface the JSON exporter consumes. *las.Log satisfies
// it; tests may substitute a lighter implementation.
type Log interface {
	Header() ([]string, error)
	HeaderDescriptions() (map[string]string, error)
	Data() (data.Matrix, error)
	Version() (float64, error)
	Wrap() (bool, error)
	Other() (string, error)
	WellParams() (*record.Table, error)
	LogParams() (*record.Table, error)
}

// Document is a self-contained JSON snapshot of a parsed LAS document.
type Document struct {
	// Version is the LAS format version from the ~V section.
	Version float64 `json:"version"`

	// Wrapped reports the declared wrap mode.
	Wrapped bool `json:"wrapped"`

	// Curves lists the declared columns in matrix order.
	Curves []Curve `json:"curves"`

	// Well maps well-parameter mnemonics to their values. Omitted when
	// the ~W section is absent.
	Well map[string]string `json:"well,omitempty"`

	// Params maps log-parameter mnemonics to their values. Omitted when
	// the optional ~P section is absent.
	Params map[string]string `json:"params,omitempty"`

	// Other carries the comment-filtered ~O free text.
	Other string `json:"other,omitempty"`

	// Rows is the data matrix as raw document tokens, row-major.
	Rows [][]string `json:"rows"`
}

// Curve describes one declared data column.
type Curve struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// NewDocument snapshots a parsed log. Header, data, and version metadata
// are required; the optional well, parameter, and other sections are
// omitted from the snapshot when absent.
func NewDocument(src Log) (*Document, error) {
	header, err := src.Header()
	if err != nil {
		return nil, err
	}

	version, err := src.Version()
	if err != nil {
		return nil, err
	}
	wrapped, err := src.Wrap()
	if err != nil {
		return nil, err
	}

	m, err := src.Data()
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Version: version,
		Wrapped: wrapped,
		Curves:  make([]Curve, 0, len(header)),
		Rows:    make([][]string, 0, len(m)),
	}

	descr, err := src.HeaderDescriptions()
	if err != nil {
		descr = nil
	}
	for _, name := range header {
		doc.Curves = append(doc.Curves, Curve{Name: name, Description: descr[name]})
	}

	for _, row := range m {
		doc.Rows = append(doc.Rows, row.Strings())
	}

	if well, err := src.WellParams(); err == nil {
		doc.Well = tableValues(well)
	}
	if params, err := src.LogParams(); err == nil {
		doc.Params = tableValues(params)
	}
	if other, err := src.Other(); err == nil {
		doc.Other = other
	}

	return doc, nil
}

// JSON renders the document snapshot of a parsed log.
func JSON(src Log) ([]byte, error) {
	doc, err := NewDocument(src)
	if err != nil {
		return nil, err
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutput, err)
	}
	return raw, nil
}

// WriteJSON renders the JSON artifact to a writer.
func WriteJSON(w io.Writer, src Log) error {
	raw, err := JSON(src)
	if err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}
	return nil
}

func tableValues(t *record.Table) map[string]string {
	values := make(map[string]string, t.Len())
	for _, rec := range t.Records() {
		values[rec.Mnem] = rec.Value
	}
	return values
}
