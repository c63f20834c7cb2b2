package las

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/randalmurphal/laskit/data"
	"github.com/randalmurphal/laskit/export"
	"github.com/randalmurphal/laskit/record"
	"github.com/randalmurphal/laskit/section"
	"github.com/randalmurphal/laskit/source"
)

// Log is a loaded LAS document. The raw text is immutable; section bodies
// are extracted on demand and memoized, so accessors are idempotent and
// safe for repeated calls.
type Log struct {
	raw string
	cfg Config

	splitter *section.Splitter

	mu       sync.Mutex
	sections map[section.Kind]sectionBody
}

type sectionBody struct {
	body string
	ok   bool
}

// Parse wraps raw LAS text in a Log with default options.
func Parse(text string) *Log {
	return ParseWith(text, DefaultConfig())
}

// ParseWith wraps raw LAS text in a Log with explicit options.
func ParseWith(text string, cfg Config) *Log {
	return &Log{
		raw:      text,
		cfg:      cfg,
		splitter: section.NewSplitter(),
		sections: make(map[section.Kind]sectionBody),
	}
}

// Load acquires the document text from a source and wraps it with default
// options. A failed acquisition returns no Log; there is no partially
// parsed state.
func Load(ctx context.Context, src source.Source) (*Log, error) {
	return LoadWith(ctx, src, DefaultConfig())
}

// LoadWith acquires the document text from a source with explicit options.
func LoadWith(ctx context.Context, src source.Source, cfg Config) (*Log, error) {
	text, err := src.ReadText(ctx)
	if err != nil {
		return nil, newError("load", err.Error(), ErrAcquisition)
	}
	return ParseWith(text, cfg), nil
}

// Raw returns the document text as loaded.
func (l *Log) Raw() string {
	return l.raw
}

// section returns a memoized section body.
func (l *Log) section(kind section.Kind) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cached, hit := l.sections[kind]; hit {
		return cached.body, cached.ok
	}

	body, ok := l.splitter.Split(l.raw, kind)
	l.sections[kind] = sectionBody{body: body, ok: ok}
	return body, ok
}

// Header returns the ordered curve mnemonics. The order defines the
// column order of the data matrix.
func (l *Log) Header() ([]string, error) {
	body, ok := l.section(section.Curve)
	if !ok {
		return nil, newError("header", section.Curve.String(), ErrSectionAbsent)
	}

	names := record.Mnemonics(body)
	if len(names) == 0 {
		return nil, newError("header", section.Curve.String(), ErrPropertyNotFound)
	}
	return names, nil
}

// HeaderDescriptions maps each curve mnemonic to its description.
func (l *Log) HeaderDescriptions() (map[string]string, error) {
	table, err := l.table(section.Curve, "header descriptions")
	if err != nil {
		return nil, err
	}

	descr := make(map[string]string, table.Len())
	for _, rec := range table.Records() {
		descr[rec.Mnem] = rec.Descr
	}
	return descr, nil
}

// Data decodes the ~A section into rows whose width equals the curve
// count. A trailing short row survives rather than failing the document.
func (l *Log) Data() (data.Matrix, error) {
	header, err := l.Header()
	if err != nil {
		return nil, err
	}

	body, ok := l.section(section.Data)
	if !ok {
		return nil, newError("data", section.Data.String(), ErrSectionAbsent)
	}

	m, err := data.Parse(body, len(header), data.Options{LegacyZeroStrings: l.cfg.LegacyZeroStrings})
	if err != nil {
		return nil, newError("data", "", err)
	}
	return m, nil
}

// DataStripped returns the data matrix without rows containing the NULL
// sentinel.
func (l *Log) DataStripped() (data.Matrix, error) {
	m, err := l.Data()
	if err != nil {
		return nil, err
	}

	sentinel, err := l.nullSentinel()
	if err != nil {
		return nil, err
	}
	return m.StripNull(sentinel), nil
}

// nullSentinel resolves the NULL value: the config override when set,
// otherwise the well table's NULL property.
func (l *Log) nullSentinel() (float64, error) {
	if l.cfg.NullValue != nil {
		return *l.cfg.NullValue, nil
	}

	well, err := l.table(section.Well, "null sentinel")
	if err != nil {
		return 0, err
	}

	rec, ok := well.Get("NULL")
	if !ok {
		return 0, newError("null sentinel", "NULL", ErrPropertyNotFound)
	}

	sentinel, err := strconv.ParseFloat(rec.Value, 64)
	if err != nil {
		return 0, newError("null sentinel", rec.Value, ErrPropertyNotFound)
	}
	return sentinel, nil
}

// Column returns the values of the named curve, in row order. The first
// occurrence wins when the header repeats a mnemonic.
func (l *Log) Column(name string) ([]data.Value, error) {
	return l.column(name, l.Data)
}

// ColumnStripped returns the named curve with NULL rows removed.
func (l *Log) ColumnStripped(name string) ([]data.Value, error) {
	return l.column(name, l.DataStripped)
}

func (l *Log) column(name string, rows func() (data.Matrix, error)) ([]data.Value, error) {
	header, err := l.Header()
	if err != nil {
		return nil, err
	}

	index := -1
	for i, mnem := range header {
		if mnem == name {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, newError("column", name, ErrColumnNotFound)
	}

	m, err := rows()
	if err != nil {
		return nil, err
	}
	return m.Column(index), nil
}

// RowCount returns the number of data rows.
func (l *Log) RowCount() (int, error) {
	m, err := l.Data()
	if err != nil {
		return 0, err
	}
	return len(m), nil
}

// ColumnCount returns the number of declared curves.
func (l *Log) ColumnCount() (int, error) {
	header, err := l.Header()
	if err != nil {
		return 0, err
	}
	return len(header), nil
}

// Version returns the LAS format version from the ~V section.
func (l *Log) Version() (float64, error) {
	meta, err := l.metadata()
	if err != nil {
		return 0, err
	}
	return meta.version, nil
}

// Wrap reports whether the document declares wrapped mode. The data
// tokenizer does not special-case wrapped rows; this only surfaces the
// declaration.
func (l *Log) Wrap() (bool, error) {
	meta, err := l.metadata()
	if err != nil {
		return false, err
	}
	return meta.wrapped, nil
}

type metadata struct {
	version float64
	wrapped bool
}

// metadata decodes the ~V section positionally: the first property line
// carries the version number, the second the wrap flag.
func (l *Log) metadata() (metadata, error) {
	body, ok := l.section(section.Version)
	if !ok {
		return metadata{}, newError("version", section.Version.String(), ErrSectionAbsent)
	}

	table, err := record.ParseTable(body)
	if err != nil {
		return metadata{}, newError("version", section.Version.String(), err)
	}

	recs := table.Records()
	if len(recs) < 2 {
		return metadata{}, newError("version", section.Version.String(), ErrMetadata)
	}

	version, err := strconv.ParseFloat(recs[0].Value, 64)
	if err != nil {
		return metadata{}, newError("version", recs[0].Value, ErrMetadata)
	}

	return metadata{
		version: version,
		wrapped: strings.EqualFold(recs[1].Value, "yes"),
	}, nil
}

// Other returns the comment-filtered free text of the ~O section. Absence
// yields an empty string unless StrictSections is set.
func (l *Log) Other() (string, error) {
	body, ok := l.section(section.Other)
	if !ok {
		if l.cfg.StrictSections {
			return "", newError("other", section.Other.String(), ErrSectionAbsent)
		}
		return "", nil
	}
	return section.StripComments(body), nil
}

// WellParams returns the ~W property table.
func (l *Log) WellParams() (*record.Table, error) {
	return l.table(section.Well, "well parameters")
}

// CurveParams returns the ~C property table.
func (l *Log) CurveParams() (*record.Table, error) {
	return l.table(section.Curve, "curve parameters")
}

// LogParams returns the ~P property table.
func (l *Log) LogParams() (*record.Table, error) {
	return l.table(section.Parameter, "log parameters")
}

// table parses a property table, failing with a property-not-found
// condition naming the section when the body is absent or empty.
func (l *Log) table(kind section.Kind, op string) (*record.Table, error) {
	body, ok := l.section(kind)
	if !ok {
		return nil, newError(op, kind.String(), ErrPropertyNotFound)
	}

	t, err := record.ParseTable(body)
	if err != nil {
		return nil, newError(op, kind.String(), err)
	}
	return t, nil
}

// ToCSV renders the header and full data matrix under the CSV contract:
// comma-joined header line, then one comma-joined line per row.
func (l *Log) ToCSV() (string, error) {
	header, err := l.Header()
	if err != nil {
		return "", err
	}

	m, err := l.Data()
	if err != nil {
		return "", err
	}
	return export.CSV(header, m), nil
}

// ToCSVStripped renders the CSV with NULL rows removed.
func (l *Log) ToCSVStripped() (string, error) {
	header, err := l.Header()
	if err != nil {
		return "", err
	}

	m, err := l.DataStripped()
	if err != nil {
		return "", err
	}
	return export.CSV(header, m), nil
}
