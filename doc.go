// Package laskit provides parsing of Log ASCII Standard (LAS 2.0) well-log
// files into structured sections, tables, and data matrices.
//
// laskit is designed to be imported à la carte. Each subpackage can be used
// independently:
//
//   - section: Comment filtering and ~X section-marker splitting
//   - record: Property-line grammar (MNEM.UNIT VALUE : DESCR) and tables
//   - data: Value coercion and fixed-width data-matrix decoding
//   - las: High-level facade over a loaded LAS document
//   - source: Pluggable text acquisition (file, HTTP, reader, watcher)
//   - export: CSV and JSON output of parsed documents
//
// # Quick Start
//
// Parse a document already held in memory:
//
//	import "github.com/randalmurphal/laskit/las"
//	log := las.Parse(text)
//	curves, _ := log.Header()
//	rows, _ := log.Data()
//
// Load through an acquisition source:
//
//	import "github.com/randalmurphal/laskit/source"
//	src, _ := source.Open("https://example.com/well.las")
//	log, err := las.Load(ctx, src)
//
// Emit CSV:
//
//	csv, err := log.ToCSV()
package laskit
