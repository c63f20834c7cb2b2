// Package las is the high-level facade over a parsed LAS document.
//
// A Log is constructed from raw text or loaded through a source.Source.
// The raw text is immutable; sections are extracted on demand and memoized,
// so every accessor is idempotent and safe to call repeatedly.
//
// Example usage:
//
//	log := las.Parse(text)
//	curves, err := log.Header()       // ["DEPT", "GR", ...]
//	rows, err := log.Data()           // data.Matrix
//	gr, err := log.Column("GR")
//	csv, err := log.ToCSV()
//
// Every accessor either fully succeeds or fully fails with a *las.Error
// whose message names the underlying kind (section absent, column not
// found, malformed line...). Use errors.Is to discriminate when needed.
package las
