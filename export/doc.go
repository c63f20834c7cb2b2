// Package export renders parsed LAS documents into output artifacts.
//
// CSV follows the canonical contract: the comma-joined header line, a
// newline, then one comma-joined line per data row. Values render as their
// raw document tokens, so numbers round-trip untouched. JSON produces a
// self-contained Document snapshot, and DocumentSchema describes its shape
// as a JSON Schema for consumers that validate artifacts downstream.
//
// Delivery is the caller's concern; WriteCSV and WriteJSON are thin
// helpers over an io.Writer.
package export
