// Package record decodes LAS property-definition lines and builds
// name-keyed property tables.
//
// A property line follows the LAS 2.0 convention:
//
//	MNEMONIC.UNIT   VALUE : DESCRIPTION
//
// The four fields are separated by ambiguous, variable-width whitespace;
// unit and description are optional and the value slot may carry stray
// padding tokens. ParseLine applies a fixed sequence of disambiguation
// rules rather than a single split, so the policy stays auditable:
//
//  1. The mnemonic ends at the first '.' or whitespace.
//  2. A '.' immediately followed by whitespace means the unit is absent.
//  3. Otherwise the unit is the non-space run after the '.'.
//  4. The remainder splits on the first ':' into value and description.
//  5. An empty description becomes the literal "none".
//  6. The value is the last non-empty space-delimited segment of the
//     value region; a trailing blank artifact falls back to the segment
//     before it.
//
// Example usage:
//
//	rec, err := record.ParseLine("NULL.  -999.25 : NULL VALUE")
//	// rec.Mnem == "NULL", rec.Value == "-999.25"
//
//	table, err := record.ParseTable(wellBody)
//	null, ok := table.Get("NULL")
package record
