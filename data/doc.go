// Package data decodes the ~A section of a LAS document into a matrix of
// typed values.
//
// The data section is treated as one undifferentiated whitespace-delimited
// token stream, regardless of the document's wrap mode. Each token is
// coerced to a number when it parses as one, otherwise kept as text, and
// the stream is grouped into fixed-width rows matching the declared curve
// count. A trailing partial row is emitted short rather than rejected.
//
// Example usage:
//
//	m, err := data.Parse(body, len(curves), data.Options{})
//	kept := m.StripNull(-999.25)
package data
