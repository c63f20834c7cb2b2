// Package section splits a raw LAS document into its marker-delimited
// sections and strips comment lines.
//
// LAS documents are divided by marker lines beginning with ~ followed by a
// one-letter section code (~V version, ~W well, ~C curve, ~P parameter,
// ~O other, ~A data). Markers are case-insensitive and may carry a trailing
// label on the same line ("~VERSION", "~C INFORMATION").
//
// Example usage:
//
//	body, ok := section.Split(doc, section.Curve)
//	if !ok {
//	    // curve section absent
//	}
//	clean := section.StripComments(body)
package section
