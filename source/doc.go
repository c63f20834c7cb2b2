// Package source provides pluggable acquisition of raw LAS document text.
//
// The parser core never reads files or sockets itself; it consumes a
// Source, and the host application decides which concrete implementation
// to inject. Built-in sources cover local files, HTTP(S) URLs, io.Readers,
// and in-memory strings. A scheme registry maps URIs to sources:
//
//	src, err := source.Open("https://example.com/well.las")
//	src, err := source.Open("file:///data/well.las")
//	src, err := source.Open("well.las") // bare path = file
//
// Custom schemes register a factory, typically in an init function:
//
//	source.Register("s3", func(target string) (source.Source, error) {
//	    return newS3Source(target)
//	})
//
// Watch re-reads a file whenever it changes on disk, for hosts that keep a
// parsed view current while a logging tool appends.
package source
