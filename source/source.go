package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Source delivers the full text of one LAS document. Implementations do
// not retry or cache; a failed read surfaces as-is and leaves no partial
// state behind.
type Source interface {
	ReadText(ctx context.Context) (string, error)
}

// FileSource reads a document from the local filesystem.
type FileSource struct {
	Path string
}

// File creates a source for a local file path.
func File(path string) *FileSource {
	return &FileSource{Path: path}
}

// ReadText reads the whole file.
func (s *FileSource) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("read las file: %w", err)
	}
	return string(raw), nil
}

// HTTPSource fetches a document over HTTP(S).
type HTTPSource struct {
	URL string

	// Client overrides the HTTP client. Nil uses http.DefaultClient.
	Client *http.Client
}

// HTTP creates a source for an HTTP(S) URL.
func HTTP(url string) *HTTPSource {
	return &HTTPSource{URL: url}
}

// ReadText performs a single GET honoring the context. Non-2xx responses
// are errors.
func (s *HTTPSource) ReadText(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return "", fmt.Errorf("build las request: %w", err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch las document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch las document: unexpected status %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read las response: %w", err)
	}
	return string(raw), nil
}

// ReaderSource drains an io.Reader once.
type ReaderSource struct {
	R io.Reader
}

// Reader creates a source wrapping an io.Reader. The reader is consumed on
// the first ReadText call.
func Reader(r io.Reader) *ReaderSource {
	return &ReaderSource{R: r}
}

// ReadText drains the wrapped reader.
func (s *ReaderSource) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	raw, err := io.ReadAll(s.R)
	if err != nil {
		return "", fmt.Errorf("read las stream: %w", err)
	}
	return string(raw), nil
}

// StringSource serves an in-memory document.
type StringSource struct {
	Text string
}

// String creates a source for an in-memory blob.
func String(text string) *StringSource {
	return &StringSource{Text: text}
}

// ReadText returns the blob.
func (s *StringSource) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.Text, nil
}
