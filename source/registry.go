package source

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownScheme indicates a URI scheme with no registered factory.
var ErrUnknownScheme = errors.New("unknown source scheme")

// Factory creates a Source for a target. For "file" the target is the
// path; for network schemes it is the full URI.
type Factory func(target string) (Source, error)

// registry stores registered scheme factories.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

func init() {
	Register("file", func(target string) (Source, error) {
		return File(target), nil
	})
	Register("http", func(target string) (Source, error) {
		return HTTP(target), nil
	})
	Register("https", func(target string) (Source, error) {
		return HTTP(target), nil
	})
}

// Register adds a scheme factory to the registry. Panics if the scheme is
// already registered.
func Register(scheme string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[scheme]; exists {
		panic(fmt.Sprintf("source scheme %q already registered", scheme))
	}
	registry[scheme] = factory
}

// Open creates a Source for a URI. A URI without a scheme is treated as a
// local file path. Returns ErrUnknownScheme for unregistered schemes.
//
// Example:
//
//	src, err := source.Open("https://logs.example.com/well-12.las")
func Open(uri string) (Source, error) {
	scheme, rest, found := strings.Cut(uri, "://")
	if !found {
		scheme, rest = "file", uri
	}

	registryMu.RLock()
	factory, ok := registry[scheme]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, scheme)
	}

	target := rest
	if scheme != "file" {
		target = uri
	}
	return factory(target)
}

// Available returns the registered schemes, sorted for consistent output.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	schemes := make([]string, 0, len(registry))
	for scheme := range registry {
		schemes = append(schemes, scheme)
	}
	sort.Strings(schemes)
	return schemes
}

// IsRegistered checks if a scheme has a factory.
func IsRegistered(scheme string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()

	_, ok := registry[scheme]
	return ok
}

// Unregister removes a scheme from the registry. Primarily useful for
// tests.
func Unregister(scheme string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	delete(registry, scheme)
}
