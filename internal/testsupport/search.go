package testsupport

import (
	"testing"

	"folio/internal/searchindex"
)

// MustOpenIndex opens a search index at path for tests and registers cleanup.
func MustOpenIndex(t testing.TB, path string, opts searchindex.Options) *searchindex.Index {
	t.Helper()

	idx, err := searchindex.Open(path, opts)
	if err != nil {
		t.Fatalf("searchindex.Open: %v", err)
	}
	t.Cleanup(func() {
		idx.Close()
	})
	return idx
}
