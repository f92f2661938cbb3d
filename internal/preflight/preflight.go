package preflight

import (
	"context"
	"path/filepath"

	"folio/internal/config"
	"folio/internal/searchindex"
	"folio/internal/store"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every applicable check for the given config. When
// projectDir is non-empty the project-level checks run against it as well;
// the search index check is gated by the search config toggle.
func RunAll(ctx context.Context, cfg *config.Config, projectDir string) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	// Projects directory (always checked)
	results = append(results, CheckDirectoryAccess("Projects directory", cfg.Paths.ProjectsDir))

	// Log directory (when configured)
	if cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}

	if projectDir == "" {
		return results
	}

	indexPath := filepath.Join(projectDir, store.IndexFileName)
	result, p := CheckIndexDocument(indexPath, store.Options{})
	results = append(results, result)
	if p != nil {
		results = append(results, CheckChapterFiles(indexPath, p))
	}
	results = append(results, CheckProjectLock(projectDir))

	if cfg.Search.Enabled {
		dbPath := searchindex.PathFor(projectDir, cfg.Search.DBName)
		results = append(results, CheckSearchIndex(ctx, dbPath, p))
	}

	return results
}

// Passed reports whether every result in the set passed.
func Passed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
