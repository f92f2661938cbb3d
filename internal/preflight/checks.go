package preflight

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"folio/internal/project"
	"folio/internal/searchindex"
	"folio/internal/store"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckIndexDocument parses the index document at path. The loaded project is
// returned alongside the result so follow-on checks can reuse it; it is nil
// when the document is missing or unparseable.
func CheckIndexDocument(path string, opts store.Options) (Result, *project.Project) {
	const name = "Index document"

	p, warnings, err := store.Load(path, opts)
	if err != nil {
		if errors.Is(err, store.ErrParse) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: not valid JSON)", path)}, nil
		}
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}, nil
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}, nil
	}
	if len(warnings) > 0 {
		detail := fmt.Sprintf("%s (parsed, %d fields repaired in memory)", path, len(warnings))
		return Result{Name: name, Passed: true, Detail: detail}, p
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (parsed cleanly)", path)}, p
}

// CheckChapterFiles audits the chapter files referenced by externalized
// chapters. A project with no externalized chapters passes trivially.
func CheckChapterFiles(indexPath string, p *project.Project) Result {
	const name = "Chapter files"

	dir := filepath.Dir(indexPath)
	var externalized, missing int
	for i := range p.Manuscript.Chapters {
		ch := &p.Manuscript.Chapters[i]
		if ch.FilePath == "" {
			continue
		}
		externalized++
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(ch.FilePath))); err != nil {
			missing++
		}
	}
	if externalized == 0 {
		return Result{Name: name, Passed: true, Detail: "no externalized chapters"}
	}
	if missing > 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%d of %d chapter files missing", missing, externalized)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("all %d chapter files present", externalized)}
}

// CheckProjectLock probes whether the project lock can be acquired. The
// probe lock is released immediately.
func CheckProjectLock(dir string) Result {
	const name = "Project lock"

	lock, err := store.LockProject(dir)
	if errors.Is(err, store.ErrProjectLocked) {
		return Result{Name: name, Detail: "held by another process"}
	}
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("probe failed: %v", err)}
	}
	if err := lock.Unlock(); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("release failed: %v", err)}
	}
	return Result{Name: name, Passed: true, Detail: "available"}
}

// CheckSearchIndex verifies the search database opens and reports its size.
// A database that has never been built passes; it is created on demand. The
// project is optional and only used to report staleness.
func CheckSearchIndex(ctx context.Context, path string, p *project.Project) Result {
	const name = "Search index"

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Result{Name: name, Passed: true, Detail: "not built yet"}
	}

	idx, err := searchindex.Open(path, searchindex.Options{})
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	defer idx.Close()

	count, err := idx.Count(ctx)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	if p != nil {
		stale, err := idx.Stale(ctx, p.UpdatedAt)
		if err == nil && stale {
			return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d chunks (stale, rebuilt on next search)", count)}
		}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d chunks", count)}
}
