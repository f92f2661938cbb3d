package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"folio/internal/logging"
)

// IndexFileName is the conventional index document name inside a project
// directory. Save and Load accept any path; the CLI and diagnostics use this
// name when they are handed a directory.
const IndexFileName = "project.json"

// DefaultChapterDirName is the directory beside the index document that
// holds externalized chapter bodies.
const DefaultChapterDirName = "chapters"

var (
	// ErrParse marks an index document that is not syntactically valid JSON.
	// It is the only load failure that is never repaired.
	ErrParse = errors.New("document parse failure")

	// ErrProjectLocked reports that another process holds the project lock.
	ErrProjectLocked = errors.New("project is locked by another process")
)

// Options control how projects are written to and read from disk.
type Options struct {
	// ExternalizeChapters writes each chapter body to its own file and
	// blanks the content field in the index document.
	ExternalizeChapters bool
	// ChapterDirName overrides the directory name for chapter body files.
	ChapterDirName string
	// BackupCount is how many timestamped copies of the previous index to
	// keep per project. Zero disables backups.
	BackupCount int
	// Logger receives save/load progress and repair warnings. Nil selects
	// the no-op logger.
	Logger *slog.Logger
}

func (o Options) chapterDir() string {
	if dir := strings.TrimSpace(o.ChapterDirName); dir != "" {
		return dir
	}
	return DefaultChapterDirName
}

func (o Options) logger() *slog.Logger {
	logger := o.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return logging.NewComponentLogger(logger, "store")
}

// writeFileAtomic writes data to path via a temp file and rename so readers
// never observe a half-written index document.
func writeFileAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // cleanup on failure
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
