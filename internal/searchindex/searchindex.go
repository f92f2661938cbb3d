package searchindex

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"folio/internal/logging"
)

// DirName is the directory beside the index document that holds the search
// database and other derived state.
const DirName = ".folio"

// schemaVersion is the current chunk table layout. The index is a cache, so
// a version mismatch drops and recreates the tables instead of migrating.
const schemaVersion = 1

// ErrClosed reports an operation on an index whose database has been closed.
var ErrClosed = errors.New("search index is closed")

// Options control index construction.
type Options struct {
	// ChunkWords is the approximate chapter chunk size in words. Values
	// below one select the default of 200.
	ChunkWords int
	// Logger receives rebuild and query progress. Nil selects the no-op
	// logger.
	Logger *slog.Logger
}

func (o Options) chunkWords() int {
	if o.ChunkWords > 0 {
		return o.ChunkWords
	}
	return 200
}

func (o Options) logger() *slog.Logger {
	logger := o.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return logging.NewComponentLogger(logger, "searchindex")
}

// Index is a full-text search database for one project.
type Index struct {
	db         *sql.DB
	path       string
	chunkWords int
	logger     *slog.Logger
}

// PathFor returns the search database location for a project directory.
func PathFor(projectDir, dbName string) string {
	return filepath.Join(projectDir, DirName, dbName)
}

// Open connects to (or creates) the search database at path, creating parent
// directories as needed and resetting the tables when the schema version does
// not match.
func Open(path string, opts Options) (*Index, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create search index directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open search index: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	ix := &Index{
		db:         db,
		path:       path,
		chunkWords: opts.chunkWords(),
		logger:     opts.logger(),
	}
	if err := ix.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return ix, nil
}

// Close closes the underlying database connection.
func (ix *Index) Close() error {
	if ix == nil || ix.db == nil {
		return nil
	}
	err := ix.db.Close()
	ix.db = nil
	return err
}

// Path returns the database file location.
func (ix *Index) Path() string {
	if ix == nil {
		return ""
	}
	return ix.path
}

func (ix *Index) conn() (*sql.DB, error) {
	if ix == nil || ix.db == nil {
		return nil, ErrClosed
	}
	return ix.db, nil
}

// ensureSchema creates the chunk tables, dropping any previous layout whose
// version does not match.
func (ix *Index) ensureSchema(ctx context.Context) error {
	var version int
	if err := ix.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version == schemaVersion {
		return nil
	}
	if version != 0 {
		ix.logger.Info("search index schema changed; resetting",
			logging.Int("have_version", version),
			logging.Int("want_version", schemaVersion))
	}

	statements := []string{
		"DROP TABLE IF EXISTS chunks",
		"DROP TABLE IF EXISTS index_meta",
		`CREATE VIRTUAL TABLE chunks USING fts5(
            kind UNINDEXED,
            record_id UNINDEXED,
            name,
            body,
            tokenize = 'porter unicode61'
        )`,
		"CREATE TABLE index_meta (key TEXT PRIMARY KEY, value TEXT NOT NULL)",
		fmt.Sprintf("PRAGMA user_version = %d", schemaVersion),
	}
	for _, statement := range statements {
		if _, err := ix.db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("create search schema: %w", err)
		}
	}
	return nil
}

// Count returns the number of indexed chunks.
func (ix *Index) Count(ctx context.Context) (int, error) {
	db, err := ix.conn()
	if err != nil {
		return 0, err
	}
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks").Scan(&count); err != nil {
		return 0, fmt.Errorf("count chunks: %w", err)
	}
	return count, nil
}

// IndexedAt returns the project modification timestamp recorded by the last
// Rebuild. ok is false for an index that has never been rebuilt.
func (ix *Index) IndexedAt(ctx context.Context) (time.Time, bool, error) {
	db, err := ix.conn()
	if err != nil {
		return time.Time{}, false, err
	}
	var value string
	err = db.QueryRowContext(ctx, "SELECT value FROM index_meta WHERE key = 'project_updated_at'").Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("read index meta: %w", err)
	}
	at, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, false, nil
	}
	return at, true, nil
}

// Stale reports whether the index predates the project's last modification.
// A never-rebuilt index is always stale.
func (ix *Index) Stale(ctx context.Context, projectUpdatedAt time.Time) (bool, error) {
	at, ok, err := ix.IndexedAt(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	return !at.Equal(projectUpdatedAt), nil
}
