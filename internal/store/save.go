package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"folio/internal/fileutil"
	"folio/internal/logging"
	"folio/internal/project"
)

// Save writes the project to path as a two-space-indented JSON index
// document.
//
// With externalization enabled every chapter body is first written to
// <dir>/<chapter-dir>/chapter_NNN.md, re-deriving the file name from the
// chapter's current number so renumbered chapters relocate on the next save.
// Body content is blanked in the index document and restored in memory from
// the just-written files, so the project stays fully usable after the call.
// Saving without externalization clears recorded file paths so the index is
// self-contained; body files from earlier saves are left on disk.
//
// Save refreshes word counts and the modification timestamp, records path as
// the project's location, and keeps opts.BackupCount timestamped copies of
// the previous index. A chapter file that cannot be written aborts the save
// before the index is touched; chapter files already written in that pass
// remain on disk until the next successful save, a known limitation.
func Save(p *project.Project, path string, opts Options) error {
	logger := opts.logger()
	start := time.Now()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create project directory %q: %w", dir, err)
	}

	p.EnsureCollections()
	p.Touch()
	total := p.Manuscript.RefreshWordCounts()

	var snapshot []string
	if opts.ExternalizeChapters {
		if err := writeChapterFiles(p, dir, opts.chapterDir()); err != nil {
			return err
		}
		snapshot = blankChapterContents(p)
	} else {
		clearChapterFilePaths(p)
	}

	p.ProjectPath = path

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		restoreChapterContents(p, snapshot)
		return fmt.Errorf("encode project: %w", err)
	}

	backupIndex(path, opts, logger)

	if err := writeFileAtomic(path, data); err != nil {
		restoreChapterContents(p, snapshot)
		return fmt.Errorf("write project file %s: %w", path, err)
	}

	if opts.ExternalizeChapters {
		if err := reloadChapterContents(p, dir); err != nil {
			return err
		}
	}

	logger.Info("project saved",
		logging.String("path", path),
		logging.Int("chapter_count", len(p.Manuscript.Chapters)),
		logging.Int("word_count", total),
		logging.Duration("duration", time.Since(start)))
	return nil
}

// writeChapterFiles writes every chapter body under dir/chapterDir, deriving
// each file name from the chapter's current number. File paths are recorded
// with forward slashes so index documents stay portable.
func writeChapterFiles(p *project.Project, dir, chapterDir string) error {
	if len(p.Manuscript.Chapters) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Join(dir, chapterDir), 0o755); err != nil {
		return fmt.Errorf("create chapter directory: %w", err)
	}
	for i := range p.Manuscript.Chapters {
		ch := &p.Manuscript.Chapters[i]
		rel := filepath.Join(chapterDir, ch.FileName())
		full := filepath.Join(dir, rel)
		if err := os.WriteFile(full, []byte(ch.Content), 0o644); err != nil {
			return fmt.Errorf("write chapter file %s: %w", full, err)
		}
		ch.FilePath = filepath.ToSlash(rel)
	}
	return nil
}

// blankChapterContents empties every chapter body ahead of the index marshal
// and returns the previous contents for restoration on failure paths.
func blankChapterContents(p *project.Project) []string {
	snapshot := make([]string, len(p.Manuscript.Chapters))
	for i := range p.Manuscript.Chapters {
		snapshot[i] = p.Manuscript.Chapters[i].Content
		p.Manuscript.Chapters[i].Content = ""
	}
	return snapshot
}

func restoreChapterContents(p *project.Project, snapshot []string) {
	for i := range p.Manuscript.Chapters {
		if i < len(snapshot) {
			p.Manuscript.Chapters[i].Content = snapshot[i]
		}
	}
}

func clearChapterFilePaths(p *project.Project) {
	for i := range p.Manuscript.Chapters {
		p.Manuscript.Chapters[i].FilePath = ""
	}
}

// reloadChapterContents refreshes in-memory chapter bodies from the files
// written moments earlier, keeping the in-process object fully usable.
func reloadChapterContents(p *project.Project, dir string) error {
	for i := range p.Manuscript.Chapters {
		ch := &p.Manuscript.Chapters[i]
		if ch.FilePath == "" {
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(ch.FilePath)))
		if err != nil {
			return fmt.Errorf("restore chapter %d content: %w", ch.Number, err)
		}
		ch.Content = string(content)
	}
	return nil
}

// backupIndex copies the current index document to a timestamped sibling
// before it is replaced, then prunes old copies beyond opts.BackupCount.
// The copy is hash-verified; a backup that does not match the source is
// discarded rather than kept as a false safety net. Backups are best
// effort: a failed copy logs a warning and the save proceeds.
func backupIndex(path string, opts Options, logger *slog.Logger) {
	if opts.BackupCount <= 0 {
		return
	}
	backupPath := backupName(path, time.Now().UTC())
	if err := fileutil.CopyFileVerified(path, backupPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.WarnWithContext(logger, "index backup failed; continuing save", "backup_failed",
				logging.String("path", backupPath),
				logging.Error(err),
				logging.String(logging.FieldImpact, "previous index revision is not backed up"))
		}
		return
	}
	logging.PruneBackups(logger, opts.BackupCount, filepath.Dir(path), backupPattern(path))
}

// backupName derives "<stem>.backup-<timestamp><ext>" beside the index.
func backupName(path string, now time.Time) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s.backup-%s%s", stem, now.Format("20060102-150405"), ext)
}

func backupPattern(path string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	return stem + ".backup-*" + ext
}
