package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"folio/internal/logging"
	"folio/internal/project"
	"folio/internal/repair"
)

// Load reads the index document at path and reconstructs the project.
//
// A file that does not parse as a JSON object is fatal and wraps ErrParse;
// every other defect is repaired and reported through the returned warning
// list. Chapter bodies are refreshed from their externalized files; a
// missing or unreadable body file degrades to the content recorded in the
// index, with a warning naming the chapter.
func Load(path string, opts Options) (*project.Project, []string, error) {
	logger := opts.logger()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read project file %s: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("parse project file %s: %w: %w", path, ErrParse, err)
	}

	proj, warnings := repair.BuildProject(raw)
	proj.ProjectPath = path

	warnings = append(warnings, refreshChapterContents(proj, filepath.Dir(path))...)
	proj.Manuscript.RefreshWordCounts()

	for _, warning := range warnings {
		logger.Warn("project repaired during load",
			logging.String(logging.FieldEventType, "load_repair"),
			logging.String("reason", warning))
	}
	logger.Info("project loaded",
		logging.String("path", path),
		logging.Int("chapter_count", len(proj.Manuscript.Chapters)),
		logging.Int("warning_count", len(warnings)))

	return proj, warnings, nil
}

// refreshChapterContents overwrites in-memory chapter bodies from their
// recorded files. A chapter whose file is gone keeps the index content,
// commonly an empty body, instead of failing the load.
func refreshChapterContents(p *project.Project, dir string) []string {
	var warnings []string
	for i := range p.Manuscript.Chapters {
		ch := &p.Manuscript.Chapters[i]
		if ch.FilePath == "" {
			continue
		}
		chapterPath := filepath.FromSlash(ch.FilePath)
		if !filepath.IsAbs(chapterPath) {
			chapterPath = filepath.Join(dir, chapterPath)
		}
		content, err := os.ReadFile(chapterPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				warnings = append(warnings, fmt.Sprintf("chapter %d %q: body file %s missing; kept index content", ch.Number, ch.Title, ch.FilePath))
			} else {
				warnings = append(warnings, fmt.Sprintf("chapter %d %q: read body file %s: %v", ch.Number, ch.Title, ch.FilePath, err))
			}
			continue
		}
		ch.Content = string(content)
	}
	return warnings
}
