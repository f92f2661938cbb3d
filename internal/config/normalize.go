package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeAuthor()
	c.normalizeSave()
	c.normalizeImports()
	c.normalizeSearch()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.ProjectsDir) == "" {
		c.Paths.ProjectsDir = defaultProjectsDir
	}
	if c.Paths.ProjectsDir, err = expandPath(c.Paths.ProjectsDir); err != nil {
		return fmt.Errorf("paths.projects_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeAuthor() {
	if value, ok := os.LookupEnv("FOLIO_AUTHOR"); ok && strings.TrimSpace(value) != "" {
		c.Author.Name = value
	}
	c.Author.Name = strings.TrimSpace(c.Author.Name)
	c.Author.Email = strings.TrimSpace(c.Author.Email)
}

func (c *Config) normalizeSave() {
	c.Save.ChapterDir = strings.TrimSpace(c.Save.ChapterDir)
	if c.Save.ChapterDir == "" {
		c.Save.ChapterDir = defaultChapterDir
	}
	if c.Save.BackupCount < 0 {
		c.Save.BackupCount = 0
	}
}

func (c *Config) normalizeImports() {
	c.Imports.DuplicatePolicy = strings.ToLower(strings.TrimSpace(c.Imports.DuplicatePolicy))
	if c.Imports.DuplicatePolicy == "" {
		c.Imports.DuplicatePolicy = defaultDuplicatePolicy
	}
}

func (c *Config) normalizeSearch() {
	c.Search.DBName = strings.TrimSpace(c.Search.DBName)
	if c.Search.DBName == "" {
		c.Search.DBName = defaultSearchDBName
	}
	if c.Search.ChunkWords <= 0 {
		c.Search.ChunkWords = defaultChunkWords
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}
