package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/logging"
	"folio/internal/store"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger

	journalOnce sync.Once
	journal     *logging.EventArchive

	sessionID string
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
		sessionID:   uuid.NewString()[:8],
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

// ensureLogger builds the shared command logger: console output plus a JSON
// copy appended to folio.log in the configured log directory, every record
// stamped with a per-invocation session id. Failures fall back to the no-op
// logger; logging never blocks a command.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		if c.verboseFlag != nil && *c.verboseFlag {
			verbose := *cfg
			verbose.Logging.Level = "debug"
			cfg = &verbose
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger = logging.WithSessionID(logger, c.sessionID)
		logging.CleanupOldLogs(logger, cfg.Logging.RetentionDays,
			logging.RetentionTarget{
				Dir:     cfg.Paths.LogDir,
				Pattern: "*.log",
				Exclude: []string{filepath.Join(cfg.Paths.LogDir, logging.LogFileName)},
			},
			logging.RetentionTarget{
				Dir:     cfg.Paths.LogDir,
				Pattern: "*.events",
				Exclude: []string{c.journalPath(cfg)},
			},
		)
		c.logger = logger
	})
	return c.logger
}

// quietLogger restricts the shared logger to warnings so structured stdout
// output (--json modes) stays parseable.
func (c *commandContext) quietLogger() *slog.Logger {
	return logging.WithLevelOverride(c.ensureLogger(), slog.LevelWarn)
}

// ensureJournal opens the integrity journal beside the log file. A nil
// journal disables recording; history is best-effort.
func (c *commandContext) ensureJournal() *logging.EventArchive {
	c.journalOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			return
		}
		journal, err := logging.NewEventArchive(c.journalPath(cfg))
		if err != nil {
			return
		}
		c.journal = journal
	})
	return c.journal
}

func (c *commandContext) journalPath(cfg *config.Config) string {
	if cfg == nil || cfg.Paths.LogDir == "" {
		return ""
	}
	return filepath.Join(cfg.Paths.LogDir, "folio.events")
}

// recordEvent appends one curated entry to the integrity journal: the
// operation that ran, the project it touched, and the warnings it produced.
func (c *commandContext) recordEvent(operation, projectName, message string, warnings []string) {
	journal := c.ensureJournal()
	if journal == nil {
		return
	}
	journal.Append(logging.Event{
		Level:         "info",
		Message:       message,
		Component:     "cli",
		Project:       projectName,
		Operation:     operation,
		CorrelationID: c.sessionID,
		Warnings:      warnings,
	})
}

// storeOptions maps the save configuration onto store options.
func storeOptions(cfg *config.Config, logger *slog.Logger) store.Options {
	return store.Options{
		ExternalizeChapters: cfg.Save.ExternalizeChapters,
		ChapterDirName:      cfg.Save.ChapterDir,
		BackupCount:         cfg.Save.BackupCount,
		Logger:              logger,
	}
}

// resolveIndexPath accepts either a project directory or a direct path to an
// index document and returns the index document path.
func resolveIndexPath(arg string) (string, error) {
	path, err := config.ExpandPath(arg)
	if err != nil {
		return "", err
	}
	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		return filepath.Join(path, store.IndexFileName), nil
	}
	return path, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
