package testsupport

import (
	"path/filepath"
	"testing"

	"folio/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.ProjectsDir = filepath.Join(base, "projects")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Author.Name = "Test Author"
	cfgVal.Save.BackupCount = 2

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithAuthor overrides the author stamped into new manuscripts.
func WithAuthor(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Author.Name = name
	}
}

// WithDuplicatePolicy overrides the import duplicate policy on the test config.
func WithDuplicatePolicy(policy string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Imports.DuplicatePolicy = policy
	}
}

// WithoutExternalization disables chapter body files on the test config.
func WithoutExternalization() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Save.ExternalizeChapters = false
	}
}

// WithoutSearch disables the search index on the test config.
func WithoutSearch() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Search.Enabled = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.ProjectsDir)
}
