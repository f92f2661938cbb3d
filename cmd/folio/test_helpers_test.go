package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"folio/internal/config"
	"folio/internal/logging"
	"folio/internal/store"
	"folio/internal/testsupport"
	"folio/internal/textutil"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	homeDir := filepath.Join(t.TempDir(), "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("FOLIO_AUTHOR", "")

	cfg := testsupport.NewConfig(t, opts...)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}

	configPath := filepath.Join(homeDir, ".config", "folio", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath, baseDir: testsupport.BaseDir(cfg)}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(`[paths]
projects_dir = %q
log_dir = %q

[author]
name = %q

[save]
externalize_chapters = %t
chapter_dir = %q
backup_count = %d

[imports]
duplicate_policy = %q

[search]
enabled = %t
db_name = %q
chunk_words = %d
`,
		cfg.Paths.ProjectsDir,
		cfg.Paths.LogDir,
		cfg.Author.Name,
		cfg.Save.ExternalizeChapters,
		cfg.Save.ChapterDir,
		cfg.Save.BackupCount,
		cfg.Imports.DuplicatePolicy,
		cfg.Search.Enabled,
		cfg.Search.DBName,
		cfg.Search.ChunkWords,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// seedProject saves a populated fixture project under the configured projects
// root and returns its directory.
func seedProject(t *testing.T, env *cliTestEnv, name string) string {
	t.Helper()
	p := testsupport.NewProject(t, name)
	dir := filepath.Join(env.cfg.Paths.ProjectsDir, textutil.SanitizeFileName(name))
	if err := store.Save(p, filepath.Join(dir, store.IndexFileName), storeOptions(env.cfg, logging.NewNop())); err != nil {
		t.Fatalf("save fixture project: %v", err)
	}
	return dir
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
