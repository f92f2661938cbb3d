package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"folio/internal/store"
	"folio/internal/testsupport"
)

func TestCLIProjectLifecycle(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"new", "Signal Fires"}, env.configPath)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	requireContains(t, out, `Created project "Signal Fires"`)

	projectDir := filepath.Join(env.cfg.Paths.ProjectsDir, "Signal Fires")
	if _, err := os.Stat(filepath.Join(projectDir, store.IndexFileName)); err != nil {
		t.Fatalf("expected index document: %v", err)
	}

	_, _, err = runCLI(t, []string{"new", "Signal Fires"}, env.configPath)
	if err == nil {
		t.Fatal("expected duplicate project to fail")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("unexpected duplicate error: %v", err)
	}

	out, _, err = runCLI(t, []string{"inspect", projectDir}, env.configPath)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "Signal Fires")
	requireContains(t, out, "Test Author")
	requireContains(t, out, "No worldbuilding records")

	out, _, err = runCLI(t, []string{"check", projectDir}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, `Project "Signal Fires" is clean`)

	out, _, err = runCLI(t, []string{"chapters", "list", projectDir}, env.configPath)
	if err != nil {
		t.Fatalf("chapters list: %v", err)
	}
	requireContains(t, out, "Manuscript has no chapters")
}

func TestCLINewHonorsAuthorFlag(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"new", "Ledger", "--author", "M. Vel", "--dir", "ledger"}, env.configPath)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	projectDir := filepath.Join(env.cfg.Paths.ProjectsDir, "ledger")
	out, _, err := runCLI(t, []string{"inspect", projectDir}, env.configPath)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "M. Vel")
}

func TestCLINewDefaultsToConfiguredAuthor(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithAuthor("R. Quill"))

	_, _, err := runCLI(t, []string{"new", "Ledger", "--dir", "ledger"}, env.configPath)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	projectDir := filepath.Join(env.cfg.Paths.ProjectsDir, "ledger")
	out, _, err := runCLI(t, []string{"inspect", projectDir}, env.configPath)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "R. Quill")
}

func TestCLICheckAndRepair(t *testing.T) {
	env := setupCLITestEnv(t)

	dir := filepath.Join(env.cfg.Paths.ProjectsDir, "mangled")
	indexPath := testsupport.WriteIndex(t, dir, map[string]any{
		"name":       "Mangled",
		"characters": "not a list",
	})

	out, _, err := runCLI(t, []string{"check", dir}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "would be repaired")
	requireContains(t, out, `section "characters" had the wrong shape`)

	// Repair to a side target leaves the source untouched.
	sidePath := filepath.Join(env.baseDir, "repaired.json")
	out, _, err = runCLI(t, []string{"repair", dir, "--out", sidePath}, env.configPath)
	if err != nil {
		t.Fatalf("repair --out: %v", err)
	}
	requireContains(t, out, "Repaired")
	requireContains(t, out, "Wrote "+sidePath)
	if _, err := os.Stat(sidePath); err != nil {
		t.Fatalf("expected side target: %v", err)
	}

	out, _, err = runCLI(t, []string{"check", dir}, env.configPath)
	if err != nil {
		t.Fatalf("check after side repair: %v", err)
	}
	requireContains(t, out, "would be repaired")

	out, _, err = runCLI(t, []string{"repair", dir}, env.configPath)
	if err != nil {
		t.Fatalf("repair: %v", err)
	}
	requireContains(t, out, "Repaired")
	requireContains(t, out, "Wrote "+indexPath)

	out, _, err = runCLI(t, []string{"check", dir}, env.configPath)
	if err != nil {
		t.Fatalf("check after repair: %v", err)
	}
	requireContains(t, out, `Project "Mangled" is clean`)
}

func TestCLICheckRejectsUnparseableDocument(t *testing.T) {
	env := setupCLITestEnv(t)

	dir := filepath.Join(env.cfg.Paths.ProjectsDir, "broken")
	testsupport.WriteFile(t, filepath.Join(dir, store.IndexFileName), "{not json")

	_, _, err := runCLI(t, []string{"check", dir}, env.configPath)
	if err == nil {
		t.Fatal("expected parse failure")
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Fatalf("unexpected error: %v", err)
	}
}
