package main

import (
	"path/filepath"
	"strings"
	"testing"

	"folio/internal/store"
	"folio/internal/testsupport"
)

func TestCLIDoctorEnvironment(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"doctor"}, env.configPath)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	requireContains(t, out, "Environment")
	requireContains(t, out, "Projects directory")
	requireContains(t, out, "Log directory")
	requireContains(t, out, "All checks passed")
}

func TestCLIDoctorProject(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := seedProject(t, env, "Harbor")

	out, _, err := runCLI(t, []string{"doctor", dir}, env.configPath)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	requireContains(t, out, "Project "+dir)
	requireContains(t, out, "Index document")
	requireContains(t, out, "Chapter files")
	requireContains(t, out, "Project lock")
	requireContains(t, out, "Search index")
	requireContains(t, out, "All checks passed")
}

func TestCLIDoctorReportsFailure(t *testing.T) {
	env := setupCLITestEnv(t)

	dir := filepath.Join(env.cfg.Paths.ProjectsDir, "broken")
	testsupport.WriteFile(t, filepath.Join(dir, store.IndexFileName), "{not json")

	out, _, err := runCLI(t, []string{"doctor", dir}, env.configPath)
	if err == nil {
		t.Fatal("expected doctor to fail")
	}
	if !strings.Contains(err.Error(), "checks failed") {
		t.Fatalf("unexpected error: %v", err)
	}
	requireContains(t, out, "FAIL")
	requireContains(t, out, "not valid JSON")
}
