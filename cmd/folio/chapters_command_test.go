package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"folio/internal/testsupport"
)

func TestCLIChaptersList(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := seedProject(t, env, "Harbor")

	out, _, err := runCLI(t, []string{"chapters", "list", dir}, env.configPath)
	if err != nil {
		t.Fatalf("chapters list: %v", err)
	}
	requireContains(t, out, "Embers")
	requireContains(t, out, "Crossing")
	requireContains(t, out, "chapter_001.md")
}

func TestCLIChaptersListInlineBodies(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutExternalization())
	dir := seedProject(t, env, "Inline")

	out, _, err := runCLI(t, []string{"chapters", "list", dir}, env.configPath)
	if err != nil {
		t.Fatalf("chapters list: %v", err)
	}
	requireContains(t, out, "inline")
}

func TestCLIChaptersExport(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := seedProject(t, env, "Harbor")

	out, _, err := runCLI(t, []string{"chapters", "export", dir}, env.configPath)
	if err != nil {
		t.Fatalf("chapters export: %v", err)
	}
	exportDir := filepath.Join(dir, "export")
	requireContains(t, out, "Exported 2 chapters to "+exportDir)

	data, err := os.ReadFile(filepath.Join(exportDir, "chapter_001.md"))
	if err != nil {
		t.Fatalf("read exported chapter: %v", err)
	}
	if !strings.Contains(string(data), "lantern city") {
		t.Fatalf("unexpected chapter body: %q", data)
	}
}

func TestCLIChaptersExportInlineBodies(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutExternalization())
	dir := seedProject(t, env, "Inline")

	target := filepath.Join(env.baseDir, "exported")
	out, _, err := runCLI(t, []string{"chapters", "export", dir, "--out", target}, env.configPath)
	if err != nil {
		t.Fatalf("chapters export --out: %v", err)
	}
	requireContains(t, out, "Exported 2 chapters to "+target)

	data, err := os.ReadFile(filepath.Join(target, "chapter_002.md"))
	if err != nil {
		t.Fatalf("read exported chapter: %v", err)
	}
	if !strings.Contains(string(data), "followed the river north") {
		t.Fatalf("unexpected chapter body: %q", data)
	}
}
