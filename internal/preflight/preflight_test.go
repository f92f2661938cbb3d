package preflight

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"folio/internal/searchindex"
	"folio/internal/store"
	"folio/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckIndexDocument_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, store.IndexFileName)
	p := testsupport.NewProject(t, "Doctor Fixture")
	if err := store.Save(p, path, store.Options{}); err != nil {
		t.Fatalf("save: %v", err)
	}

	result, loaded := CheckIndexDocument(path, store.Options{})
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if loaded == nil {
		t.Fatal("expected loaded project")
	}
	if loaded.Name != "Doctor Fixture" {
		t.Fatalf("loaded project name = %q", loaded.Name)
	}
}

func TestCheckIndexDocument_ParseFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), store.IndexFileName)
	testsupport.WriteFile(t, path, `{"name": "broken`)

	result, loaded := CheckIndexDocument(path, store.Options{})
	if result.Passed {
		t.Fatal("expected failure for unparseable document")
	}
	if loaded != nil {
		t.Fatal("expected nil project for unparseable document")
	}
}

func TestCheckIndexDocument_Missing(t *testing.T) {
	result, loaded := CheckIndexDocument(filepath.Join(t.TempDir(), store.IndexFileName), store.Options{})
	if result.Passed {
		t.Fatal("expected failure for missing document")
	}
	if loaded != nil {
		t.Fatal("expected nil project for missing document")
	}
}

func TestCheckChapterFiles_AllPresent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, store.IndexFileName)
	p := testsupport.NewProject(t, "Doctor Fixture")
	if err := store.Save(p, path, store.Options{ExternalizeChapters: true}); err != nil {
		t.Fatalf("save: %v", err)
	}

	result := CheckChapterFiles(path, p)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
}

func TestCheckChapterFiles_Missing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, store.IndexFileName)
	p := testsupport.NewProject(t, "Doctor Fixture")
	if err := store.Save(p, path, store.Options{ExternalizeChapters: true}); err != nil {
		t.Fatalf("save: %v", err)
	}
	removed := filepath.Join(dir, filepath.FromSlash(p.Manuscript.Chapters[0].FilePath))
	if err := os.Remove(removed); err != nil {
		t.Fatalf("remove chapter file: %v", err)
	}

	result := CheckChapterFiles(path, p)
	if result.Passed {
		t.Fatal("expected failure for missing chapter file")
	}
}

func TestCheckChapterFiles_NoExternalized(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, store.IndexFileName)
	p := testsupport.NewProject(t, "Doctor Fixture")
	if err := store.Save(p, path, store.Options{}); err != nil {
		t.Fatalf("save: %v", err)
	}

	result := CheckChapterFiles(path, p)
	if !result.Passed {
		t.Fatalf("expected trivial pass, got: %s", result.Detail)
	}
}

func TestCheckProjectLock_Available(t *testing.T) {
	result := CheckProjectLock(t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
}

func TestCheckProjectLock_Held(t *testing.T) {
	dir := t.TempDir()
	lock, err := store.LockProject(dir)
	if err != nil {
		t.Fatalf("acquire lock: %v", err)
	}
	defer lock.Unlock()

	result := CheckProjectLock(dir)
	if result.Passed {
		t.Fatal("expected failure while lock held")
	}
}

func TestCheckSearchIndex_NotBuilt(t *testing.T) {
	result := CheckSearchIndex(context.Background(), filepath.Join(t.TempDir(), ".folio", "search.db"), nil)
	if !result.Passed {
		t.Fatalf("expected pass for unbuilt index, got: %s", result.Detail)
	}
}

func TestCheckSearchIndex_Healthy(t *testing.T) {
	dir := t.TempDir()
	p := testsupport.NewProject(t, "Doctor Fixture")
	dbPath := searchindex.PathFor(dir, "search.db")
	idx, err := searchindex.Open(dbPath, searchindex.Options{})
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	if _, err := idx.Rebuild(context.Background(), p); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if err := idx.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	result := CheckSearchIndex(context.Background(), dbPath, p)
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	results := RunAll(context.Background(), nil, "")
	if results != nil {
		t.Fatal("expected nil results for nil config")
	}
}

func TestRunAll_NoProject(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}

	results := RunAll(context.Background(), cfg, "")
	// Projects dir + log dir only.
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("check %q failed: %s", r.Name, r.Detail)
		}
	}
	if !Passed(results) {
		t.Fatal("Passed() disagrees with per-result state")
	}
}

func TestRunAll_WithProject(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	projectDir := filepath.Join(cfg.Paths.ProjectsDir, "doctor-fixture")
	p := testsupport.NewProject(t, "Doctor Fixture")
	if err := store.Save(p, filepath.Join(projectDir, store.IndexFileName), store.Options{ExternalizeChapters: true}); err != nil {
		t.Fatalf("save: %v", err)
	}

	results := RunAll(context.Background(), cfg, projectDir)
	names := make(map[string]bool, len(results))
	for _, r := range results {
		names[r.Name] = true
		if !r.Passed {
			t.Errorf("check %q failed: %s", r.Name, r.Detail)
		}
	}
	for _, want := range []string{"Projects directory", "Index document", "Chapter files", "Project lock", "Search index"} {
		if !names[want] {
			t.Errorf("missing check %q in results", want)
		}
	}
}
