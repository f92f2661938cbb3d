package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"folio/internal/searchindex"
	"folio/internal/testsupport"
)

func TestCLISearchFindsChapters(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := seedProject(t, env, "Harbor")

	out, _, err := runCLI(t, []string{"search", dir, "lantern"}, env.configPath)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	requireContains(t, out, "chapter")
	requireContains(t, out, "Embers")
}

func TestCLISearchNoMatches(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := seedProject(t, env, "Harbor")

	out, _, err := runCLI(t, []string{"search", dir, "zeppelin"}, env.configPath)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	requireContains(t, out, "No matches")
}

func TestCLISearchSimilar(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := seedProject(t, env, "Harbor")

	out, _, err := runCLI(t, []string{"search", dir, "--similar",
		"the lantern city argued over the harvest and water rights"}, env.configPath)
	if err != nil {
		t.Fatalf("search --similar: %v", err)
	}
	requireContains(t, out, "Embers")
}

func TestCLISearchJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := seedProject(t, env, "Harbor")

	out, _, err := runCLI(t, []string{"search", dir, "lantern", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("search --json: %v", err)
	}
	var hits []searchindex.Hit
	if err := json.Unmarshal([]byte(out), &hits); err != nil {
		t.Fatalf("decode hits: %v\noutput: %s", err, out)
	}
	if len(hits) == 0 {
		t.Fatal("expected hits")
	}
	for _, hit := range hits {
		if hit.Kind == "" || hit.RecordID == "" {
			t.Fatalf("incomplete hit: %+v", hit)
		}
	}
}

func TestCLISearchDisabled(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutSearch())
	dir := seedProject(t, env, "Harbor")

	_, _, err := runCLI(t, []string{"search", dir, "lantern"}, env.configPath)
	if err == nil {
		t.Fatal("expected search to be rejected")
	}
	requireContains(t, err.Error(), "search is disabled")
}

func TestCLISearchPicksUpNewContent(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := seedProject(t, env, "Harbor")

	out, _, err := runCLI(t, []string{"search", dir, "caravan"}, env.configPath)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	requireContains(t, out, "No matches")

	source := filepath.Join(env.baseDir, "import.json")
	testsupport.WriteFile(t, source, `{"characters": [{"id": "c-new", "name": "Newcomer", "backstory": "Arrived with the caravan at dusk."}]}`)
	if _, _, err := runCLI(t, []string{"import", dir, source}, env.configPath); err != nil {
		t.Fatalf("import: %v", err)
	}

	// The import bumped the project timestamp, so the next search rebuilds.
	out, _, err = runCLI(t, []string{"search", dir, "caravan"}, env.configPath)
	if err != nil {
		t.Fatalf("search after import: %v", err)
	}
	requireContains(t, out, "Newcomer")
}
