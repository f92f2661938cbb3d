package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"folio/internal/store"
)

func TestCLIRemoveFactionCascades(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := seedProject(t, env, "Harbor")

	out, _, err := runCLI(t, []string{"remove", dir, "faction", "f-guild"}, env.configPath)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	requireContains(t, out, `Removed faction "Lantern Guild" (f-guild) from "Harbor"`)
	requireContains(t, out, "swept character.faction_id: 1 reference(s) removed")
	requireContains(t, out, "swept army.faction_id: 1 reference(s) removed")
	requireContains(t, out, "swept economy.faction_id/trade_partners/embargoes: 1 reference(s) removed")

	p, _, err := store.Load(filepath.Join(dir, store.IndexFileName), store.Options{})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(p.Worldbuilding.Factions) != 0 {
		t.Fatalf("expected faction to be gone, got %d", len(p.Worldbuilding.Factions))
	}
	if got := p.Characters[0].FactionID; got != "" {
		t.Fatalf("expected character faction_id swept, got %q", got)
	}
	if got := p.Worldbuilding.Armies[0].FactionID; got != "" {
		t.Fatalf("expected army faction_id swept, got %q", got)
	}
}

func TestCLIRemoveDryRun(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := seedProject(t, env, "Harbor")

	out, _, err := runCLI(t, []string{"remove", dir, "faction", "f-guild", "--dry-run"}, env.configPath)
	if err != nil {
		t.Fatalf("remove --dry-run: %v", err)
	}
	requireContains(t, out, "Dry run: faction")
	requireContains(t, out, "would be removed")

	p, _, err := store.Load(filepath.Join(dir, store.IndexFileName), store.Options{})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(p.Worldbuilding.Factions) != 1 {
		t.Fatalf("dry run must not save; got %d factions", len(p.Worldbuilding.Factions))
	}
}

func TestCLIRemoveAcceptsCollectionName(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := seedProject(t, env, "Harbor")

	out, _, err := runCLI(t, []string{"remove", dir, "characters", "c-ash"}, env.configPath)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	requireContains(t, out, `Removed character "Ash" (c-ash) from "Harbor"`)

	p, _, err := store.Load(filepath.Join(dir, store.IndexFileName), store.Options{})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(p.Characters) != 0 {
		t.Fatalf("expected character to be gone, got %d", len(p.Characters))
	}
}

func TestCLIRemoveUnknownID(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := seedProject(t, env, "Harbor")

	_, _, err := runCLI(t, []string{"remove", dir, "faction", "f-ghost"}, env.configPath)
	if err == nil {
		t.Fatal("expected an error for a missing record id")
	}
	requireContains(t, err.Error(), `no faction with id "f-ghost"`)
}

func TestCLIRemoveRejectsChapters(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := seedProject(t, env, "Harbor")

	_, _, err := runCLI(t, []string{"remove", dir, "chapter", "ch-1"}, env.configPath)
	if err == nil {
		t.Fatal("expected chapters to be rejected")
	}
	requireContains(t, err.Error(), "chapters cannot be removed")
}

func TestCLIRemoveJSONReport(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := seedProject(t, env, "Harbor")

	out, _, err := runCLI(t, []string{"remove", dir, "faction", "f-guild", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("remove --json: %v", err)
	}
	var report removeReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v\noutput: %s", err, out)
	}
	if report.Kind != "faction" || report.ID != "f-guild" {
		t.Fatalf("unexpected report target: %+v", report)
	}
	if report.Name != "Lantern Guild" {
		t.Fatalf("expected display name in report, got %q", report.Name)
	}
	if len(report.Swept) != 3 {
		t.Fatalf("expected 3 cascade messages, got %v", report.Swept)
	}
	if !report.Saved {
		t.Fatal("expected the removal to be saved")
	}
}
