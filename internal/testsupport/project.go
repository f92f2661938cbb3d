package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"folio/internal/project"
)

// NewProject builds a small but fully populated project fixture: two
// chapters with prose bodies, a protagonist, and a faction with an army and
// an economy wired to it by id.
func NewProject(t testing.TB, name string) *project.Project {
	t.Helper()

	p := project.New(name)
	p.Description = "test fixture"
	p.Manuscript.Title = name
	p.Manuscript.Author = "Test Author"
	p.Manuscript.Chapters = []project.Chapter{
		{
			ID: "ch-1", Number: 1, Title: "Embers",
			Content: "The lantern city burned slowly while the harvest guild argued over water rights.",
		},
		{
			ID: "ch-2", Number: 2, Title: "Crossing",
			Content: "They left the burned district before dawn and followed the river north.",
		},
	}
	p.Characters = []project.Character{
		{
			ID: "c-ash", Name: "Ash", Type: "protagonist",
			Personality: "stubborn, loyal",
			Backstory:   "Raised in the lantern district, orphaned by the first siege.",
			FactionID:   "f-guild",
		},
	}
	p.Worldbuilding.Factions = []project.Faction{
		{
			ID: "f-guild", Name: "Lantern Guild", Type: "organization",
			Description: "Controls the city's lamplighters and the oil trade.",
			Leader:      "Matron Vel",
			Allies:      []string{},
			Enemies:     []string{},
		},
	}
	p.Worldbuilding.Armies = []project.Army{
		{
			ID: "a-watch", Name: "Lantern Watch", FactionID: "f-guild",
			TotalStrength: 400,
			Description:   "Night patrol of the guild districts.",
		},
	}
	p.Worldbuilding.Economies = []project.Economy{
		{
			ID: "e-guild", FactionID: "f-guild", Type: "mixed",
			Currency:        "lamp scrip",
			MajorIndustries: []string{"oil", "glasswork"},
		},
	}
	p.Manuscript.RefreshWordCounts()
	return p
}

// WriteIndex writes a raw document as the index file of a project directory
// and returns the index path.
func WriteIndex(t testing.TB, dir string, doc map[string]any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("marshal index document: %v", err)
	}
	path := filepath.Join(dir, "project.json")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
