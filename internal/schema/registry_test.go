package schema

import (
	"strings"
	"testing"

	"folio/internal/project"
)

func TestFieldsKnownKind(t *testing.T) {
	fields := Fields(KindFaction)
	if len(fields) == 0 {
		t.Fatal("expected fields for faction")
	}
	for _, want := range []string{"id", "name", "faction_type", "allies", "resources"} {
		found := false
		for _, f := range fields {
			if f == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("faction fields missing %q: %v", want, fields)
		}
	}
}

func TestFieldsUnknownKindEmpty(t *testing.T) {
	fields := Fields(Kind("starship"))
	if fields == nil {
		t.Fatal("unknown kind must yield an empty set, not nil")
	}
	if len(fields) != 0 {
		t.Errorf("unknown kind yielded %v", fields)
	}
}

func TestFieldShapes(t *testing.T) {
	tests := []struct {
		kind    Kind
		field   string
		shape   Shape
		integer bool
	}{
		{KindFaction, "name", ShapeText, false},
		{KindFaction, "allies", ShapeList, false},
		{KindFaction, "resources", ShapeMapping, false},
		{KindChapter, "number", ShapeNumber, true},
		{KindChapter, "created_at", ShapeTime, false},
		{KindChapter, "revisions", ShapeList, false},
		{KindArmy, "total_strength", ShapeNumber, true},
		{KindFlora, "edible", ShapeBool, false},
		{KindCharacter, "social_network", ShapeMapping, false},
	}

	for _, tt := range tests {
		d, ok := Lookup(tt.kind)
		if !ok {
			t.Fatalf("kind %s not registered", tt.kind)
		}
		f, ok := d.Field(tt.field)
		if !ok {
			t.Fatalf("%s has no field %q", tt.kind, tt.field)
		}
		if f.Shape != tt.shape {
			t.Errorf("%s.%s shape = %s, want %s", tt.kind, tt.field, f.Shape, tt.shape)
		}
		if f.Integer != tt.integer {
			t.Errorf("%s.%s integer = %v, want %v", tt.kind, tt.field, f.Integer, tt.integer)
		}
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindFaction, "Faction"},
		{KindPoliticalSystem, "Political System"},
		{KindHistoricalEvent, "Historical Event"},
		{KindStarSystem, "Star System"},
	}
	for _, tt := range tests {
		d, _ := Lookup(tt.kind)
		if d.Label != tt.want {
			t.Errorf("label for %s = %q, want %q", tt.kind, d.Label, tt.want)
		}
	}
}

func TestByCollection(t *testing.T) {
	d, ok := ByCollection("armies")
	if !ok || d.Kind != KindArmy {
		t.Fatalf("ByCollection(armies) = %v, %v", d, ok)
	}
	if _, ok := ByCollection("spaceships"); ok {
		t.Error("unknown collection should not resolve")
	}
}

func TestImportableExcludesChapters(t *testing.T) {
	for _, d := range Importable() {
		if d.Kind == KindChapter {
			t.Fatal("chapters must not be importable")
		}
	}
	if len(Importable()) != len(All())-1 {
		t.Errorf("importable = %d, want %d", len(Importable()), len(All())-1)
	}
}

func TestEnumDefaults(t *testing.T) {
	tests := []struct {
		kind  Kind
		field string
		want  string
	}{
		{KindCharacter, "character_type", "minor"},
		{KindFaction, "faction_type", "other"},
		{KindEconomy, "economy_type", "mixed"},
	}
	for _, tt := range tests {
		d, _ := Lookup(tt.kind)
		got, ok := d.EnumDefault(tt.field)
		if !ok || got != tt.want {
			t.Errorf("EnumDefault(%s.%s) = %q, %v, want %q", tt.kind, tt.field, got, ok, tt.want)
		}
	}
}

func TestConstructFiltersAndValidates(t *testing.T) {
	d, _ := Lookup(KindFaction)

	rec, err := d.Construct(map[string]any{
		"id":           "f1",
		"name":         "The Concord",
		"faction_type": "nation",
		"allies":       []any{"f2"},
		"hit_points":   9000,
		"inventory":    []any{"sword"},
	})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	faction, ok := rec.(project.Faction)
	if !ok {
		t.Fatalf("record type = %T", rec)
	}
	if faction.Name != "The Concord" || len(faction.Allies) != 1 {
		t.Errorf("unexpected record %+v", faction)
	}
}

func TestConstructRejectsInvalid(t *testing.T) {
	d, _ := Lookup(KindFaction)
	if _, err := d.Construct(map[string]any{"id": "f1", "name": "X", "faction_type": "empire"}); err == nil {
		t.Error("expected enum validation error")
	}
	if _, err := d.Construct(map[string]any{"name": "No ID", "faction_type": "nation"}); err == nil {
		t.Error("expected missing id error")
	}
}

func TestConstructRejectsDeepMismatch(t *testing.T) {
	d, _ := Lookup(KindArmy)
	_, err := d.Construct(map[string]any{
		"id":         "a1",
		"name":       "First Fleet",
		"faction_id": "f1",
		"branches":   []any{map[string]any{"name": "Vanguard", "size": "big"}},
	})
	if err == nil {
		t.Error("expected decode error for string in integer field")
	}
}

func TestAppendFindRefs(t *testing.T) {
	p := project.New("test")
	d, _ := Lookup(KindCulture)

	if err := d.Append(p, project.Culture{ID: "c1", Name: "Riverfolk"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if d.Len(p) != 1 {
		t.Fatalf("len = %d", d.Len(p))
	}
	if !d.ContainsID(p, "c1") || d.ContainsID(p, "c2") {
		t.Error("ContainsID mismatch")
	}
	refs := d.Refs(p)
	if len(refs) != 1 || refs[0].Name != "Riverfolk" {
		t.Errorf("refs = %v", refs)
	}
	if err := d.Append(p, project.Faction{ID: "f1"}); err == nil {
		t.Error("appending the wrong record type must fail")
	}
}

func TestContainsIDIsKindScoped(t *testing.T) {
	p := project.New("test")
	factions, _ := Lookup(KindFaction)
	characters, _ := Lookup(KindCharacter)

	if err := factions.Append(p, project.Faction{ID: "shared", Name: "F", Type: "nation"}); err != nil {
		t.Fatal(err)
	}
	if characters.ContainsID(p, "shared") {
		t.Error("id held by a faction must not be found in the character collection")
	}
}

func TestWithID(t *testing.T) {
	d, _ := Lookup(KindMyth)
	orig := project.Myth{ID: "m1", Name: "The Drowned Sun"}
	renamed := d.WithID(orig, "m2").(project.Myth)
	if renamed.ID != "m2" || renamed.Name != "The Drowned Sun" {
		t.Errorf("renamed = %+v", renamed)
	}
	if orig.ID != "m1" {
		t.Error("WithID must not mutate the original")
	}
}

func TestTextsGatherBody(t *testing.T) {
	p := project.New("test")
	d, _ := Lookup(KindFaction)
	if err := d.Append(p, project.Faction{
		ID: "f1", Name: "The Concord", Type: "nation",
		Description: "A maritime alliance",
		Notes:       "secretly broke",
	}); err != nil {
		t.Fatal(err)
	}

	texts := d.Texts(p)
	if len(texts) != 1 {
		t.Fatalf("texts = %d", len(texts))
	}
	if texts[0].Name != "The Concord" {
		t.Errorf("name = %q", texts[0].Name)
	}
	if !strings.Contains(texts[0].Body, "maritime alliance") || !strings.Contains(texts[0].Body, "secretly broke") {
		t.Errorf("body = %q", texts[0].Body)
	}
}
