package repair

import (
	"encoding/json"
	"fmt"

	"folio/internal/project"
	"folio/internal/schema"
)

// RepairDocument walks the fixed top-level section list and returns a copy of
// the document in which every section exists with the correct container
// shape and every record of every known collection has passed RepairRecord.
// The input document is not modified.
//
// Worldbuilding collections that are simply absent are installed silently:
// older documents predate most of them and warning on every load would bury
// the signal. A present-but-malformed collection still warns.
func RepairDocument(raw map[string]any) (map[string]any, []string) {
	out := make(map[string]any, len(raw))
	for key, value := range raw {
		out[key] = value
	}
	var warnings []string

	ms, w := repairMapSection(out, "manuscript")
	warnings = append(warnings, w...)
	warnings = append(warnings, repairChapters(ms)...)

	warnings = append(warnings, repairListSection(out, "characters", schema.KindCharacter)...)

	_, w = repairMapSection(out, "story_planning")
	warnings = append(warnings, w...)

	wb, w := repairMapSection(out, "worldbuilding")
	warnings = append(warnings, w...)
	for _, d := range schema.All() {
		if d.Section == "worldbuilding" {
			warnings = append(warnings, repairCollection(wb, d)...)
		}
	}

	warnings = append(warnings, repairPlainList(out, "generated_images")...)
	warnings = append(warnings, repairPlainList(out, "agent_contacts")...)

	return out, warnings
}

// BuildProject repairs the raw document and constructs the typed Project.
// When full construction still fails, each top-level section is salvaged in
// isolation and broken sections fall back to their empty defaults. The
// returned project is always usable; the warnings disclose everything that
// was repaired, dropped, or lost.
func BuildProject(raw map[string]any) (*project.Project, []string) {
	repaired, warnings := RepairDocument(raw)

	p, err := constructProject(repaired)
	if err == nil {
		return p, warnings
	}
	warnings = append(warnings, fmt.Sprintf("full construction failed (%v); salvaging section by section", err))

	p, w := salvage(repaired)
	return p, append(warnings, w...)
}

func constructProject(doc map[string]any) (*project.Project, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var p project.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	p.EnsureCollections()
	return &p, nil
}

// salvage constructs every top-level section independently on top of an
// empty project, so one unbuildable section cannot take the rest down.
func salvage(doc map[string]any) (*project.Project, []string) {
	p := project.New("")
	var warnings []string

	assignSection(doc, "name", &p.Name, &warnings)
	assignSection(doc, "description", &p.Description, &warnings)
	assignSection(doc, "project_path", &p.ProjectPath, &warnings)
	assignSection(doc, "worldbuilding", &p.Worldbuilding, &warnings)
	assignSection(doc, "characters", &p.Characters, &warnings)
	assignSection(doc, "story_planning", &p.StoryPlanning, &warnings)
	assignSection(doc, "manuscript", &p.Manuscript, &warnings)
	assignSection(doc, "generated_images", &p.GeneratedImages, &warnings)
	assignSection(doc, "agent_contacts", &p.AgentContacts, &warnings)
	assignSection(doc, "dictionary", &p.Dictionary, &warnings)
	assignSection(doc, "created_at", &p.CreatedAt, &warnings)
	assignSection(doc, "updated_at", &p.UpdatedAt, &warnings)

	p.EnsureCollections()
	return p, warnings
}

// assignSection decodes one section into target, leaving the existing value
// untouched when the section is absent or unbuildable.
func assignSection[T any](doc map[string]any, key string, target *T, warnings *[]string) {
	value, ok := doc[key]
	if !ok {
		return
	}
	data, err := json.Marshal(value)
	var decoded T
	if err == nil {
		err = json.Unmarshal(data, &decoded)
	}
	if err != nil {
		*warnings = append(*warnings, fmt.Sprintf("section %q could not be constructed (%v); using empty default", key, err))
		return
	}
	*target = decoded
}

// repairMapSection guarantees doc[key] is a mapping, installing an empty one
// when the section is absent or wrongly shaped. The returned map is a copy;
// edits to it do not leak into the caller's input.
func repairMapSection(doc map[string]any, key string) (map[string]any, []string) {
	value, present := doc[key]
	if !present || value == nil {
		section := map[string]any{}
		doc[key] = section
		return section, []string{fmt.Sprintf("missing section %q; installed empty default", key)}
	}
	m, ok := value.(map[string]any)
	if !ok {
		section := map[string]any{}
		doc[key] = section
		return section, []string{fmt.Sprintf("section %q had the wrong shape; replaced with empty default", key)}
	}
	section := make(map[string]any, len(m))
	for k, v := range m {
		section[k] = v
	}
	doc[key] = section
	return section, nil
}

// repairChapters repairs the chapter list inside an already shape-safe
// manuscript section.
func repairChapters(ms map[string]any) []string {
	value, present := ms["chapters"]
	if !present || value == nil {
		ms["chapters"] = []any{}
		return []string{`manuscript: missing "chapters"; installed empty list`}
	}
	list, ok := value.([]any)
	if !ok {
		ms["chapters"] = []any{}
		return []string{`manuscript: "chapters" was not a list; replaced with empty list`}
	}
	repairedList, warnings := repairRecords(schema.KindChapter, list)
	ms["chapters"] = repairedList
	return warnings
}

// repairListSection guarantees doc[key] is a list of repaired records of the
// given kind.
func repairListSection(doc map[string]any, key string, kind schema.Kind) []string {
	value, present := doc[key]
	if !present || value == nil {
		doc[key] = []any{}
		return []string{fmt.Sprintf("missing section %q; installed empty default", key)}
	}
	list, ok := value.([]any)
	if !ok {
		doc[key] = []any{}
		return []string{fmt.Sprintf("section %q had the wrong shape; replaced with empty default", key)}
	}
	repairedList, warnings := repairRecords(kind, list)
	doc[key] = repairedList
	return warnings
}

// repairCollection repairs one worldbuilding collection in place.
func repairCollection(wb map[string]any, d *schema.Descriptor) []string {
	value, present := wb[d.Collection]
	if !present || value == nil {
		wb[d.Collection] = []any{}
		return nil
	}
	list, ok := value.([]any)
	if !ok {
		wb[d.Collection] = []any{}
		return []string{fmt.Sprintf("worldbuilding: %q was not a list; replaced with empty list", d.Collection)}
	}
	repairedList, warnings := repairRecords(d.Kind, list)
	wb[d.Collection] = repairedList
	return warnings
}

// repairRecords runs RepairRecord over every mapping element, dropping
// anything that is not a mapping.
func repairRecords(kind schema.Kind, list []any) ([]any, []string) {
	d, _ := schema.Lookup(kind)
	out := make([]any, 0, len(list))
	var warnings []string
	for i, element := range list {
		m, ok := element.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s #%d: element is not a mapping; dropped", d.Label, i+1))
			continue
		}
		repaired, w := RepairRecord(kind, i+1, m)
		out = append(out, repaired)
		warnings = append(warnings, w...)
	}
	return out, warnings
}

// repairPlainList guarantees doc[key] is a list of mappings. The records
// themselves carry no registry entry; their fields are validated by typed
// construction.
func repairPlainList(doc map[string]any, key string) []string {
	value, present := doc[key]
	if !present || value == nil {
		doc[key] = []any{}
		return []string{fmt.Sprintf("missing section %q; installed empty default", key)}
	}
	list, ok := value.([]any)
	if !ok {
		doc[key] = []any{}
		return []string{fmt.Sprintf("section %q had the wrong shape; replaced with empty default", key)}
	}
	out := make([]any, 0, len(list))
	var warnings []string
	for i, element := range list {
		if _, ok := element.(map[string]any); !ok {
			warnings = append(warnings, fmt.Sprintf("%s #%d: element is not a mapping; dropped", key, i+1))
			continue
		}
		out = append(out, element)
	}
	doc[key] = out
	return warnings
}
