package imports

import (
	"fmt"

	"folio/internal/project"
	"folio/internal/schema"
)

// extraction declares one nested-entity pull: records found under a parent
// collection's nested key are lifted into a target collection. backRef names
// the target field stamped with the parent record's id, "" for none.
type extraction struct {
	parent  string
	key     string
	target  string
	backRef string
}

// extractions is the fixed mapping registry. Militaries is the legacy
// spelling of a faction's nested armies; both are honored.
var extractions = []extraction{
	{parent: "factions", key: "militaries", target: "armies", backRef: "faction_id"},
	{parent: "factions", key: "armies", target: "armies", backRef: "faction_id"},
	{parent: "factions", key: "characters", target: "characters", backRef: "faction_id"},
	{parent: "factions", key: "economies", target: "economies", backRef: "faction_id"},
	{parent: "places", key: "characters", target: "characters", backRef: ""},
}

// ExtractNested lifts records embedded in parent records into their own
// top-level collections on a working copy of the document. Extraction is
// additive: parent records and their nested fields are never modified, and
// each extracted record is a copy carrying a back-reference to its parent
// (when the target kind has such a field) and a fresh id when it arrived
// without one. The returned messages describe what was lifted.
func ExtractNested(doc map[string]any) (map[string]any, []string) {
	out := make(map[string]any, len(doc))
	for key, value := range doc {
		out[key] = value
	}
	var messages []string

	for _, rule := range extractions {
		parentDesc, ok := schema.ByCollection(rule.parent)
		if !ok {
			continue
		}
		targetDesc, ok := schema.ByCollection(rule.target)
		if !ok {
			continue
		}
		hasBackRef := false
		if rule.backRef != "" {
			_, hasBackRef = targetDesc.Field(rule.backRef)
		}

		var extracted []any
		for _, parentAny := range candidateList(doc, parentDesc) {
			parent, ok := parentAny.(map[string]any)
			if !ok {
				continue
			}
			value, ok := parent[rule.key]
			if !ok || value == nil {
				continue
			}
			parentID, _ := parent["id"].(string)
			switch nested := value.(type) {
			case []any:
				for _, element := range nested {
					if record, ok := element.(map[string]any); ok {
						extracted = append(extracted, adoptRecord(record, rule.backRef, hasBackRef, parentID))
					}
				}
			case map[string]any:
				if len(nested) > 0 {
					extracted = append(extracted, adoptRecord(nested, rule.backRef, hasBackRef, parentID))
				}
			}
		}
		if len(extracted) == 0 {
			continue
		}

		existing, _ := out[rule.target].([]any)
		merged := make([]any, 0, len(existing)+len(extracted))
		merged = append(merged, existing...)
		merged = append(merged, extracted...)
		out[rule.target] = merged
		messages = append(messages, fmt.Sprintf("extracted %d %s from %s.%s",
			len(extracted), rule.target, rule.parent, rule.key))
	}

	return out, messages
}

// adoptRecord copies a nested record and fills the identifiers extraction
// guarantees: the parent back-reference and an id of its own.
func adoptRecord(record map[string]any, backRef string, hasBackRef bool, parentID string) map[string]any {
	out := make(map[string]any, len(record)+2)
	for key, value := range record {
		out[key] = value
	}
	if hasBackRef && blankField(out, backRef) {
		out[backRef] = parentID
	}
	if blankField(out, "id") {
		out["id"] = project.NewID()
	}
	return out
}

// blankField reports whether a field is absent, null, or an empty string.
func blankField(record map[string]any, key string) bool {
	value, ok := record[key]
	if !ok || value == nil {
		return true
	}
	s, isString := value.(string)
	return isString && s == ""
}

// candidateList returns a collection's candidate records, unioning the
// top-level key with the collection's owning section, so flat exports and
// whole index documents both import cleanly.
func candidateList(doc map[string]any, d *schema.Descriptor) []any {
	var out []any
	if list, ok := doc[d.Collection].([]any); ok {
		out = append(out, list...)
	}
	if d.Section != "" {
		if section, ok := doc[d.Section].(map[string]any); ok {
			if list, ok := section[d.Collection].([]any); ok {
				out = append(out, list...)
			}
		}
	}
	return out
}
