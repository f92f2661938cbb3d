package repair

import (
	"fmt"
	"math"
	"time"

	"folio/internal/schema"
)

// RepairRecord coerces a raw record into one the kind's constructor accepts.
// index is the record's 1-based position in its collection, used for
// placeholder identifiers and warning messages. Unknown kinds yield an empty
// record: nothing was recognized, so nothing survives.
//
// Only the top-level shape of each field is checked. Mismatches deeper inside
// nested structures (a string where an army branch expects a number) are left
// for typed construction to reject and the salvage path to contain.
func RepairRecord(kind schema.Kind, index int, raw map[string]any) (map[string]any, []string) {
	d, ok := schema.Lookup(kind)
	if !ok {
		return map[string]any{}, nil
	}

	out := make(map[string]any, len(raw))
	var warnings []string

	for key, value := range raw {
		field, known := d.Field(key)
		if !known {
			// Unrecognized fields are discarded silently; external documents
			// routinely carry keys that mean nothing here.
			continue
		}
		if value == nil {
			// A null value is an absent field, not a shape mismatch. Required
			// fields fall through to the fill pass below.
			continue
		}
		if shapeMatches(field, value) {
			out[key] = value
			continue
		}
		if d.Required(key) {
			def := defaultValue(d, field, index)
			out[key] = def
			warnings = append(warnings, fmt.Sprintf("%s #%d: field %q had the wrong shape (expected %s); replaced with default",
				d.Label, index, key, field.Shape))
			continue
		}
		warnings = append(warnings, fmt.Sprintf("%s #%d: dropped field %q (expected %s)",
			d.Label, index, key, field.Shape))
	}

	for _, name := range d.RequiredFields() {
		if _, present := out[name]; present {
			continue
		}
		field, _ := d.Field(name)
		out[name] = defaultValue(d, field, index)
		warnings = append(warnings, fmt.Sprintf("%s #%d: missing required field %q; set to %v",
			d.Label, index, name, out[name]))
	}

	return out, warnings
}

// shapeMatches reports whether a decoded JSON or YAML value fits the field's
// basic shape.
func shapeMatches(field schema.Field, value any) bool {
	switch field.Shape {
	case schema.ShapeText:
		_, ok := value.(string)
		return ok
	case schema.ShapeNumber:
		return numberMatches(field, value)
	case schema.ShapeBool:
		_, ok := value.(bool)
		return ok
	case schema.ShapeList:
		_, ok := value.([]any)
		return ok
	case schema.ShapeMapping:
		_, ok := value.(map[string]any)
		return ok
	case schema.ShapeTime:
		return timeMatches(value)
	default:
		return false
	}
}

func numberMatches(field schema.Field, value any) bool {
	switch v := value.(type) {
	case float64:
		// JSON numbers always decode as float64; a fractional value would
		// choke the typed constructor on an integer field.
		return !field.Integer || math.Trunc(v) == v
	case float32:
		return !field.Integer || math.Trunc(float64(v)) == float64(v)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

func timeMatches(value any) bool {
	switch v := value.(type) {
	case string:
		_, err := time.Parse(time.RFC3339, v)
		return err == nil
	case time.Time:
		// YAML decodes timestamp scalars directly.
		return true
	default:
		return false
	}
}

// defaultValue produces the documented default for a field: placeholder
// identifiers, generic display names, registry enum defaults, or the shape's
// empty value.
func defaultValue(d *schema.Descriptor, field schema.Field, index int) any {
	if field.Name == "id" {
		return fmt.Sprintf("%s_%d_%d", d.Kind, index, time.Now().Unix())
	}
	if field.Name == "name" || field.Name == "title" {
		return fmt.Sprintf("Unnamed %s %d", d.Label, index)
	}
	if def, ok := d.EnumDefault(field.Name); ok {
		return def
	}
	switch field.Shape {
	case schema.ShapeText:
		return ""
	case schema.ShapeNumber:
		return 0
	case schema.ShapeBool:
		return false
	case schema.ShapeList:
		return []any{}
	case schema.ShapeMapping:
		return map[string]any{}
	case schema.ShapeTime:
		return time.Now().UTC().Format(time.RFC3339)
	default:
		return ""
	}
}
