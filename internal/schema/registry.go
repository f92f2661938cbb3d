package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"folio/internal/project"
)

// Kind identifies an entity kind known to the registry.
type Kind string

const (
	KindChapter         Kind = "chapter"
	KindCharacter       Kind = "character"
	KindFaction         Kind = "faction"
	KindPlace           Kind = "place"
	KindCulture         Kind = "culture"
	KindMyth            Kind = "myth"
	KindHistoricalEvent Kind = "historical_event"
	KindArmy            Kind = "army"
	KindEconomy         Kind = "economy"
	KindPoliticalSystem Kind = "political_system"
	KindPowerHierarchy  Kind = "power_hierarchy"
	KindTechnology      Kind = "technology"
	KindClimatePreset   Kind = "climate_preset"
	KindFlora           Kind = "flora"
	KindFauna           Kind = "fauna"
	KindStar            Kind = "star"
	KindStarSystem      Kind = "star_system"
)

// Shape classifies the basic JSON shape a field accepts.
type Shape int

const (
	ShapeText Shape = iota
	ShapeNumber
	ShapeBool
	ShapeList
	ShapeMapping
	ShapeTime
)

// String returns the lowercase shape name used in warning messages.
func (s Shape) String() string {
	switch s {
	case ShapeText:
		return "text"
	case ShapeNumber:
		return "number"
	case ShapeBool:
		return "bool"
	case ShapeList:
		return "list"
	case ShapeMapping:
		return "mapping"
	case ShapeTime:
		return "timestamp"
	default:
		return "unknown"
	}
}

// Field describes one recognized field of a record kind.
type Field struct {
	Name string
	// Shape is the accepted JSON shape.
	Shape Shape
	// Integer is set for number fields whose Go type is integral, so repair
	// can reject fractional values the decoder would choke on.
	Integer bool
}

// Ref is a lightweight (id, display name) handle onto a record.
type Ref struct {
	ID   string
	Name string
}

// RecordText is the searchable text of a record, used by the search index.
type RecordText struct {
	ID   string
	Name string
	Body string
}

// Descriptor holds everything the registry knows about one entity kind.
type Descriptor struct {
	Kind Kind
	// Collection is the document key of the kind's collection ("factions").
	Collection string
	// Section is the top-level section owning the collection: "" for a
	// top-level collection, otherwise "worldbuilding" or "manuscript".
	Section string
	// Label is the human-readable kind name ("Political System").
	Label string
	// Importable marks kinds the import engine accepts. Chapters are
	// repaired on load but never merged from foreign documents.
	Importable bool

	recordType  reflect.Type
	fields      map[string]Field
	fieldNames  []string
	required    map[string]bool
	enumDefault map[string]string

	// slicePtr returns a pointer to the kind's collection slice, e.g.
	// *[]project.Faction. All generic collection operations go through it.
	slicePtr func(p *project.Project) any
}

// descriptorSpec is the declaration form each registry entry is built from.
type descriptorSpec struct {
	kind        Kind
	collection  string
	section     string
	importable  bool
	record      any
	required    []string
	enumDefault map[string]string
	slicePtr    func(p *project.Project) any
}

var titleCaser = cases.Title(language.Und)

// descriptors is the full kind table, one entry per known kind. Declaration
// order fixes iteration order everywhere (repair walks, CLI listings).
var descriptors = buildDescriptors([]descriptorSpec{
	{
		kind: KindChapter, collection: "chapters", section: "manuscript",
		record:   project.Chapter{},
		required: []string{"id", "number", "title"},
		slicePtr: func(p *project.Project) any { return &p.Manuscript.Chapters },
	},
	{
		kind: KindCharacter, collection: "characters", importable: true,
		record:      project.Character{},
		required:    []string{"id", "name", "character_type"},
		enumDefault: map[string]string{"character_type": "minor"},
		slicePtr:    func(p *project.Project) any { return &p.Characters },
	},
	{
		kind: KindFaction, collection: "factions", section: "worldbuilding", importable: true,
		record:      project.Faction{},
		required:    []string{"id", "name", "faction_type"},
		enumDefault: map[string]string{"faction_type": "other"},
		slicePtr:    func(p *project.Project) any { return &p.Worldbuilding.Factions },
	},
	{
		kind: KindPlace, collection: "places", section: "worldbuilding", importable: true,
		record:   project.Place{},
		required: []string{"id", "name"},
		slicePtr: func(p *project.Project) any { return &p.Worldbuilding.Places },
	},
	{
		kind: KindCulture, collection: "cultures", section: "worldbuilding", importable: true,
		record:   project.Culture{},
		required: []string{"id", "name"},
		slicePtr: func(p *project.Project) any { return &p.Worldbuilding.Cultures },
	},
	{
		kind: KindMyth, collection: "myths", section: "worldbuilding", importable: true,
		record:   project.Myth{},
		required: []string{"id", "name"},
		slicePtr: func(p *project.Project) any { return &p.Worldbuilding.Myths },
	},
	{
		kind: KindHistoricalEvent, collection: "historical_events", section: "worldbuilding", importable: true,
		record:   project.HistoricalEvent{},
		required: []string{"id", "name"},
		slicePtr: func(p *project.Project) any { return &p.Worldbuilding.HistoricalEvents },
	},
	{
		kind: KindArmy, collection: "armies", section: "worldbuilding", importable: true,
		record:   project.Army{},
		required: []string{"id", "name", "faction_id"},
		slicePtr: func(p *project.Project) any { return &p.Worldbuilding.Armies },
	},
	{
		kind: KindEconomy, collection: "economies", section: "worldbuilding", importable: true,
		record:      project.Economy{},
		required:    []string{"id", "faction_id", "economy_type"},
		enumDefault: map[string]string{"economy_type": "mixed"},
		slicePtr:    func(p *project.Project) any { return &p.Worldbuilding.Economies },
	},
	{
		kind: KindPoliticalSystem, collection: "political_systems", section: "worldbuilding", importable: true,
		record:   project.PoliticalSystem{},
		required: []string{"id", "faction_id"},
		slicePtr: func(p *project.Project) any { return &p.Worldbuilding.PoliticalSystems },
	},
	{
		kind: KindPowerHierarchy, collection: "power_hierarchies", section: "worldbuilding", importable: true,
		record:   project.PowerHierarchy{},
		required: []string{"id", "name"},
		slicePtr: func(p *project.Project) any { return &p.Worldbuilding.PowerHierarchies },
	},
	{
		kind: KindTechnology, collection: "technologies", section: "worldbuilding", importable: true,
		record:   project.Technology{},
		required: []string{"id", "name"},
		slicePtr: func(p *project.Project) any { return &p.Worldbuilding.Technologies },
	},
	{
		kind: KindClimatePreset, collection: "climate_presets", section: "worldbuilding", importable: true,
		record:   project.ClimatePreset{},
		required: []string{"id", "name"},
		slicePtr: func(p *project.Project) any { return &p.Worldbuilding.ClimatePresets },
	},
	{
		kind: KindFlora, collection: "flora", section: "worldbuilding", importable: true,
		record:   project.Flora{},
		required: []string{"id", "name"},
		slicePtr: func(p *project.Project) any { return &p.Worldbuilding.Flora },
	},
	{
		kind: KindFauna, collection: "fauna", section: "worldbuilding", importable: true,
		record:   project.Fauna{},
		required: []string{"id", "name"},
		slicePtr: func(p *project.Project) any { return &p.Worldbuilding.Fauna },
	},
	{
		kind: KindStar, collection: "stars", section: "worldbuilding", importable: true,
		record:   project.Star{},
		required: []string{"id", "name"},
		slicePtr: func(p *project.Project) any { return &p.Worldbuilding.Stars },
	},
	{
		kind: KindStarSystem, collection: "star_systems", section: "worldbuilding", importable: true,
		record:   project.StarSystem{},
		required: []string{"id", "name"},
		slicePtr: func(p *project.Project) any { return &p.Worldbuilding.StarSystems },
	},
})

var (
	byKind       = make(map[Kind]*Descriptor, len(descriptors))
	byCollection = make(map[string]*Descriptor, len(descriptors))
)

func init() {
	for _, d := range descriptors {
		byKind[d.Kind] = d
		byCollection[d.Collection] = d
	}
}

func buildDescriptors(specs []descriptorSpec) []*Descriptor {
	out := make([]*Descriptor, 0, len(specs))
	for _, spec := range specs {
		rt := reflect.TypeOf(spec.record)
		fields := reflectFields(rt)
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)

		required := make(map[string]bool, len(spec.required))
		for _, name := range spec.required {
			if _, ok := fields[name]; !ok {
				panic(fmt.Sprintf("schema: kind %s requires unknown field %q", spec.kind, name))
			}
			required[name] = true
		}
		for name := range spec.enumDefault {
			if _, ok := fields[name]; !ok {
				panic(fmt.Sprintf("schema: kind %s defaults unknown field %q", spec.kind, name))
			}
		}

		out = append(out, &Descriptor{
			Kind:        spec.kind,
			Collection:  spec.collection,
			Section:     spec.section,
			Label:       titleCaser.String(strings.ReplaceAll(string(spec.kind), "_", " ")),
			Importable:  spec.importable,
			recordType:  rt,
			fields:      fields,
			fieldNames:  names,
			required:    required,
			enumDefault: spec.enumDefault,
			slicePtr:    spec.slicePtr,
		})
	}
	return out
}

var timeType = reflect.TypeOf(time.Time{})

// reflectFields derives the recognized field table from a record struct's
// json tags.
func reflectFields(rt reflect.Type) map[string]Field {
	fields := make(map[string]Field, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			continue
		}
		fields[name] = Field{
			Name:    name,
			Shape:   shapeOf(sf.Type),
			Integer: isIntegral(sf.Type),
		}
	}
	return fields
}

func shapeOf(t reflect.Type) Shape {
	if t == timeType {
		return ShapeTime
	}
	switch t.Kind() {
	case reflect.String:
		return ShapeText
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return ShapeNumber
	case reflect.Bool:
		return ShapeBool
	case reflect.Slice, reflect.Array:
		return ShapeList
	case reflect.Map, reflect.Struct:
		return ShapeMapping
	case reflect.Pointer:
		return shapeOf(t.Elem())
	default:
		return ShapeText
	}
}

func isIntegral(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

// Lookup returns the descriptor for a kind.
func Lookup(kind Kind) (*Descriptor, bool) {
	d, ok := byKind[kind]
	return d, ok
}

// ByCollection returns the descriptor owning a collection key.
func ByCollection(collection string) (*Descriptor, bool) {
	d, ok := byCollection[collection]
	return d, ok
}

// All returns every descriptor in declaration order.
func All() []*Descriptor {
	out := make([]*Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// Importable returns the descriptors of kinds the import engine accepts, in
// declaration order.
func Importable() []*Descriptor {
	out := make([]*Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		if d.Importable {
			out = append(out, d)
		}
	}
	return out
}

// Fields returns the sorted recognized field names for a kind. Unknown kinds
// yield an empty set, never an error.
func Fields(kind Kind) []string {
	d, ok := byKind[kind]
	if !ok {
		return []string{}
	}
	out := make([]string, len(d.fieldNames))
	copy(out, d.fieldNames)
	return out
}

// FieldNames returns the kind's sorted recognized field names.
func (d *Descriptor) FieldNames() []string {
	out := make([]string, len(d.fieldNames))
	copy(out, d.fieldNames)
	return out
}

// Field returns the shape entry for a field name.
func (d *Descriptor) Field(name string) (Field, bool) {
	f, ok := d.fields[name]
	return f, ok
}

// Required reports whether the field must be present in a minimally valid
// record.
func (d *Descriptor) Required(name string) bool {
	return d.required[name]
}

// RequiredFields returns the required field names in sorted order.
func (d *Descriptor) RequiredFields() []string {
	out := make([]string, 0, len(d.required))
	for _, name := range d.fieldNames {
		if d.required[name] {
			out = append(out, name)
		}
	}
	return out
}

// EnumDefault returns the documented default for an enum-like field.
func (d *Descriptor) EnumDefault(name string) (string, bool) {
	v, ok := d.enumDefault[name]
	return v, ok
}

// Construct builds a typed record from a raw mapping. Keys outside the
// recognized field set are silently discarded before decoding; the decoded
// record is then validated. The returned value is the concrete record type
// (project.Faction, project.Character, ...), not a pointer.
func (d *Descriptor) Construct(raw map[string]any) (any, error) {
	filtered := make(map[string]any, len(raw))
	for key, value := range raw {
		if _, ok := d.fields[key]; ok {
			filtered[key] = value
		}
	}
	data, err := json.Marshal(filtered)
	if err != nil {
		return nil, fmt.Errorf("encode candidate: %w", err)
	}
	target := reflect.New(d.recordType)
	if err := json.Unmarshal(data, target.Interface()); err != nil {
		return nil, fmt.Errorf("decode %s: %w", d.Kind, err)
	}
	record := target.Elem().Interface()
	if v, ok := record.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return record, nil
}
