package schema

import (
	"fmt"
	"reflect"
	"strings"

	"folio/internal/project"
)

// collection returns the kind's slice as an addressable reflect value.
func (d *Descriptor) collection(p *project.Project) reflect.Value {
	return reflect.ValueOf(d.slicePtr(p)).Elem()
}

// Len returns the number of records in the kind's collection.
func (d *Descriptor) Len(p *project.Project) int {
	return d.collection(p).Len()
}

// Records returns a boxed copy of every record in the kind's collection.
func (d *Descriptor) Records(p *project.Project) []any {
	list := d.collection(p)
	out := make([]any, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		out = append(out, list.Index(i).Interface())
	}
	return out
}

// Refs returns (id, name) handles for every record in the kind's collection.
func (d *Descriptor) Refs(p *project.Project) []Ref {
	list := d.collection(p)
	out := make([]Ref, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		rec := list.Index(i)
		out = append(out, Ref{ID: stringField(rec, "ID"), Name: displayName(rec)})
	}
	return out
}

// Texts returns the searchable text of every record: the display name plus
// every string and string-list field joined into one body.
func (d *Descriptor) Texts(p *project.Project) []RecordText {
	list := d.collection(p)
	out := make([]RecordText, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		rec := list.Index(i)
		out = append(out, RecordText{
			ID:   stringField(rec, "ID"),
			Name: displayName(rec),
			Body: gatherText(rec),
		})
	}
	return out
}

// Append adds a record to the kind's collection. The record must be the
// kind's concrete type, as produced by Construct.
func (d *Descriptor) Append(p *project.Project, rec any) error {
	rv := reflect.ValueOf(rec)
	if rv.Type() != d.recordType {
		return fmt.Errorf("append %s: record type %T does not match %s", d.Kind, rec, d.recordType)
	}
	list := d.collection(p)
	list.Set(reflect.Append(list, rv))
	return nil
}

// Find returns the record with the given id.
func (d *Descriptor) Find(p *project.Project, id string) (any, bool) {
	list := d.collection(p)
	for i := 0; i < list.Len(); i++ {
		if stringField(list.Index(i), "ID") == id {
			return list.Index(i).Interface(), true
		}
	}
	return nil, false
}

// ContainsID reports whether a record with the given id exists in the kind's
// collection. Lookups are kind-scoped: the same id held by a record of a
// different kind is not a match.
func (d *Descriptor) ContainsID(p *project.Project, id string) bool {
	_, ok := d.Find(p, id)
	return ok
}

// remove deletes the record with the given id from the kind's collection,
// preserving order.
func (d *Descriptor) remove(p *project.Project, id string) bool {
	list := d.collection(p)
	for i := 0; i < list.Len(); i++ {
		if stringField(list.Index(i), "ID") != id {
			continue
		}
		next := reflect.AppendSlice(list.Slice(0, i), list.Slice(i+1, list.Len()))
		list.Set(next)
		return true
	}
	return false
}

// RecordID returns the record's id field.
func (d *Descriptor) RecordID(rec any) string {
	return stringField(reflect.ValueOf(rec), "ID")
}

// RecordName returns the record's display name.
func (d *Descriptor) RecordName(rec any) string {
	return displayName(reflect.ValueOf(rec))
}

// WithID returns a copy of the record with its id replaced.
func (d *Descriptor) WithID(rec any, id string) any {
	rv := reflect.ValueOf(rec)
	out := reflect.New(rv.Type()).Elem()
	out.Set(rv)
	if f := out.FieldByName("ID"); f.IsValid() && f.Kind() == reflect.String {
		f.SetString(id)
	}
	return out.Interface()
}

func stringField(rec reflect.Value, name string) string {
	f := rec.FieldByName(name)
	if !f.IsValid() || f.Kind() != reflect.String {
		return ""
	}
	return f.String()
}

// displayName prefers Name, falling back to Title for chapters. Kinds with
// neither (economies, political systems) display through their faction and
// return "".
func displayName(rec reflect.Value) string {
	if name := stringField(rec, "Name"); name != "" {
		return name
	}
	return stringField(rec, "Title")
}

// gatherText joins every string and []string field of a record into one
// space-separated body, skipping identifier fields.
func gatherText(rec reflect.Value) string {
	var parts []string
	rt := rec.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() || isIDField(sf.Name) {
			continue
		}
		fv := rec.Field(i)
		switch {
		case fv.Kind() == reflect.String:
			if s := fv.String(); s != "" {
				parts = append(parts, s)
			}
		case fv.Kind() == reflect.Slice && fv.Type().Elem().Kind() == reflect.String:
			for j := 0; j < fv.Len(); j++ {
				if s := fv.Index(j).String(); s != "" {
					parts = append(parts, s)
				}
			}
		}
	}
	return strings.Join(parts, " ")
}

func isIDField(name string) bool {
	return name == "ID" || strings.HasSuffix(name, "ID") || name == "FilePath" || name == "ImagePath"
}
