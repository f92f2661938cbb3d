// Package repair coerces malformed raw documents into loadable projects.
//
// The package works in three escalating layers:
//
// RepairRecord fixes a single raw record against its kind's schema entry:
// unrecognized fields are silently discarded, recognized fields of the wrong
// shape are defaulted (required) or dropped (optional), and missing required
// fields are filled with documented defaults. It never fails and never
// consults sibling records, so cross-record problems such as dangling ally
// references are out of its scope.
//
// RepairDocument walks the fixed top-level section list (manuscript,
// characters, story_planning, worldbuilding, generated_images,
// agent_contacts), installing empty defaults for absent or wrongly shaped
// sections and running RepairRecord over every record of every known
// collection. List elements that are not mappings are dropped, not repaired.
//
// BuildProject repairs and then constructs the typed Project. If full
// construction still fails, it falls back to salvage: each top-level section
// is constructed in isolation and sections that cannot be built are replaced
// with their empty defaults. BuildProject therefore always returns a usable
// Project for any syntactically valid input; what was lost or altered is
// reported in the returned warning list, never swallowed.
//
// Warnings identify the record by kind label and 1-based position
// ("Faction #2: ..."), matching what the import engine reports.
package repair
