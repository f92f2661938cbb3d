// Package schema is the entity kind registry: the single table describing
// every record kind the document can hold.
//
// For each kind the registry knows its collection key in the document, a
// display label, the recognized field set with per-field shapes (derived by
// reflection from the record struct's json tags), which fields are required,
// default values for enum-like fields, and how to reach the collection inside
// a Project. Repair uses the shapes to coerce raw records; import uses the
// field set to filter foreign keys and the accessors to merge accepted
// records.
//
// Field lookups are pure and total: an unknown kind yields an empty field
// set, never an error. Callers must treat an empty result as "nothing
// recognized", not "this kind has no fields".
//
// The package also owns the cascade cleanup table: the finite list of "on
// delete of kind X, sweep field F of kind Y" rules applied after a record is
// removed. The sweep is best-effort and eager, not transactional.
package schema
