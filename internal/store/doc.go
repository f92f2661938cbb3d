// Package store persists writer projects to disk and loads them back.
//
// A project is saved as a single JSON index document plus, when chapter
// externalization is enabled, one Markdown body file per chapter under a
// chapters/ directory beside the index. Loading parses the index, routes the
// raw document through the repair engine so malformed state degrades to
// warnings instead of failures, and refreshes chapter bodies from their
// files.
//
// The package assumes a single process owns a project directory at a time;
// LockProject enforces that assumption with an advisory file lock.
package store
