// Package preflight implements the doctor checks that verify a folio
// installation and a project directory are healthy: configured directories
// are writable, the index document parses, externalized chapter files are
// present, the project lock is available, and the search index opens.
//
// Checks never mutate the project. Each returns a Result naming the check,
// whether it passed, and a human-readable detail line; the CLI renders the
// set as aligned status lines.
package preflight
