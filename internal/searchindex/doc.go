// Package searchindex maintains a full-text index over a project's chapters
// and worldbuilding entities.
//
// The index is a SQLite database with one FTS5 table of text chunks: chapter
// bodies split into word-bounded chunks, and one chunk per entity built from
// its name and prose fields. Search ranks chunks with bm25; Similar ranks
// them by TF-IDF cosine similarity against free-form text, which catches
// related passages that share no exact query term.
//
// The database is a disposable cache stored under the project's .folio
// directory, never authoritative: Rebuild repopulates it from the in-memory
// project inside one transaction, and an index whose schema version is stale
// is dropped and recreated on open rather than migrated. Deleting the file is
// always safe.
package searchindex
