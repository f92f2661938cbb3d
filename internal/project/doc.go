// Package project defines the writer's project document model.
//
// Project is the root aggregate: one Manuscript, one Worldbuilding collection,
// the character roster, a StoryPlanning record, and auxiliary collections
// (generated images, agent contacts, the custom dictionary). The whole tree is
// persisted as a single JSON index document; chapter bodies may be
// externalized into per-chapter files by the store package.
//
// Entities never hold references to each other. Cross-references are string
// identifiers (a faction's ally is another faction's id) resolved by lookup
// against the owning collection. Identifiers are unique within a collection
// but not across collections, so lookups are always kind-scoped.
//
// # Key Types
//
// Project: root container with section accessors and metadata timestamps.
//
// Manuscript and Chapter: ordered chapter sequence; Chapter carries content,
// revision history, annotations, and a word count cache.
//
// Worldbuilding: the structured entity collections (factions, places, armies,
// economies, and so on) plus legacy free-text sections kept for older files.
//
// # Validation
//
// Record types that can arrive from imported documents implement Validate,
// reporting missing identifiers and out-of-range enum values. Validation never
// mutates; repair semantics live in the repair package.
package project
