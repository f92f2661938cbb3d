// Package imports merges foreign worldbuilding documents into a project.
//
// An import document needs no particular top-level shape: any known
// collection key found at the top level or inside its owning section is a
// candidate list, and records embedded inside factions or places are first
// lifted into their own collections by the nested-entity extractor.
// Candidates are filtered to recognized fields, constructed, and appended
// under a configurable duplicate policy; everything rejected or renamed
// along the way is reported on the returned Result.
package imports
