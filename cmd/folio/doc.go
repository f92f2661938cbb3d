// Package main hosts the folio CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into calls on
// the persistence engines: project creation, document inspection and repair,
// import/merge runs, record removal with cascade cleanup, full-text search,
// chapter management, and configuration scaffolding. It centralizes configuration resolution, project locking, and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
// That separation keeps the CLI declarative while the heavy lifting lives in
// reusable engine components.
package main
