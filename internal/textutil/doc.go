// Package textutil provides text processing utilities for word counting,
// fingerprinting, similarity, and filename sanitization.
//
// The primary use cases are:
//   - Maintaining chapter and manuscript word counts
//   - Creating token-based fingerprints from chapter and entity text
//   - Computing cosine similarity between fingerprints for related-passage search
//   - Sanitizing project and export filenames for safe filesystem use
//
// Fingerprints use term frequency vectors normalized for efficient comparison.
// The tokenization process lowercases text, splits on non-alphanumeric characters,
// and filters tokens shorter than 3 characters.
package textutil
