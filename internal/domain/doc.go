// Package domain contains the core entities and value objects for muse.
//
// This is the innermost layer: it has no dependencies on HTTP, the file
// system, or logging, and holds only the vocabulary of the problem.
//
// # Entities
//
//   - [Word]: one result from the word-association service
//   - [Query]: a lookup request (term, relation, result cap)
//   - [Relation]: the association kind and its service query parameter
//   - [WordList]: the in-memory saved-words list for a session
//
// Entities are plain values, free of infrastructure, and testable without
// mocks or external systems.
package domain
