package domain

import "errors"

// Domain errors returned by the public API, checkable with errors.Is.
var (
	// ErrEmptyTerm is returned when a query has no lookup term.
	ErrEmptyTerm = errors.New("muse: empty lookup term")

	// ErrUnknownRelation is returned for a relation the service cannot serve.
	ErrUnknownRelation = errors.New("muse: unknown relation")

	// ErrInvalidQuery is returned when query parameters fail validation.
	ErrInvalidQuery = errors.New("muse: invalid query")
)
