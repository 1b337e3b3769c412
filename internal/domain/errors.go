package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a uniqueness or referential-integrity conflict
	// (duplicate category name, network still referenced by articles).
	ErrConflict = errors.New("conflict")
	// ErrValidation indicates a malformed field or an unknown foreign-key
	// reference on a single-record operation.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidPayload indicates an import payload whose top-level shape is
	// unusable (not an array or wrapped array, or empty). It fails the whole
	// call, unlike per-record errors which are reported as data.
	ErrInvalidPayload = errors.New("invalid import payload")
)
