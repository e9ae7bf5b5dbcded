package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a content type the converter cannot handle.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrCrateNotFound indicates docs.rs has no documentation for the
	// requested crate or version.
	ErrCrateNotFound = errors.New("crate documentation not found")

	// ErrRateLimited indicates the docs.rs rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrCacheUnavailable indicates the page cache is not configured.
	// Conversion still works; results are simply not persisted.
	ErrCacheUnavailable = errors.New("page cache unavailable")
)
