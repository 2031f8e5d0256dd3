// internal/core/domain/errors.go
package domain

import "errors"

var (
	// ErrInvalidInput marks a non-numeric or out-of-range value supplied by the caller.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCapacityExceeded is returned when the phone number sequence is exhausted.
	ErrCapacityExceeded = errors.New("identifier capacity exceeded")

	// ErrDuplicateIdentifier is returned when a supplied barcode or serial is already in use.
	ErrDuplicateIdentifier = errors.New("identifier already in use")

	// ErrAllocationExhausted is returned when every synthesized candidate collided.
	ErrAllocationExhausted = errors.New("identifier allocation attempts exhausted")

	// ErrMalformedSequence reports a stored phone number maximum that is not numeric.
	ErrMalformedSequence = errors.New("malformed phone number sequence")

	// ErrAssetUnavailable means a barcode graphic could not be loaded.
	ErrAssetUnavailable = errors.New("label asset unavailable")

	// ErrRenderFailure wraps rasterization and document assembly errors.
	ErrRenderFailure = errors.New("label generation failed")

	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)
