package domain

import "errors"

var (
	// ErrProfileNotFound is returned by the registry for a code that was never
	// registered. This is a configuration defect, distinct from "no supplier
	// detected", which is a normal outcome.
	ErrProfileNotFound = errors.New("supplier profile not found in registry")

	// ErrInvalidProfile is returned when profile data fails load-time
	// validation (bad regex, capture-group mapping out of range, duplicate code).
	ErrInvalidProfile = errors.New("invalid supplier profile configuration")

	ErrUnsupportedFileType = errors.New("unsupported file type")
)
