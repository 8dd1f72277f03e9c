// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrValidation indicates malformed, out-of-range or out-of-vocabulary input.
	ErrValidation = errors.New("validation failed")

	// ErrReference indicates a foreign identifier that does not resolve to an existing entity.
	ErrReference = errors.New("referenced entity does not exist")

	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
)
