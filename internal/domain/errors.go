package domain

import (
	"errors"
	"fmt"
)

// Failure taxonomy shared by both services. Callers classify with errors.Is
// and errors.As; storage and transport detail stays wrapped underneath.
var (
	// ErrInvalidPostalCode rejects malformed input before any I/O happens.
	ErrInvalidPostalCode = errors.New("postal code must contain exactly 8 digits")

	// ErrNotFound covers postal codes the provider does not know as well as
	// absent history, calculation and user ids.
	ErrNotFound = errors.New("not found")

	// ErrNoConfigKeys rejects a configuration update carrying no keys.
	ErrNoConfigKeys = errors.New("no configuration keys supplied")

	// ErrEmailTaken rejects a user create or update reusing another
	// user's email.
	ErrEmailTaken = errors.New("email already registered")
)

// UpstreamError reports a failed call to a remote collaborator with enough
// detail to tell which collaborator failed and how.
type UpstreamError struct {
	Service string // "viacep" or "distance-api"
	Status  int    // HTTP status when the upstream answered, zero otherwise
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Service, e.Status)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
