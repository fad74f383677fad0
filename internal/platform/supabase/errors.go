package supabase

import (
	"errors"
	"fmt"
)

// ErrProjectTimeout indicates a project did not reach ACTIVE_HEALTHY
// within the readiness budget.
var ErrProjectTimeout = errors.New("project did not become ready in time")

// ErrMissingProjectID indicates the API accepted a create request but
// returned no project ID.
var ErrMissingProjectID = errors.New("API did not return a project ID")

// ProvisioningError wraps a Management API failure with the operation
// that produced it and, when available, the HTTP status code.
type ProvisioningError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *ProvisioningError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("supabase %s (status %d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("supabase %s: %v", e.Op, e.Err)
}

func (e *ProvisioningError) Unwrap() error { return e.Err }
