package twilio

import (
	"errors"
	"fmt"
)

// ErrNoNumbersAvailable is returned when a number search yields no
// candidates for the requested area code and country.
var ErrNoNumbersAvailable = errors.New("no phone numbers available")

// ErrNumberNotFound is returned when an operation targets a number that is
// not present in the account. Release treats this as an error rather than
// a no-op; rollback callers log and continue.
var ErrNumberNotFound = errors.New("phone number not found in account")

// ProvisioningError describes a failed telephony provider operation.
// StatusCode carries the provider's HTTP status when one was returned.
type ProvisioningError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *ProvisioningError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("twilio %s failed (status %d): %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("twilio %s failed: %v", e.Op, e.Err)
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}
