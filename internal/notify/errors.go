package notify

import "fmt"

// NotificationError reports a failed notification step. The deployment
// treats it as non-fatal: the authorization URL is printed for manual
// delivery instead.
type NotificationError struct {
	Op  string
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification %s: %v", e.Op, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }
