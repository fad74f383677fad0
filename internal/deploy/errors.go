package deploy

import "fmt"

// DeploymentError wraps the cause of a failed deployment after rollback
// has run. RollbackErrors lists compensations that themselves failed
// and therefore need manual cleanup; they never mask the cause.
type DeploymentError struct {
	ClientID       string
	Step           string
	Err            error
	RollbackErrors []error
}

func (e *DeploymentError) Error() string {
	msg := fmt.Sprintf("deployment of %q failed at step %s: %v", e.ClientID, e.Step, e.Err)
	if len(e.RollbackErrors) > 0 {
		msg += fmt.Sprintf(" (%d rollback step(s) also failed, manual cleanup may be required)", len(e.RollbackErrors))
	}
	return msg
}

func (e *DeploymentError) Unwrap() error { return e.Err }
