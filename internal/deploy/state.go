package deploy

import (
	"context"

	"github.com/rafi-ai/rafi-deploy/internal/platform/supabase"
)

// Step is one completed pipeline step together with the action that
// undoes it. The compensation closure is captured at success time with
// the concrete resource identifiers bound in, so rollback never has to
// re-derive what was created.
type Step struct {
	Name       string
	Compensate func(ctx context.Context) error
}

// State tracks a single deployment run. It lives only for the duration
// of the run; a process kill mid-flight leaves resources for manual
// cleanup.
type State struct {
	RunID      string
	ClientID   string
	ConfigPath string

	PhoneNumber string
	Credentials *supabase.ProjectCredentials
	HostPort    int
	OAuthSent   bool

	steps []Step
}

// record registers a completed step for potential rollback.
func (s *State) record(step Step) {
	s.steps = append(s.steps, step)
}

// completedSteps returns the names of recorded steps in order.
func (s *State) completedSteps() []string {
	names := make([]string, len(s.steps))
	for i, step := range s.steps {
		names[i] = step.Name
	}
	return names
}
