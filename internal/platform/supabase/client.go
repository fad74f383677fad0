package supabase

import "context"

// Status is a Supabase project lifecycle status as reported by the
// Management API.
type Status string

// Project statuses this package acts on. The API reports more states
// (COMING_UP, RESTORING, ...); anything not listed here is treated as
// "still provisioning" by the readiness poll.
const (
	StatusActiveHealthy Status = "ACTIVE_HEALTHY"
	StatusRemoved       Status = "REMOVED"
	StatusPaused        Status = "PAUSED"
	StatusInactive      Status = "INACTIVE"
)

// terminal reports whether the status means the project will never
// become healthy without operator intervention.
func (s Status) terminal() bool {
	switch s {
	case StatusRemoved, StatusPaused, StatusInactive:
		return true
	}
	return false
}

// Project is a Supabase project as returned by the Management API.
type Project struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
	Status Status `json:"status"`
}

// APIKey is one entry of a project's api-keys listing.
type APIKey struct {
	Name   string `json:"name"`
	APIKey string `json:"api_key"`
}

// CreateProjectRequest is the payload for project creation.
type CreateProjectRequest struct {
	Name           string `json:"name"`
	OrganizationID string `json:"organization_id"`
	Region         string `json:"region"`
	Plan           string `json:"plan"`
	DBPassword     string `json:"db_pass"`
}

// ProjectCredentials is everything a freshly provisioned project hands
// to the assistant runtime.
type ProjectCredentials struct {
	ProjectID      string
	URL            string
	AnonKey        string
	ServiceRoleKey string
	DBPassword     string
}

// ProjectManager abstracts the Management API operations used by the
// Provisioner, so tests can substitute a mock.
type ProjectManager interface {
	CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error)
	GetProject(ctx context.Context, projectID string) (*Project, error)
	ListAPIKeys(ctx context.Context, projectID string) ([]APIKey, error)
	RunQuery(ctx context.Context, projectID, sql string) error
	DeleteProject(ctx context.Context, projectID string) error
}
