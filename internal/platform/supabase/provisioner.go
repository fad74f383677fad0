package supabase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/rafi-ai/rafi-deploy/internal/util/naming"
)

const (
	// DefaultRegion is where client projects are created.
	DefaultRegion = "us-east-1"
	// DefaultPlan is the Supabase plan for client projects.
	DefaultPlan = "free"

	dbPasswordLength = 32
	passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"
)

// Provisioner creates fully migrated client projects and deletes them
// again on rollback.
type Provisioner struct {
	projects ProjectManager
	orgID    string
	region   string
	plan     string

	// PollInterval and ReadyTimeout bound the readiness wait.
	// Shrunk in tests.
	PollInterval time.Duration
	ReadyTimeout time.Duration
}

// NewProvisioner creates a Provisioner for the given organization.
func NewProvisioner(projects ProjectManager, orgID string) *Provisioner {
	return &Provisioner{
		projects:     projects,
		orgID:        orgID,
		region:       DefaultRegion,
		plan:         DefaultPlan,
		PollInterval: 10 * time.Second,
		ReadyTimeout: 5 * time.Minute,
	}
}

// Create provisions a project named rafi-{clientID}: creates it with a
// random database password, waits for it to become healthy, fetches its
// API keys, and applies the schema migrations. On any failure after
// creation the project may half-exist; the caller is expected to Delete
// it using the ID carried in the returned error where available.
func (p *Provisioner) Create(ctx context.Context, clientID string) (*ProjectCredentials, error) {
	password, err := generatePassword(dbPasswordLength)
	if err != nil {
		return nil, fmt.Errorf("generating database password: %w", err)
	}

	project, err := p.projects.CreateProject(ctx, CreateProjectRequest{
		Name:           naming.Project(clientID),
		OrganizationID: p.orgID,
		Region:         p.region,
		Plan:           p.plan,
		DBPassword:     password,
	})
	if err != nil {
		return nil, err
	}

	creds := &ProjectCredentials{
		ProjectID:  project.ID,
		URL:        fmt.Sprintf("https://%s.supabase.co", project.ID),
		DBPassword: password,
	}

	if err := p.waitReady(ctx, project.ID); err != nil {
		return creds, err
	}

	keys, err := p.projects.ListAPIKeys(ctx, project.ID)
	if err != nil {
		return creds, err
	}
	for _, key := range keys {
		name := strings.ToLower(key.Name)
		switch {
		case strings.Contains(name, "anon"):
			creds.AnonKey = key.APIKey
		case strings.Contains(name, "service"):
			creds.ServiceRoleKey = key.APIKey
		}
	}
	if creds.AnonKey == "" || creds.ServiceRoleKey == "" {
		return creds, &ProvisioningError{
			Op:  "list api keys",
			Err: fmt.Errorf("project %s is missing anon or service_role key", project.ID),
		}
	}

	if err := p.projects.RunQuery(ctx, project.ID, migrationsSQL); err != nil {
		return creds, err
	}

	return creds, nil
}

// Delete permanently removes a project. Used by teardown and by
// deployment rollback.
func (p *Provisioner) Delete(ctx context.Context, projectID string) error {
	return p.projects.DeleteProject(ctx, projectID)
}

// GetStatus returns the project's current lifecycle status.
func (p *Provisioner) GetStatus(ctx context.Context, projectID string) (Status, error) {
	project, err := p.projects.GetProject(ctx, projectID)
	if err != nil {
		return "", err
	}
	return project.Status, nil
}

// waitReady polls the project until it reports ACTIVE_HEALTHY. Terminal
// statuses fail immediately; transient lookup errors are retried on the
// next tick. The wait is bounded by ReadyTimeout and by ctx.
func (p *Provisioner) waitReady(ctx context.Context, projectID string) error {
	ctx, cancel := context.WithTimeout(ctx, p.ReadyTimeout)
	defer cancel()

	ticker := time.NewTicker(p.PollInterval)
	defer ticker.Stop()

	for {
		project, err := p.projects.GetProject(ctx, projectID)
		if err == nil {
			if project.Status == StatusActiveHealthy {
				return nil
			}
			if project.Status.terminal() {
				return &ProvisioningError{
					Op:  "wait ready",
					Err: fmt.Errorf("project %s entered status %s", projectID, project.Status),
				}
			}
		}

		select {
		case <-ctx.Done():
			return &ProvisioningError{
				Op:  "wait ready",
				Err: fmt.Errorf("%w: project %s", ErrProjectTimeout, projectID),
			}
		case <-ticker.C:
		}
	}
}

func generatePassword(length int) (string, error) {
	var b strings.Builder
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(passwordAlphabet[n.Int64()])
	}
	return b.String(), nil
}
