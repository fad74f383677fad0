package supabase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvisioner(mock *MockClient) *Provisioner {
	p := NewProvisioner(mock, "org-test")
	p.PollInterval = time.Millisecond
	p.ReadyTimeout = 100 * time.Millisecond
	return p
}

func TestProvisionerCreate(t *testing.T) {
	t.Parallel()

	t.Run("full happy path", func(t *testing.T) {
		t.Parallel()

		mock := &MockClient{}
		p := newTestProvisioner(mock)

		creds, err := p.Create(context.Background(), "jane_doe")
		require.NoError(t, err)

		assert.Equal(t, "proj-mock", creds.ProjectID)
		assert.Equal(t, "https://proj-mock.supabase.co", creds.URL)
		assert.Equal(t, "anon-key-mock", creds.AnonKey)
		assert.Equal(t, "service-role-key-mock", creds.ServiceRoleKey)
		assert.Len(t, creds.DBPassword, dbPasswordLength)

		require.Len(t, mock.Queries, 1)
		assert.Contains(t, mock.Queries[0], "CREATE EXTENSION IF NOT EXISTS vector")
		assert.Contains(t, mock.Queries[0], "CREATE TABLE IF NOT EXISTS messages")
	})

	t.Run("project name and request fields", func(t *testing.T) {
		t.Parallel()

		var got CreateProjectRequest
		mock := &MockClient{
			CreateProjectFunc: func(_ context.Context, req CreateProjectRequest) (*Project, error) {
				got = req
				return &Project{ID: "proj-1", Status: StatusActiveHealthy}, nil
			},
		}
		p := newTestProvisioner(mock)

		_, err := p.Create(context.Background(), "jane_doe")
		require.NoError(t, err)

		assert.Equal(t, "rafi-jane_doe", got.Name)
		assert.Equal(t, "org-test", got.OrganizationID)
		assert.Equal(t, "us-east-1", got.Region)
		assert.Equal(t, "free", got.Plan)
		assert.Len(t, got.DBPassword, dbPasswordLength)
	})

	t.Run("create failure", func(t *testing.T) {
		t.Parallel()

		mock := &MockClient{
			CreateProjectFunc: func(_ context.Context, _ CreateProjectRequest) (*Project, error) {
				return nil, &ProvisioningError{Op: "create project", StatusCode: 402, Err: errors.New("quota")}
			},
		}
		p := newTestProvisioner(mock)

		creds, err := p.Create(context.Background(), "jane_doe")
		require.Error(t, err)
		assert.Nil(t, creds)

		var provErr *ProvisioningError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, 402, provErr.StatusCode)
	})

	t.Run("half-created project returns credentials with the error", func(t *testing.T) {
		t.Parallel()

		mock := &MockClient{
			RunQueryFunc: func(_ context.Context, _, _ string) error {
				return &ProvisioningError{Op: "run query", StatusCode: 500, Err: errors.New("boom")}
			},
		}
		p := newTestProvisioner(mock)

		creds, err := p.Create(context.Background(), "jane_doe")
		require.Error(t, err)
		require.NotNil(t, creds)
		assert.Equal(t, "proj-mock", creds.ProjectID)
	})

	t.Run("missing api keys", func(t *testing.T) {
		t.Parallel()

		mock := &MockClient{
			ListAPIKeysFunc: func(_ context.Context, _ string) ([]APIKey, error) {
				return []APIKey{{Name: "anon", APIKey: "only-anon"}}, nil
			},
		}
		p := newTestProvisioner(mock)

		creds, err := p.Create(context.Background(), "jane_doe")
		require.Error(t, err)
		require.NotNil(t, creds)
		assert.Contains(t, err.Error(), "service_role")
	})
}

func TestProvisionerWaitReady(t *testing.T) {
	t.Parallel()

	t.Run("becomes healthy after a few polls", func(t *testing.T) {
		t.Parallel()

		polls := 0
		mock := &MockClient{
			GetProjectFunc: func(_ context.Context, projectID string) (*Project, error) {
				polls++
				if polls < 3 {
					return &Project{ID: projectID, Status: "COMING_UP"}, nil
				}
				return &Project{ID: projectID, Status: StatusActiveHealthy}, nil
			},
		}
		p := newTestProvisioner(mock)

		_, err := p.Create(context.Background(), "jane_doe")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, polls, 3)
	})

	t.Run("terminal status fails fast", func(t *testing.T) {
		t.Parallel()

		for _, status := range []Status{StatusRemoved, StatusPaused, StatusInactive} {
			mock := &MockClient{
				GetProjectFunc: func(_ context.Context, projectID string) (*Project, error) {
					return &Project{ID: projectID, Status: status}, nil
				},
			}
			p := newTestProvisioner(mock)

			_, err := p.Create(context.Background(), "jane_doe")
			require.Error(t, err, "status %s", status)
			assert.Contains(t, err.Error(), string(status))
			assert.NotErrorIs(t, err, ErrProjectTimeout)
		}
	})

	t.Run("timeout when never healthy", func(t *testing.T) {
		t.Parallel()

		mock := &MockClient{
			GetProjectFunc: func(_ context.Context, projectID string) (*Project, error) {
				return &Project{ID: projectID, Status: "COMING_UP"}, nil
			},
		}
		p := newTestProvisioner(mock)

		_, err := p.Create(context.Background(), "jane_doe")
		assert.ErrorIs(t, err, ErrProjectTimeout)
	})

	t.Run("transient poll errors are retried", func(t *testing.T) {
		t.Parallel()

		polls := 0
		mock := &MockClient{
			GetProjectFunc: func(_ context.Context, projectID string) (*Project, error) {
				polls++
				if polls == 1 {
					return nil, &ProvisioningError{Op: "get project", StatusCode: 503, Err: errors.New("unavailable")}
				}
				return &Project{ID: projectID, Status: StatusActiveHealthy}, nil
			},
		}
		p := newTestProvisioner(mock)

		_, err := p.Create(context.Background(), "jane_doe")
		require.NoError(t, err)
	})

	t.Run("cancelled context stops the wait", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		mock := &MockClient{
			GetProjectFunc: func(_ context.Context, projectID string) (*Project, error) {
				cancel()
				return &Project{ID: projectID, Status: "COMING_UP"}, nil
			},
		}
		p := newTestProvisioner(mock)
		p.ReadyTimeout = time.Minute

		_, err := p.Create(ctx, "jane_doe")
		assert.ErrorIs(t, err, ErrProjectTimeout)
	})
}

func TestProvisionerDelete(t *testing.T) {
	t.Parallel()

	mock := &MockClient{}
	p := newTestProvisioner(mock)

	require.NoError(t, p.Delete(context.Background(), "proj-1"))
	assert.Equal(t, []string{"proj-1"}, mock.DeletedProjects)
}

func TestGeneratePassword(t *testing.T) {
	t.Parallel()

	a, err := generatePassword(dbPasswordLength)
	require.NoError(t, err)
	b, err := generatePassword(dbPasswordLength)
	require.NoError(t, err)

	assert.Len(t, a, dbPasswordLength)
	assert.NotEqual(t, a, b)
	for _, r := range a {
		assert.Contains(t, passwordAlphabet, string(r))
	}
}
