package supabase

import "context"

// MockClient is a mock implementation of ProjectManager.
// Unset funcs return a healthy default project.
type MockClient struct {
	CreateProjectFunc func(ctx context.Context, req CreateProjectRequest) (*Project, error)
	GetProjectFunc    func(ctx context.Context, projectID string) (*Project, error)
	ListAPIKeysFunc   func(ctx context.Context, projectID string) ([]APIKey, error)
	RunQueryFunc      func(ctx context.Context, projectID, sql string) error
	DeleteProjectFunc func(ctx context.Context, projectID string) error

	// DeletedProjects records every project ID passed to DeleteProject.
	DeletedProjects []string
	// Queries records every SQL statement passed to RunQuery.
	Queries []string
}

// CreateProject implements ProjectManager.
func (m *MockClient) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ctx, req)
	}
	return &Project{ID: "proj-mock", Name: req.Name, Region: req.Region, Status: StatusActiveHealthy}, nil
}

// GetProject implements ProjectManager.
func (m *MockClient) GetProject(ctx context.Context, projectID string) (*Project, error) {
	if m.GetProjectFunc != nil {
		return m.GetProjectFunc(ctx, projectID)
	}
	return &Project{ID: projectID, Status: StatusActiveHealthy}, nil
}

// ListAPIKeys implements ProjectManager.
func (m *MockClient) ListAPIKeys(ctx context.Context, projectID string) ([]APIKey, error) {
	if m.ListAPIKeysFunc != nil {
		return m.ListAPIKeysFunc(ctx, projectID)
	}
	return []APIKey{
		{Name: "anon", APIKey: "anon-key-mock"},
		{Name: "service_role", APIKey: "service-role-key-mock"},
	}, nil
}

// RunQuery implements ProjectManager.
func (m *MockClient) RunQuery(ctx context.Context, projectID, sql string) error {
	m.Queries = append(m.Queries, sql)
	if m.RunQueryFunc != nil {
		return m.RunQueryFunc(ctx, projectID, sql)
	}
	return nil
}

// DeleteProject implements ProjectManager.
func (m *MockClient) DeleteProject(ctx context.Context, projectID string) error {
	m.DeletedProjects = append(m.DeletedProjects, projectID)
	if m.DeleteProjectFunc != nil {
		return m.DeleteProjectFunc(ctx, projectID)
	}
	return nil
}
