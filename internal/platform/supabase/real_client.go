package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const baseURL = "https://api.supabase.com/v1"

// Client is a minimal Supabase Management API client. There is no
// official Go SDK for the Management API, so this speaks REST directly.
type Client struct {
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a Management API client authenticated with a
// personal access token.
func NewClient(accessToken string) *Client {
	return &Client{
		accessToken: accessToken,
		httpClient:  &http.Client{},
	}
}

// CreateProject creates a new project in the given organization.
func (c *Client) CreateProject(ctx context.Context, reqBody CreateProjectRequest) (*Project, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/projects", reqBody)
	if err != nil {
		return nil, err
	}

	var project Project
	if err := c.do(req, &project); err != nil {
		return nil, &ProvisioningError{Op: "create project", StatusCode: statusOf(err), Err: err}
	}
	if project.ID == "" {
		return nil, &ProvisioningError{Op: "create project", Err: ErrMissingProjectID}
	}
	return &project, nil
}

// GetProject returns the current state of a project.
func (c *Client) GetProject(ctx context.Context, projectID string) (*Project, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/projects/"+projectID, nil)
	if err != nil {
		return nil, err
	}

	var project Project
	if err := c.do(req, &project); err != nil {
		return nil, &ProvisioningError{Op: "get project", StatusCode: statusOf(err), Err: err}
	}
	return &project, nil
}

// ListAPIKeys returns the project's API keys (anon and service_role
// among them).
func (c *Client) ListAPIKeys(ctx context.Context, projectID string) ([]APIKey, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/projects/"+projectID+"/api-keys", nil)
	if err != nil {
		return nil, err
	}

	var keys []APIKey
	if err := c.do(req, &keys); err != nil {
		return nil, &ProvisioningError{Op: "list api keys", StatusCode: statusOf(err), Err: err}
	}
	return keys, nil
}

// RunQuery executes SQL against the project database through the
// Management API query endpoint.
func (c *Client) RunQuery(ctx context.Context, projectID, sql string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/projects/"+projectID+"/database/query",
		map[string]string{"query": sql})
	if err != nil {
		return err
	}

	var result json.RawMessage
	if err := c.do(req, &result); err != nil {
		return &ProvisioningError{Op: "run query", StatusCode: statusOf(err), Err: err}
	}
	return nil
}

// DeleteProject permanently deletes a project and all its data.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/projects/"+projectID, nil)
	if err != nil {
		return err
	}

	var result json.RawMessage
	if err := c.do(req, &result); err != nil {
		return &ProvisioningError{Op: "delete project", StatusCode: statusOf(err), Err: err}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// httpError preserves the response status code for ProvisioningError.
type httpError struct {
	statusCode int
	body       string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.statusCode, e.body)
}

func statusOf(err error) int {
	if he, ok := err.(*httpError); ok {
		return he.statusCode
	}
	return 0
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &httpError{statusCode: resp.StatusCode, body: string(body)}
	}

	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse response: %w (status %d)", err, resp.StatusCode)
	}
	return nil
}
