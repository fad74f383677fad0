package ssh

import (
	"context"
	"os"
)

// MockRunner is a mock implementation of Runner.
// Unset funcs return success with empty output.
type MockRunner struct {
	ExecuteFunc    func(ctx context.Context, command string) (*Result, error)
	UploadFunc     func(ctx context.Context, data []byte, remotePath string, mode os.FileMode) error
	UploadFileFunc func(ctx context.Context, localPath, remotePath string, mode os.FileMode) error

	// Commands records every command passed to Execute, in order.
	Commands []string
	// Uploads records every remote path passed to Upload or UploadFile.
	Uploads []string
}

// Execute implements Runner.
func (m *MockRunner) Execute(ctx context.Context, command string) (*Result, error) {
	m.Commands = append(m.Commands, command)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, command)
	}
	return &Result{}, nil
}

// Upload implements Runner.
func (m *MockRunner) Upload(ctx context.Context, data []byte, remotePath string, mode os.FileMode) error {
	m.Uploads = append(m.Uploads, remotePath)
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, data, remotePath, mode)
	}
	return nil
}

// UploadFile implements Runner.
func (m *MockRunner) UploadFile(ctx context.Context, localPath, remotePath string, mode os.FileMode) error {
	m.Uploads = append(m.Uploads, remotePath)
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, localPath, remotePath, mode)
	}
	return nil
}
