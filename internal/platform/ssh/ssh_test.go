package ssh

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafi-ai/rafi-deploy/internal/util/retry"
)

// TestMockRunner_InterfaceCompliance verifies MockRunner implements Runner.
func TestMockRunner_InterfaceCompliance(_ *testing.T) {
	var _ Runner = (*MockRunner)(nil)
	var _ Runner = (*Client)(nil)
}

func testPrivateKey(t *testing.T) []byte {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
}

func TestNewClient(t *testing.T) {
	t.Parallel()
	key := testPrivateKey(t)

	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{name: "nil config", cfg: nil, wantErr: "config cannot be nil"},
		{name: "missing host", cfg: &Config{User: "ubuntu", PrivateKey: key}, wantErr: "host cannot be empty"},
		{name: "missing user", cfg: &Config{Host: "h", PrivateKey: key}, wantErr: "user cannot be empty"},
		{name: "missing key", cfg: &Config{Host: "h", User: "u"}, wantErr: "private key cannot be empty"},
		{name: "bad key", cfg: &Config{Host: "h", User: "u", PrivateKey: []byte("nope")}, wantErr: "failed to parse private key"},
		{name: "valid", cfg: &Config{Host: "h", User: "u", PrivateKey: key}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, c)
		})
	}
}

func TestNewClientDefaults(t *testing.T) {
	t.Parallel()
	cfg := &Config{Host: "h", User: "u", PrivateKey: testPrivateKey(t)}
	c, err := NewClient(cfg)
	require.NoError(t, err)

	assert.Equal(t, defaultPort, c.config.Port)
	assert.Equal(t, defaultDialTimeout, c.config.DialTimeout)
	assert.Equal(t, defaultMaxRetries, c.config.MaxRetries)
	assert.NotNil(t, c.config.HostKeyCallback)

	// Caller's struct is not mutated.
	assert.Zero(t, cfg.Port)
}

func TestExecuteConnectFailure(t *testing.T) {
	t.Parallel()
	c, err := NewClient(&Config{
		Host:        "127.0.0.1",
		Port:        1, // nothing listens here
		User:        "u",
		PrivateKey:  testPrivateKey(t),
		MaxRetries:  1,
		RetryDelay:  10 * time.Millisecond,
		DialTimeout: 100 * time.Millisecond,
	})
	require.NoError(t, err)

	_, err = c.Execute(context.Background(), "true")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to establish SSH connection")
}

func TestMockRunnerRecords(t *testing.T) {
	t.Parallel()
	m := &MockRunner{}
	ctx := context.Background()

	res, err := m.Execute(ctx, "docker ps")
	require.NoError(t, err)
	assert.Zero(t, res.ExitCode)

	require.NoError(t, m.Upload(ctx, []byte("x"), "/tmp/a", 0o600))
	require.NoError(t, m.UploadFile(ctx, "local", "/tmp/b", 0o644))

	assert.Equal(t, []string{"docker ps"}, m.Commands)
	assert.Equal(t, []string{"/tmp/a", "/tmp/b"}, m.Uploads)
}

func TestClassifyDialError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantFatal bool
	}{
		{
			name:      "rejected credentials",
			err:       errors.New("ssh: handshake failed: ssh: unable to authenticate, attempted methods [none publickey]"),
			wantFatal: true,
		},
		{
			name:      "no auth methods left",
			err:       errors.New("ssh: handshake failed: ssh: no supported methods remain"),
			wantFatal: true,
		},
		{
			name:      "host key mismatch",
			err:       errors.New("ssh: handshake failed: knownhosts: key mismatch"),
			wantFatal: true,
		},
		{
			name:      "connection refused is retryable",
			err:       errors.New("dial tcp 10.0.0.5:22: connect: connection refused"),
			wantFatal: false,
		},
		{
			name:      "timeout is retryable",
			err:       errors.New("dial tcp 10.0.0.5:22: i/o timeout"),
			wantFatal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			classified := classifyDialError(tt.err)
			require.Error(t, classified)
			assert.Equal(t, tt.wantFatal, retry.IsFatal(classified))
			assert.ErrorIs(t, classified, tt.err)
		})
	}
}

func TestClassifyDialErrorNil(t *testing.T) {
	t.Parallel()
	assert.NoError(t, classifyDialError(nil))
}
