// Package ssh provides SSH client utilities for executing commands on the
// operations host. It handles connection establishment with retry logic,
// key-based authentication, command execution with captured output, and
// file uploads over SFTP.
//
// Every call dials its own connection and closes it when done; there is no
// pooling. The operations host is a single long-lived machine, so dial
// retries are short.
//
// Security: Host key verification is disabled by default. Configure
// HostKeyCallback for environments where the host key is known.
package ssh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"

	"github.com/rafi-ai/rafi-deploy/internal/util/retry"
)

const (
	defaultPort        = 22
	defaultDialTimeout = 10 * time.Second
	defaultMaxRetries  = 5
	defaultRetryDelay  = 3 * time.Second
	defaultMaxDelay    = 10 * time.Second
)

// Config holds SSH client configuration.
type Config struct {
	Host       string
	Port       int
	User       string
	PrivateKey []byte

	// DialTimeout is the timeout for establishing the TCP connection.
	// If zero, defaultDialTimeout is used.
	DialTimeout time.Duration

	// MaxRetries is the maximum number of connection retry attempts.
	// If zero, defaultMaxRetries is used.
	MaxRetries int

	// RetryDelay is the initial delay between retry attempts.
	// If zero, defaultRetryDelay is used.
	RetryDelay time.Duration

	// HostKeyCallback handles host key verification.
	// If nil, ssh.InsecureIgnoreHostKey() is used.
	HostKeyCallback ssh.HostKeyCallback
}

// Result holds the outcome of a remote command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes commands and transfers files on the operations host.
// Implemented by Client; consumers hold this interface so tests can
// substitute an in-memory fake.
type Runner interface {
	// Execute runs a command on the remote host. A non-zero exit status is
	// reported through Result.ExitCode, not through the error; the error is
	// reserved for connection and session failures.
	Execute(ctx context.Context, command string) (*Result, error)

	// Upload writes data to a file on the remote host.
	Upload(ctx context.Context, data []byte, remotePath string, mode os.FileMode) error

	// UploadFile copies a local file to the remote host.
	UploadFile(ctx context.Context, localPath, remotePath string, mode os.FileMode) error
}

// Client executes commands on the operations host via SSH.
// It parses the private key once during construction and creates
// connections on-demand per call.
type Client struct {
	config *Config
	signer ssh.Signer
}

// NewClient creates a new SSH client and validates the private key.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if cfg.Host == "" {
		return nil, fmt.Errorf("config host cannot be empty")
	}
	if cfg.User == "" {
		return nil, fmt.Errorf("config user cannot be empty")
	}
	if len(cfg.PrivateKey) == 0 {
		return nil, fmt.Errorf("config private key cannot be empty")
	}

	// Copy config to avoid mutating caller's struct
	configCopy := *cfg

	if configCopy.Port == 0 {
		configCopy.Port = defaultPort
	}
	if configCopy.DialTimeout == 0 {
		configCopy.DialTimeout = defaultDialTimeout
	}
	if configCopy.MaxRetries == 0 {
		configCopy.MaxRetries = defaultMaxRetries
	}
	if configCopy.RetryDelay == 0 {
		configCopy.RetryDelay = defaultRetryDelay
	}
	if configCopy.HostKeyCallback == nil {
		configCopy.HostKeyCallback = ssh.InsecureIgnoreHostKey() //nolint:gosec // Default when host key is not pinned
	}

	signer, err := ssh.ParsePrivateKey(configCopy.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return &Client{
		config: &configCopy,
		signer: signer,
	}, nil
}

// NewClientFromKeyFile creates a client reading the private key from disk.
func NewClientFromKeyFile(host, user, keyPath string, port int) (*Client, error) {
	key, err := os.ReadFile(keyPath) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to read SSH key %s: %w", keyPath, err)
	}
	return NewClient(&Config{Host: host, Port: port, User: user, PrivateKey: key})
}

// Execute runs a command on the remote host.
func (c *Client) Execute(ctx context.Context, command string) (*Result, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()

	return c.runCommand(client, command)
}

// Upload writes data to a file on the remote host via SFTP.
func (c *Client) Upload(ctx context.Context, data []byte, remotePath string, mode os.FileMode) error {
	client, err := c.connect(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	sc, err := sftp.NewClient(client)
	if err != nil {
		return fmt.Errorf("failed to open SFTP session on %s: %w", c.config.Host, err)
	}
	defer func() { _ = sc.Close() }()

	f, err := sc.Create(remotePath)
	if err != nil {
		return fmt.Errorf("failed to create %s on %s: %w", remotePath, c.config.Host, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s on %s: %w", remotePath, c.config.Host, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s on %s: %w", remotePath, c.config.Host, err)
	}

	if err := sc.Chmod(remotePath, mode); err != nil {
		return fmt.Errorf("failed to chmod %s on %s: %w", remotePath, c.config.Host, err)
	}

	return nil
}

// UploadFile copies a local file to the remote host via SFTP.
func (c *Client) UploadFile(ctx context.Context, localPath, remotePath string, mode os.FileMode) error {
	data, err := os.ReadFile(localPath) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to read local file %s: %w", localPath, err)
	}
	return c.Upload(ctx, data, remotePath, mode)
}

// connect establishes the SSH connection with retry logic.
func (c *Client) connect(ctx context.Context) (*ssh.Client, error) {
	config := &ssh.ClientConfig{
		User: c.config.User,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeys(c.signer),
		},
		HostKeyCallback: c.config.HostKeyCallback,
		Timeout:         c.config.DialTimeout,
	}

	addr := fmt.Sprintf("%s:%d", c.config.Host, c.config.Port)
	var client *ssh.Client

	err := retry.WithExponentialBackoff(ctx, func() error {
		var dialErr error
		client, dialErr = ssh.Dial("tcp", addr, config)
		return classifyDialError(dialErr)
	},
		retry.WithMaxRetries(c.config.MaxRetries),
		retry.WithInitialDelay(c.config.RetryDelay),
		retry.WithMaxDelay(defaultMaxDelay),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to establish SSH connection to %s after %d retry attempts: %w",
			addr, c.config.MaxRetries, err)
	}

	return client, nil
}

// classifyDialError separates dial failures that resolve on their own
// (host still booting, network blips) from ones that never will.
// Rejected credentials and host key mismatches are marked fatal so the
// backoff loop stops instead of hammering the host.
func classifyDialError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "unable to authenticate") ||
		strings.Contains(msg, "no supported methods remain") ||
		strings.Contains(msg, "key mismatch") ||
		strings.Contains(msg, "key is unknown") {
		return retry.Fatal(err)
	}
	return err
}

// runCommand executes a command on an established SSH connection, capturing
// stdout and stderr separately so callers can surface the remote error text.
func (c *Client) runCommand(client *ssh.Client, command string) (*Result, error) {
	session, err := client.NewSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH session on %s: %w", c.config.Host, err)
	}
	defer func() { _ = session.Close() }()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	res := &Result{}
	if err := session.Run(command); err != nil {
		var exitErr *ssh.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitStatus()
		} else {
			return nil, fmt.Errorf("command failed on %s: %w\nCommand: %s", c.config.Host, err, command)
		}
	}

	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	return res, nil
}
