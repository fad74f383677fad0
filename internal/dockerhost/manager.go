package dockerhost

import (
	"context"
	"crypto/md5" // #nosec G501 -- change detection only, not authentication
	"encoding/hex"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/rafi-ai/rafi-deploy/internal/platform/ssh"
	"github.com/rafi-ai/rafi-deploy/internal/util/naming"
)

const (
	portsMarker       = "__MANIFEST__"
	swapConflictExit  = 75
	manifestSwapTries = 3
)

// ContainerStatus reports a client container's state as seen by
// `docker ps`.
type ContainerStatus struct {
	Found  bool
	Status string // e.g. "Up 2 hours"
	State  string // e.g. "running", "exited"
	Ports  string
}

// Manager drives docker on the operations host through an ssh.Runner.
type Manager struct {
	runner ssh.Runner

	// logf reports non-fatal conditions. Defaults to log.Printf; a seam
	// for tests.
	logf func(format string, v ...any)
}

// NewManager creates a Manager using the given runner.
func NewManager(runner ssh.Runner) *Manager {
	return &Manager{runner: runner, logf: log.Printf}
}

// EnsureImage builds the assistant image unless the host already has it.
func (mgr *Manager) EnsureImage(ctx context.Context) error {
	res, err := mgr.runner.Execute(ctx,
		fmt.Sprintf("docker images %s --format '{{.ID}}'", ImageTag))
	if err != nil {
		return fmt.Errorf("checking for image %s: %w", ImageTag, err)
	}
	if strings.TrimSpace(res.Stdout) != "" {
		return nil
	}
	return mgr.BuildImage(ctx)
}

// BuildImage builds the assistant image from its checkout on the host.
func (mgr *Manager) BuildImage(ctx context.Context) error {
	res, err := mgr.runner.Execute(ctx,
		fmt.Sprintf("cd %s && docker build -t %s .", AssistantDir, ImageTag))
	if err != nil {
		return fmt.Errorf("building image %s: %w", ImageTag, err)
	}
	if res.ExitCode != 0 {
		return &ContainerError{Op: "image build", ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return nil
}

// StartContainer deploys one client: creates its directory, uploads the
// config and generated .env, allocates a host port, registers the
// service in the compose manifest, makes sure the image exists, and
// brings the service up. Returns the allocated host port.
func (mgr *Manager) StartContainer(ctx context.Context, clientID, configPath string, env map[string]string) (int, error) {
	dir := ClientDir(clientID)

	res, err := mgr.runner.Execute(ctx,
		fmt.Sprintf("mkdir -p %s %s", dir, ClientDataDir(clientID)))
	if err != nil {
		return 0, fmt.Errorf("creating client directory %s: %w", dir, err)
	}
	if res.ExitCode != 0 {
		return 0, &ContainerError{Op: "client directory setup", ClientID: clientID, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	if err := mgr.runner.UploadFile(ctx, configPath, ClientConfigPath(clientID), 0o600); err != nil {
		return 0, fmt.Errorf("uploading config for %s: %w", clientID, err)
	}
	if err := mgr.runner.Upload(ctx, []byte(EnvFile(env)), ClientEnvPath(clientID), 0o600); err != nil {
		return 0, fmt.Errorf("uploading .env for %s: %w", clientID, err)
	}

	var port int
	err = mgr.updateManifest(ctx, func(m *Manifest, usedPorts map[int]bool) {
		port = NextFreePort(usedPorts, BasePort)
		m.SetClient(clientID, port)
	})
	if err != nil {
		return 0, err
	}

	if err := mgr.EnsureImage(ctx); err != nil {
		return 0, err
	}

	res, err = mgr.runner.Execute(ctx,
		fmt.Sprintf("cd %s && docker compose up -d %s", BaseDir, naming.Service(clientID)))
	if err != nil {
		return 0, fmt.Errorf("starting container for %s: %w", clientID, err)
	}
	if res.ExitCode != 0 {
		return 0, &ContainerError{Op: "container start", ClientID: clientID, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return port, nil
}

// StopContainer stops a client's service without removing it.
func (mgr *Manager) StopContainer(ctx context.Context, clientID string) error {
	return mgr.composeCmd(ctx, "container stop", clientID, "stop")
}

// RestartContainer restarts a client's service.
func (mgr *Manager) RestartContainer(ctx context.Context, clientID string) error {
	return mgr.composeCmd(ctx, "container restart", clientID, "restart")
}

func (mgr *Manager) composeCmd(ctx context.Context, op, clientID, verb string) error {
	res, err := mgr.runner.Execute(ctx,
		fmt.Sprintf("cd %s && docker compose %s %s", BaseDir, verb, naming.Service(clientID)))
	if err != nil {
		return fmt.Errorf("%s for %s: %w", op, clientID, err)
	}
	if res.ExitCode != 0 {
		return &ContainerError{Op: op, ClientID: clientID, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return nil
}

// RemoveContainer stops and removes a client's service, deletes its
// manifest entry, and optionally purges the client directory. A failed
// `compose rm` is not fatal: the manifest cleanup still runs so a
// half-removed client does not keep its port reserved.
func (mgr *Manager) RemoveContainer(ctx context.Context, clientID string, purgeData bool) error {
	res, err := mgr.runner.Execute(ctx,
		fmt.Sprintf("cd %s && docker compose rm -sf %s", BaseDir, naming.Service(clientID)))
	if err != nil {
		return fmt.Errorf("removing container for %s: %w", clientID, err)
	}
	if res.ExitCode != 0 {
		mgr.logf("warning: could not remove container for %s: %s", clientID, strings.TrimSpace(res.Stderr))
	}

	err = mgr.updateManifest(ctx, func(m *Manifest, _ map[int]bool) {
		m.RemoveClient(clientID)
	})
	if err != nil {
		return err
	}

	if purgeData {
		res, err = mgr.runner.Execute(ctx, fmt.Sprintf("rm -rf %s", ClientDir(clientID)))
		if err != nil {
			return fmt.Errorf("purging data for %s: %w", clientID, err)
		}
		if res.ExitCode != 0 {
			return &ContainerError{Op: "data purge", ClientID: clientID, ExitCode: res.ExitCode, Stderr: res.Stderr}
		}
	}
	return nil
}

// Status reports the client container's state via `docker ps -a`.
func (mgr *Manager) Status(ctx context.Context, clientID string) (*ContainerStatus, error) {
	res, err := mgr.runner.Execute(ctx,
		fmt.Sprintf("docker ps -a --filter 'name=%s' --format '{{.Status}}|{{.State}}|{{.Ports}}'",
			naming.Service(clientID)))
	if err != nil {
		return nil, fmt.Errorf("checking status for %s: %w", clientID, err)
	}

	out := strings.TrimSpace(res.Stdout)
	if res.ExitCode != 0 || out == "" {
		return &ContainerStatus{}, nil
	}

	parts := strings.SplitN(out, "|", 3)
	status := &ContainerStatus{Found: true, Status: parts[0]}
	if len(parts) > 1 {
		status.State = parts[1]
	}
	if len(parts) > 2 {
		status.Ports = parts[2]
	}
	return status, nil
}

// Logs returns the last lines of a client container's output.
func (mgr *Manager) Logs(ctx context.Context, clientID string, lines int) (string, error) {
	res, err := mgr.runner.Execute(ctx,
		fmt.Sprintf("cd %s && docker compose logs --tail %d %s", BaseDir, lines, naming.Service(clientID)))
	if err != nil {
		return "", fmt.Errorf("fetching logs for %s: %w", clientID, err)
	}
	if res.ExitCode != 0 {
		return "", &ContainerError{Op: "log fetch", ClientID: clientID, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return res.Stdout, nil
}

// updateManifest applies mutate to the compose manifest with optimistic
// concurrency. The manifest and the bound host ports are read under the
// remote lock; the write back is a compare-and-swap that only lands if
// the manifest is still the version that was read, otherwise the whole
// read-modify-write retries. Port allocation happens inside the same
// window: a concurrent deploy that claimed a port also changed the
// manifest, which the swap guard detects.
func (mgr *Manager) updateManifest(ctx context.Context, mutate func(m *Manifest, usedPorts map[int]bool)) error {
	for attempt := 0; attempt < manifestSwapTries; attempt++ {
		raw, psOutput, err := mgr.readManifestState(ctx)
		if err != nil {
			return err
		}

		manifest, err := ParseManifest(raw)
		if err != nil {
			return err
		}
		usedPorts := UsedHostPorts(psOutput)
		for _, port := range manifest.HostPorts() {
			usedPorts[port] = true
		}

		mutate(manifest, usedPorts)

		encoded, err := manifest.Encode()
		if err != nil {
			return err
		}

		swapped, err := mgr.swapManifest(ctx, raw, encoded)
		if err != nil {
			return err
		}
		if swapped {
			return nil
		}
	}
	return ErrManifestConflict
}

// readManifestState fetches the bound host ports and the raw manifest
// in one locked command. The marker separates the two outputs; the
// manifest bytes after it are exactly the file content, which the swap
// guard later hashes.
func (mgr *Manager) readManifestState(ctx context.Context) (manifest []byte, psOutput string, err error) {
	cmd := fmt.Sprintf(
		`flock -w %d %s -c 'docker ps --format "{{.Ports}}" 2>/dev/null || true; echo %s; cat %s 2>/dev/null || true'`,
		lockWaitSeconds, composeLock, portsMarker, ComposeFile)

	res, err := mgr.runner.Execute(ctx, cmd)
	if err != nil {
		return nil, "", fmt.Errorf("reading compose manifest: %w", err)
	}
	if res.ExitCode != 0 {
		return nil, "", &ContainerError{Op: "compose manifest read", ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	marker := portsMarker + "\n"
	idx := strings.Index(res.Stdout, marker)
	if idx < 0 {
		return nil, "", fmt.Errorf("reading compose manifest: marker missing in output")
	}
	return []byte(res.Stdout[idx+len(marker):]), res.Stdout[:idx], nil
}

// swapManifest uploads the new manifest to a temporary path and moves
// it into place under the lock, but only if the current file still
// matches what was read. Returns false on conflict.
func (mgr *Manager) swapManifest(ctx context.Context, read, updated []byte) (bool, error) {
	tmp := fmt.Sprintf("%s.%s.tmp", ComposeFile, uuid.NewString()[:8])
	if err := mgr.runner.Upload(ctx, updated, tmp, 0o644); err != nil {
		return false, fmt.Errorf("uploading compose manifest: %w", err)
	}

	var guard string
	if len(read) == 0 {
		guard = fmt.Sprintf("[ ! -s %s ]", ComposeFile)
	} else {
		sum := md5.Sum(read) // #nosec G401
		guard = fmt.Sprintf(`[ "$(md5sum %s | cut -d" " -f1)" = "%s" ]`,
			ComposeFile, hex.EncodeToString(sum[:]))
	}

	cmd := fmt.Sprintf(`flock -w %d %s -c 'if %s; then mv %s %s; else rm -f %s; exit %d; fi'`,
		lockWaitSeconds, composeLock, guard, tmp, ComposeFile, tmp, swapConflictExit)

	res, err := mgr.runner.Execute(ctx, cmd)
	if err != nil {
		return false, fmt.Errorf("writing compose manifest: %w", err)
	}
	switch res.ExitCode {
	case 0:
		return true, nil
	case swapConflictExit:
		return false, nil
	default:
		return false, &ContainerError{Op: "compose manifest write", ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
}
