package dockerhost

import (
	"errors"
	"fmt"
)

// ErrManifestConflict indicates the compose manifest kept changing
// under concurrent deploys and the swap retry budget ran out.
var ErrManifestConflict = errors.New("compose manifest changed concurrently")

// ContainerError reports a failed docker command on the operations
// host, carrying the remote stderr so the operator sees what docker
// actually said.
type ContainerError struct {
	Op       string
	ClientID string
	ExitCode int
	Stderr   string
}

func (e *ContainerError) Error() string {
	if e.ClientID != "" {
		return fmt.Sprintf("%s for client %q failed (exit %d): %s", e.Op, e.ClientID, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s failed (exit %d): %s", e.Op, e.ExitCode, e.Stderr)
}
