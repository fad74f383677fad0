package dockerhost

import "fmt"

// Fixed layout on the operations host.
const (
	// BaseDir is the root of the assistant deployment on the host.
	BaseDir = "/home/ubuntu/rafi"
	// ClientsDir holds one directory per deployed client.
	ClientsDir = BaseDir + "/clients"
	// ComposeFile is the shared compose manifest for all clients.
	ComposeFile = BaseDir + "/docker-compose.yml"
	// AssistantDir is the build context for the assistant image.
	AssistantDir = BaseDir + "/rafi_assistant"

	// ImageTag is the assistant image built once and shared by all
	// client services.
	ImageTag = "rafi_assistant:latest"

	// ContainerPort is the port the assistant listens on inside the
	// container.
	ContainerPort = 8000
	// BasePort is the first host port considered for a new client.
	BasePort = 8001

	composeLock     = BaseDir + "/.compose.lock"
	lockWaitSeconds = 60
)

// ClientDir returns the per-client directory on the host.
func ClientDir(clientID string) string {
	return fmt.Sprintf("%s/%s", ClientsDir, clientID)
}

// ClientConfigPath returns the remote path of the client's config file.
func ClientConfigPath(clientID string) string {
	return ClientDir(clientID) + "/config.yaml"
}

// ClientEnvPath returns the remote path of the client's .env file.
func ClientEnvPath(clientID string) string {
	return ClientDir(clientID) + "/.env"
}

// ClientDataDir returns the remote path of the client's data volume.
func ClientDataDir(clientID string) string {
	return ClientDir(clientID) + "/data"
}
