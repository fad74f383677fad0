package dockerhost

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rafi-ai/rafi-deploy/internal/util/naming"
)

// Manifest models the shared docker-compose.yml on the operations host.
type Manifest struct {
	Services map[string]Service `yaml:"services"`
}

// Service is one client's compose service definition.
type Service struct {
	Build   string   `yaml:"build"`
	EnvFile string   `yaml:"env_file"`
	Volumes []string `yaml:"volumes"`
	Restart string   `yaml:"restart"`
	Ports   []string `yaml:"ports"`
}

// ParseManifest decodes compose file content. Empty content yields an
// empty manifest rather than an error, so a fresh host works without a
// pre-seeded file.
func ParseManifest(data []byte) (*Manifest, error) {
	m := &Manifest{}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, m); err != nil {
			return nil, fmt.Errorf("parsing compose manifest: %w", err)
		}
	}
	if m.Services == nil {
		m.Services = make(map[string]Service)
	}
	return m, nil
}

// Encode serializes the manifest back to YAML.
func (m *Manifest) Encode() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding compose manifest: %w", err)
	}
	return data, nil
}

// SetClient adds or replaces the client's service entry, binding the
// given host port to the assistant's container port.
func (m *Manifest) SetClient(clientID string, hostPort int) {
	clientDir := "./clients/" + clientID
	m.Services[naming.Service(clientID)] = Service{
		Build:   "./rafi_assistant",
		EnvFile: clientDir + "/.env",
		Volumes: []string{
			clientDir + "/config.yaml:/app/config.yaml:ro",
			clientDir + "/data:/data",
		},
		Restart: "unless-stopped",
		Ports:   []string{fmt.Sprintf("%d:%d", hostPort, ContainerPort)},
	}
}

// RemoveClient deletes the client's service entry. Returns false when
// the entry was not present.
func (m *Manifest) RemoveClient(clientID string) bool {
	name := naming.Service(clientID)
	if _, ok := m.Services[name]; !ok {
		return false
	}
	delete(m.Services, name)
	return true
}

// HostPorts returns every host port bound by services in the manifest.
// Services may be declared but not running, so these count as used
// during port allocation.
func (m *Manifest) HostPorts() []int {
	var ports []int
	for _, svc := range m.Services {
		for _, binding := range svc.Ports {
			var host, container int
			if _, err := fmt.Sscanf(binding, "%d:%d", &host, &container); err == nil {
				ports = append(ports, host)
			}
		}
	}
	return ports
}
