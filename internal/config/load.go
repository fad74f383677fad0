package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses a client configuration from a YAML file.
// The returned config has not been validated; call Validate before use.
func LoadFile(path string) (*ClientConfig, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unknown keys are rejected: a typo'd section name would otherwise
	// silently leave its fields at their placeholder values.
	var cfg ClientConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	// Defaults
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "openai"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "gpt-4o"
	}
	if cfg.ElevenLabs.AgentName == "" {
		cfg.ElevenLabs.AgentName = "Rafi"
	}

	return &cfg, nil
}

// SaveFile writes the configuration back to the given path. It is called
// after each successful provisioning sub-step so that a crash mid-run
// leaves a file reflecting exactly the resources actually created.
func SaveFile(cfg *ClientConfig, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
