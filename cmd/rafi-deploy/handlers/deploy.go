// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"

	"github.com/rafi-ai/rafi-deploy/internal/config"
	"github.com/rafi-ai/rafi-deploy/internal/deploy"
	"github.com/rafi-ai/rafi-deploy/internal/dockerhost"
	"github.com/rafi-ai/rafi-deploy/internal/notify"
	"github.com/rafi-ai/rafi-deploy/internal/platform/ssh"
	"github.com/rafi-ai/rafi-deploy/internal/platform/supabase"
	"github.com/rafi-ai/rafi-deploy/internal/platform/twilio"
)

// Deployer interface for testing - matches deploy.Orchestrator.
type Deployer interface {
	Deploy(ctx context.Context, configPath string) error
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadSettings reads operator settings from the environment.
	loadSettings = config.LoadSettings

	// newRunner connects to the operations host over SSH.
	newRunner = func(settings *config.Settings) (ssh.Runner, error) {
		if settings.OpsHost == "" {
			return nil, fmt.Errorf("EC2_HOST is not set")
		}
		if settings.OpsSSHKeyPath == "" {
			return nil, fmt.Errorf("EC2_SSH_KEY_PATH is not set")
		}
		return ssh.NewClientFromKeyFile(settings.OpsHost, settings.OpsUser, settings.OpsSSHKeyPath, settings.OpsSSHPort)
	}

	// newDeployer assembles the deployment orchestrator and its providers.
	newDeployer = func(settings *config.Settings) (Deployer, error) {
		numbers, err := twilio.NewRealClient(settings.TwilioAccountSID, settings.TwilioAuthToken)
		if err != nil {
			return nil, fmt.Errorf("twilio client: %w", err)
		}
		if settings.SupabaseAccessToken == "" {
			return nil, fmt.Errorf("SUPABASE_ACCESS_TOKEN is not set")
		}
		runner, err := newRunner(settings)
		if err != nil {
			return nil, err
		}
		return deploy.NewOrchestrator(deploy.Options{
			Telephony:  twilio.NewProvisioner(numbers, settings.BaseURL),
			Projects:   supabase.NewProvisioner(supabase.NewClient(settings.SupabaseAccessToken), settings.SupabaseOrgID),
			Containers: dockerhost.NewManager(runner),
			Notifier:   notify.NewSender(smtpConfig(settings)),
			Settings:   settings,
		}), nil
	}
)

// Deploy provisions a client deployment end to end.
//
// This function assembles the provider clients from operator settings and
// hands control to the deployment orchestrator, which:
//  1. Loads and validates the client configuration
//  2. Provisions a Twilio phone number (or re-points an existing one)
//  3. Creates a Supabase project, waits for readiness, applies the schema
//  4. Starts the assistant container on the operations host
//  5. Emails the client a Google authorization link
//  6. Runs a closing container health check
//
// Provisioned credentials are written back to the config file after each
// step, so a failed run can be retried without re-provisioning.
func Deploy(ctx context.Context, configPath string) error {
	settings := loadSettings()

	deployer, err := newDeployer(settings)
	if err != nil {
		return err
	}

	return deployer.Deploy(ctx, configPath)
}

func smtpConfig(settings *config.Settings) notify.SMTPConfig {
	return notify.SMTPConfig{
		Host:     settings.SMTPHost,
		Port:     settings.SMTPPort,
		Username: settings.SMTPUsername,
		Password: settings.SMTPPassword,
		From:     settings.SMTPFromEmail,
	}
}
