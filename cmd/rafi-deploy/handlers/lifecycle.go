package handlers

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rafi-ai/rafi-deploy/internal/config"
	"github.com/rafi-ai/rafi-deploy/internal/dockerhost"
	"github.com/rafi-ai/rafi-deploy/internal/platform/supabase"
	"github.com/rafi-ai/rafi-deploy/internal/platform/twilio"
	"github.com/rafi-ai/rafi-deploy/internal/util/naming"
)

// HostManager interface for testing - matches dockerhost.Manager.
type HostManager interface {
	StopContainer(ctx context.Context, clientID string) error
	RestartContainer(ctx context.Context, clientID string) error
	RemoveContainer(ctx context.Context, clientID string, purgeData bool) error
	Status(ctx context.Context, clientID string) (*dockerhost.ContainerStatus, error)
	Logs(ctx context.Context, clientID string, lines int) (string, error)
}

// NumberReleaser interface for testing - matches twilio.Provisioner.
type NumberReleaser interface {
	Release(ctx context.Context, phoneNumber string) error
}

// ProjectDeleter interface for testing - matches supabase.Provisioner.
type ProjectDeleter interface {
	Delete(ctx context.Context, projectID string) error
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newHostManager connects to the operations host and returns a
	// container manager for it.
	newHostManager = func(settings *config.Settings) (HostManager, error) {
		runner, err := newRunner(settings)
		if err != nil {
			return nil, err
		}
		return dockerhost.NewManager(runner), nil
	}

	// newNumberReleaser creates the telephony client used by teardown.
	newNumberReleaser = func(settings *config.Settings) (NumberReleaser, error) {
		numbers, err := twilio.NewRealClient(settings.TwilioAccountSID, settings.TwilioAuthToken)
		if err != nil {
			return nil, fmt.Errorf("twilio client: %w", err)
		}
		return twilio.NewProvisioner(numbers, settings.BaseURL), nil
	}

	// newProjectDeleter creates the database client used by teardown.
	newProjectDeleter = func(settings *config.Settings) (ProjectDeleter, error) {
		if settings.SupabaseAccessToken == "" {
			return nil, fmt.Errorf("SUPABASE_ACCESS_TOKEN is not set")
		}
		return supabase.NewProvisioner(supabase.NewClient(settings.SupabaseAccessToken), settings.SupabaseOrgID), nil
	}

	// loadClientConfig loads a client config from file (for testing injection).
	loadClientConfig = config.LoadFile
)

// Stop stops a client's assistant container on the operations host.
func Stop(ctx context.Context, clientID string) error {
	mgr, err := validateAndConnect(clientID)
	if err != nil {
		return err
	}

	fmt.Printf("Stopping %s...\n", naming.Service(clientID))
	if err := mgr.StopContainer(ctx, clientID); err != nil {
		return err
	}
	fmt.Println("Stopped.")

	return nil
}

// Restart restarts a client's assistant container on the operations host.
func Restart(ctx context.Context, clientID string) error {
	mgr, err := validateAndConnect(clientID)
	if err != nil {
		return err
	}

	fmt.Printf("Restarting %s...\n", naming.Service(clientID))
	if err := mgr.RestartContainer(ctx, clientID); err != nil {
		return err
	}
	fmt.Println("Restarted.")

	return nil
}

// Health prints the status of a client's assistant container.
func Health(ctx context.Context, clientID string) error {
	mgr, err := validateAndConnect(clientID)
	if err != nil {
		return err
	}

	status, err := mgr.Status(ctx, clientID)
	if err != nil {
		return err
	}

	if !status.Found {
		fmt.Printf("No container found for client %q. Run 'rafi-deploy deploy' first.\n", clientID)
		return nil
	}

	fmt.Printf("Container: %s\n", naming.Service(clientID))
	fmt.Printf("  State:  %s\n", status.State)
	fmt.Printf("  Status: %s\n", status.Status)
	if status.Ports != "" {
		fmt.Printf("  Ports:  %s\n", status.Ports)
	}

	if !strings.HasPrefix(status.Status, "Up") {
		return fmt.Errorf("container %s is not running", naming.Service(clientID))
	}

	return nil
}

// Logs prints the most recent log lines from a client's container.
func Logs(ctx context.Context, clientID string, lines int) error {
	mgr, err := validateAndConnect(clientID)
	if err != nil {
		return err
	}

	out, err := mgr.Logs(ctx, clientID, lines)
	if err != nil {
		return err
	}
	fmt.Print(out)

	return nil
}

// TeardownOptions selects what a teardown removes beyond the container.
type TeardownOptions struct {
	ClientID      string
	ConfigPath    string
	PurgeData     bool
	ReleaseNumber bool
	DeleteProject bool
}

// Teardown removes a client's container and, optionally, the provisioned
// resources recorded in the client's configuration.
//
// Resource removal is best-effort per resource: a failure to release the
// phone number does not prevent the project deletion from being attempted.
// All failures are reported in the returned error.
func Teardown(ctx context.Context, opts TeardownOptions) error {
	if err := naming.ValidateClientID(opts.ClientID); err != nil {
		return err
	}
	if (opts.ReleaseNumber || opts.DeleteProject) && opts.ConfigPath == "" {
		return fmt.Errorf("--release-number and --delete-project require --config")
	}

	var cfg *config.ClientConfig
	if opts.ConfigPath != "" {
		var err error
		cfg, err = loadClientConfig(opts.ConfigPath)
		if err != nil {
			return err
		}
	}

	settings := loadSettings()

	mgr, err := newHostManager(settings)
	if err != nil {
		return err
	}

	fmt.Printf("Removing %s...\n", naming.Service(opts.ClientID))
	if err := mgr.RemoveContainer(ctx, opts.ClientID, opts.PurgeData); err != nil {
		return err
	}
	fmt.Println("Container removed.")

	var failures []error

	if opts.ReleaseNumber {
		if err := releaseNumber(ctx, settings, cfg); err != nil {
			failures = append(failures, err)
		}
	}
	if opts.DeleteProject {
		if err := deleteProject(ctx, settings, cfg); err != nil {
			failures = append(failures, err)
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("teardown incomplete: %d resource(s) could not be removed: %v", len(failures), failures)
	}

	fmt.Println("Teardown complete.")
	return nil
}

func releaseNumber(ctx context.Context, settings *config.Settings, cfg *config.ClientConfig) error {
	phone := cfg.Twilio.PhoneNumber
	if config.IsPlaceholder(phone) {
		fmt.Println("No phone number recorded in config, nothing to release.")
		return nil
	}

	releaser, err := newNumberReleaser(settings)
	if err != nil {
		return err
	}

	fmt.Printf("Releasing %s...\n", phone)
	if err := releaser.Release(ctx, phone); err != nil {
		return fmt.Errorf("release %s: %w", phone, err)
	}
	fmt.Println("Number released.")

	return nil
}

func deleteProject(ctx context.Context, settings *config.Settings, cfg *config.ClientConfig) error {
	ref := projectRef(cfg.Supabase.URL)
	if ref == "" {
		fmt.Println("No project recorded in config, nothing to delete.")
		return nil
	}

	deleter, err := newProjectDeleter(settings)
	if err != nil {
		return err
	}

	fmt.Printf("Deleting project %s...\n", ref)
	if err := deleter.Delete(ctx, ref); err != nil {
		return fmt.Errorf("delete project %s: %w", ref, err)
	}
	fmt.Println("Project deleted.")

	return nil
}

// projectRef extracts the project reference from a Supabase project URL,
// e.g. "https://abcdefgh.supabase.co" yields "abcdefgh".
func projectRef(projectURL string) string {
	if config.IsPlaceholder(projectURL) {
		return ""
	}
	u, err := url.Parse(projectURL)
	if err != nil || u.Host == "" {
		return ""
	}
	host, _, ok := strings.Cut(u.Host, ".")
	if !ok {
		return ""
	}
	return host
}

func validateAndConnect(clientID string) (HostManager, error) {
	if err := naming.ValidateClientID(clientID); err != nil {
		return nil, err
	}
	return newHostManager(loadSettings())
}
