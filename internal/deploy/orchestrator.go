package deploy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rafi-ai/rafi-deploy/internal/config"
	"github.com/rafi-ai/rafi-deploy/internal/dockerhost"
	"github.com/rafi-ai/rafi-deploy/internal/notify"
	"github.com/rafi-ai/rafi-deploy/internal/platform/supabase"
	"github.com/rafi-ai/rafi-deploy/internal/util/naming"
)

const (
	defaultHealthInterval = 5 * time.Second
	defaultHealthBudget   = 30 * time.Second
)

// TelephonyProvisioner acquires and releases client phone numbers.
type TelephonyProvisioner interface {
	Provision(ctx context.Context, clientID, areaCode string) (string, error)
	UpdateWebhook(ctx context.Context, clientID, phoneNumber string) error
	Release(ctx context.Context, phoneNumber string) error
}

// ProjectProvisioner creates and deletes client database projects.
type ProjectProvisioner interface {
	Create(ctx context.Context, clientID string) (*supabase.ProjectCredentials, error)
	Delete(ctx context.Context, projectID string) error
}

// ContainerManager runs client containers on the operations host.
type ContainerManager interface {
	StartContainer(ctx context.Context, clientID, configPath string, env map[string]string) (int, error)
	RemoveContainer(ctx context.Context, clientID string, purgeData bool) error
	Status(ctx context.Context, clientID string) (*dockerhost.ContainerStatus, error)
}

// NotificationSender delivers the OAuth authorization link.
type NotificationSender interface {
	Send(ctx context.Context, toEmail, oauthURL, clientName, assistantName string) error
}

// Options wires the Orchestrator's dependencies.
type Options struct {
	Telephony  TelephonyProvisioner
	Projects   ProjectProvisioner
	Containers ContainerManager
	Notifier   NotificationSender
	Settings   *config.Settings
	Observer   Observer
}

// Orchestrator runs the deployment saga for one client at a time.
type Orchestrator struct {
	phones     TelephonyProvisioner
	projects   ProjectProvisioner
	containers ContainerManager
	notifier   NotificationSender
	settings   *config.Settings
	observer   Observer

	// saveConfig persists provisioned credentials after each step;
	// a seam for tests.
	saveConfig func(cfg *config.ClientConfig, path string) error

	// HealthInterval and HealthBudget bound the closing health check.
	HealthInterval time.Duration
	HealthBudget   time.Duration
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(opts Options) *Orchestrator {
	observer := opts.Observer
	if observer == nil {
		observer = NewConsoleObserver()
	}
	return &Orchestrator{
		phones:         opts.Telephony,
		projects:       opts.Projects,
		containers:     opts.Containers,
		notifier:       opts.Notifier,
		settings:       opts.Settings,
		observer:       observer,
		saveConfig:     config.SaveFile,
		HealthInterval: defaultHealthInterval,
		HealthBudget:   defaultHealthBudget,
	}
}

// Deploy runs the full pipeline for the client described by the config
// at configPath. Provisioned resource identifiers are written back to
// the config after each successful step, so a re-run after a partial
// manual cleanup skips what already exists. On a fatal failure the
// completed steps are rolled back in reverse order and the cause is
// returned as a *DeploymentError.
func (o *Orchestrator) Deploy(ctx context.Context, configPath string) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return &DeploymentError{Step: "validate", Err: err}
	}
	clientID, err := naming.ClientID(cfg.Client.Name)
	if err != nil {
		return &DeploymentError{Step: "validate", Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return &DeploymentError{ClientID: clientID, Step: "validate", Err: err}
	}

	state := &State{
		RunID:      uuid.NewString(),
		ClientID:   clientID,
		ConfigPath: configPath,
	}
	o.observer.Printf("deploying client %q (run %s)", clientID, state.RunID)

	if err := o.provisionTelephony(ctx, state, cfg); err != nil {
		return err
	}
	if err := o.provisionProject(ctx, state, cfg); err != nil {
		return err
	}
	if err := o.startContainer(ctx, state, cfg); err != nil {
		return err
	}

	o.notifyClient(ctx, state, cfg)
	o.healthCheck(ctx, state)

	o.observer.Printf("deployment complete: client=%s number=%s port=%d oauth_sent=%t",
		clientID, state.PhoneNumber, state.HostPort, state.OAuthSent)
	return nil
}

func (o *Orchestrator) provisionTelephony(ctx context.Context, state *State, cfg *config.ClientConfig) error {
	const step = "telephony"

	if !cfg.NeedsPhoneNumber() {
		state.PhoneNumber = cfg.Twilio.PhoneNumber
		o.event(EventStepSkipped, step, fmt.Sprintf("using existing number %s", state.PhoneNumber))
		// Re-point the voice webhook so routing matches this client id
		// even when the number was provisioned out of band.
		if err := o.phones.UpdateWebhook(ctx, state.ClientID, state.PhoneNumber); err != nil {
			o.event(EventWarning, step, fmt.Sprintf("could not update voice webhook: %v", err))
		}
		return nil
	}

	o.event(EventStepStarted, step, "provisioning phone number")
	phone, err := o.phones.Provision(ctx, state.ClientID, o.settings.PreferredAreaCode)
	if err != nil {
		return o.fail(ctx, state, step, err)
	}
	state.PhoneNumber = phone
	state.record(Step{Name: step, Compensate: func(ctx context.Context) error {
		return o.phones.Release(ctx, phone)
	}})

	cfg.Twilio.PhoneNumber = phone
	if err := o.saveConfig(cfg, state.ConfigPath); err != nil {
		return o.fail(ctx, state, step, err)
	}
	o.event(EventStepCompleted, step, fmt.Sprintf("provisioned %s", phone))
	return nil
}

func (o *Orchestrator) provisionProject(ctx context.Context, state *State, cfg *config.ClientConfig) error {
	const step = "project"

	if !cfg.NeedsProject() {
		o.event(EventStepSkipped, step, fmt.Sprintf("using existing project %s", cfg.Supabase.URL))
		return nil
	}

	o.event(EventStepStarted, step, "creating database project")
	creds, err := o.projects.Create(ctx, state.ClientID)
	if creds != nil && creds.ProjectID != "" {
		// A failed Create can still leave a half-provisioned project
		// behind; register its deletion before deciding fatality.
		state.Credentials = creds
		projectID := creds.ProjectID
		state.record(Step{Name: step, Compensate: func(ctx context.Context) error {
			return o.projects.Delete(ctx, projectID)
		}})
	}
	if err != nil {
		return o.fail(ctx, state, step, err)
	}

	cfg.Supabase.URL = creds.URL
	cfg.Supabase.AnonKey = creds.AnonKey
	cfg.Supabase.ServiceRoleKey = creds.ServiceRoleKey
	cfg.Supabase.DBPassword = creds.DBPassword
	if err := o.saveConfig(cfg, state.ConfigPath); err != nil {
		return o.fail(ctx, state, step, err)
	}
	o.event(EventStepCompleted, step, fmt.Sprintf("created %s", creds.URL))
	return nil
}

func (o *Orchestrator) startContainer(ctx context.Context, state *State, cfg *config.ClientConfig) error {
	const step = "container"

	o.event(EventStepStarted, step, "starting assistant container")
	env := BuildEnv(cfg, o.settings)
	port, err := o.containers.StartContainer(ctx, state.ClientID, state.ConfigPath, env)
	if err != nil {
		return o.fail(ctx, state, step, err)
	}
	state.HostPort = port
	clientID := state.ClientID
	state.record(Step{Name: step, Compensate: func(ctx context.Context) error {
		return o.containers.RemoveContainer(ctx, clientID, true)
	}})
	o.event(EventStepCompleted, step, fmt.Sprintf("started %s on port %d", naming.Service(clientID), port))
	return nil
}

// notifyClient generates the OAuth URL and emails it. Failures here are
// never fatal: the deployment already works, so the URL is printed for
// manual delivery instead.
func (o *Orchestrator) notifyClient(ctx context.Context, state *State, cfg *config.ClientConfig) {
	const step = "notify"

	redirect := strings.TrimRight(o.settings.BaseURL, "/") + naming.OAuthCallbackPath(state.ClientID)
	oauthURL, err := notify.AuthorizationURL(cfg.Google.ClientID, redirect, state.ClientID, cfg.Client.Email)
	if err != nil {
		o.event(EventWarning, step, fmt.Sprintf("could not build authorization URL: %v", err))
		return
	}

	if cfg.Client.Email == "" {
		o.event(EventWarning, step, "no client email configured, send the authorization link manually")
		o.observer.Printf("authorization URL: %s", oauthURL)
		return
	}

	assistantName := cfg.ElevenLabs.AgentName
	if err := o.notifier.Send(ctx, cfg.Client.Email, oauthURL, cfg.Client.Name, assistantName); err != nil {
		o.event(EventWarning, step, fmt.Sprintf("could not send authorization email: %v", err))
		o.observer.Printf("authorization URL: %s", oauthURL)
		return
	}
	state.OAuthSent = true
	o.event(EventStepCompleted, step, fmt.Sprintf("authorization email sent to %s", cfg.Client.Email))
}

// healthCheck waits for the container to report an Up status. The
// outcome is advisory: a timeout or an early exit is reported as a
// warning, never as a deployment failure.
func (o *Orchestrator) healthCheck(ctx context.Context, state *State) {
	const step = "health"

	ctx, cancel := context.WithTimeout(ctx, o.HealthBudget)
	defer cancel()

	ticker := time.NewTicker(o.HealthInterval)
	defer ticker.Stop()

	for {
		status, err := o.containers.Status(ctx, state.ClientID)
		if err == nil && status.Found {
			switch {
			case strings.HasPrefix(status.Status, "Up"):
				o.event(EventStepCompleted, step, fmt.Sprintf("container healthy: %s", status.Status))
				return
			case strings.Contains(status.Status, "Exited"), strings.Contains(status.Status, "Dead"):
				o.event(EventWarning, step, fmt.Sprintf("container exited unexpectedly: %s", status.Status))
				return
			}
		}

		select {
		case <-ctx.Done():
			o.event(EventWarning, step, "health check timed out, the container may still be starting")
			return
		case <-ticker.C:
		}
	}
}

// fail rolls back the completed steps in reverse order and wraps the
// cause. Compensation errors are collected, never masking the cause and
// never stopping the remaining compensations.
func (o *Orchestrator) fail(ctx context.Context, state *State, step string, cause error) error {
	o.event(EventStepFailed, step, cause.Error())

	var rollbackErrs []error
	if len(state.steps) > 0 {
		o.event(EventRollbackStarted, "",
			fmt.Sprintf("undoing steps: %s", strings.Join(state.completedSteps(), ", ")))

		for i := len(state.steps) - 1; i >= 0; i-- {
			completed := state.steps[i]
			if err := completed.Compensate(ctx); err != nil {
				o.event(EventRollbackFailed, completed.Name, err.Error())
				rollbackErrs = append(rollbackErrs, fmt.Errorf("rollback of %s: %w", completed.Name, err))
				continue
			}
			o.event(EventRollbackStep, completed.Name, "undone")
		}

		o.event(EventRollbackCompleted, "",
			fmt.Sprintf("rollback finished with %d failure(s)", len(rollbackErrs)))
	}

	return &DeploymentError{
		ClientID:       state.ClientID,
		Step:           step,
		Err:            cause,
		RollbackErrors: rollbackErrs,
	}
}

func (o *Orchestrator) event(eventType EventType, step, message string) {
	o.observer.Event(Event{Type: eventType, Step: step, Message: message})
}
