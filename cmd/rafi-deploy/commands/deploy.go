package commands

import (
	"github.com/spf13/cobra"

	"github.com/rafi-ai/rafi-deploy/cmd/rafi-deploy/handlers"
)

// Deploy returns the command for provisioning a client deployment.
//
// This command runs the full deployment pipeline: validating the client
// configuration, provisioning a Twilio phone number and a Supabase
// project, starting the assistant container on the operations host, and
// emailing the client a Google authorization link.
//
// Optional flags:
//
//	--config, -c: Path to client configuration YAML file (default: rafi.yaml)
//
// Environment variables:
//
//	TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN: Twilio API credentials (required)
//	SUPABASE_ACCESS_TOKEN, SUPABASE_ORG_ID: Supabase Management API access (required)
//	EC2_HOST, EC2_SSH_KEY_PATH: operations host address and SSH key (required)
func Deploy() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the assistant for a client",
		Long: `Deploy the Rafi assistant for a client.

This command provisions all external resources the client needs and starts
the assistant container on the operations host. Resources that already
exist in the configuration (a phone number, a database project) are reused
rather than provisioned again, so a failed deployment can be retried.

If any step fails, resources created during this run are released in
reverse order before the command exits.

Examples:
  # Deploy using rafi.yaml in the current directory
  rafi-deploy deploy

  # Deploy using a specific config file
  rafi-deploy deploy -c clients/jane_doe.yaml

  # Retry after a failure; completed steps are skipped
  rafi-deploy deploy -c clients/jane_doe.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Deploy(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "rafi.yaml", "Path to client configuration file")

	return cmd
}
