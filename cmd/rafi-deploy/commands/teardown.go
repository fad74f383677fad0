package commands

import (
	"github.com/spf13/cobra"

	"github.com/rafi-ai/rafi-deploy/cmd/rafi-deploy/handlers"
)

// Teardown returns the command for removing a client deployment.
//
// This command removes the client's container from the operations host
// and can optionally release the provisioned Twilio number and delete
// the Supabase project recorded in the client's configuration.
//
// Optional flags:
//
//	--client: Client identifier (required)
//	--config, -c: Path to the client configuration YAML file
//	--purge-data: Also delete the client's data directory on the host
//	--release-number: Also release the client's Twilio phone number
//	--delete-project: Also delete the client's Supabase project
func Teardown() *cobra.Command {
	var opts handlers.TeardownOptions

	cmd := &cobra.Command{
		Use:   "teardown",
		Short: "Remove a client deployment",
		Long: `Remove a client's assistant container from the operations host.

By default only the container and its compose entry are removed; the
client's data directory and provisioned resources stay intact so the
client can be redeployed. Pass the resource flags to also release the
Twilio number and delete the Supabase project recorded in the client's
configuration.

Releasing a number and deleting a project are irreversible.

Examples:
  # Remove the container, keep everything else
  rafi-deploy teardown --client jane_doe

  # Full teardown including provisioned resources
  rafi-deploy teardown --client jane_doe -c clients/jane_doe.yaml \
    --purge-data --release-number --delete-project`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Teardown(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.ClientID, "client", "", "Client identifier (required)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to the client configuration file (required for resource flags)")
	cmd.Flags().BoolVar(&opts.PurgeData, "purge-data", false, "Also delete the client's data directory on the host")
	cmd.Flags().BoolVar(&opts.ReleaseNumber, "release-number", false, "Also release the client's Twilio phone number")
	cmd.Flags().BoolVar(&opts.DeleteProject, "delete-project", false, "Also delete the client's Supabase project")
	_ = cmd.MarkFlagRequired("client")

	return cmd
}
