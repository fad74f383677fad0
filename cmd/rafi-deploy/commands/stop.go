package commands

import (
	"github.com/spf13/cobra"

	"github.com/rafi-ai/rafi-deploy/cmd/rafi-deploy/handlers"
)

// Stop returns the command for stopping a client's container.
func Stop() *cobra.Command {
	var clientID string

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop a client's assistant container",
		Long: `Stop a client's assistant container on the operations host.

The container is stopped but not removed; its data volume and provisioned
resources are untouched. Use 'rafi-deploy restart' to bring it back, or
'rafi-deploy teardown' to remove it.

Examples:
  rafi-deploy stop --client jane_doe`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Stop(cmd.Context(), clientID)
		},
	}

	cmd.Flags().StringVar(&clientID, "client", "", "Client identifier (required)")
	_ = cmd.MarkFlagRequired("client")

	return cmd
}
