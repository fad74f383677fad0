package commands

import (
	"github.com/spf13/cobra"

	"github.com/rafi-ai/rafi-deploy/cmd/rafi-deploy/handlers"
)

// Health returns the command for displaying a client's container status.
//
// Optional flags:
//
//	--client: Client identifier (required)
func Health() *cobra.Command {
	var clientID string

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Show a client's container status",
		Long: `Display the status of a client's assistant container.

Shows whether the container exists on the operations host, its docker
state (running, exited), its uptime, and its published ports.

Examples:
  rafi-deploy health --client jane_doe`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Health(cmd.Context(), clientID)
		},
	}

	cmd.Flags().StringVar(&clientID, "client", "", "Client identifier (required)")
	_ = cmd.MarkFlagRequired("client")

	return cmd
}
