package commands

import (
	"github.com/spf13/cobra"

	"github.com/rafi-ai/rafi-deploy/cmd/rafi-deploy/handlers"
)

// Restart returns the command for restarting a client's container.
func Restart() *cobra.Command {
	var clientID string

	cmd := &cobra.Command{
		Use:   "restart",
		Short: "Restart a client's assistant container",
		Long: `Restart a client's assistant container on the operations host.

Examples:
  rafi-deploy restart --client jane_doe`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Restart(cmd.Context(), clientID)
		},
	}

	cmd.Flags().StringVar(&clientID, "client", "", "Client identifier (required)")
	_ = cmd.MarkFlagRequired("client")

	return cmd
}
