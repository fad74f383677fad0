package commands

import (
	"github.com/spf13/cobra"

	"github.com/rafi-ai/rafi-deploy/cmd/rafi-deploy/handlers"
)

// Init returns the command for interactively creating a client config.
//
// Optional flags:
//
//	--output, -o: Path to write the configuration to (default: rafi.yaml)
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a client configuration interactively",
		Long: `Create a client configuration file through an interactive wizard.

The wizard asks for the client's identity, messaging and voice
credentials, and LLM provider. Fields it does not ask about are written
as placeholders for you to fill in before deploying.

Examples:
  # Create rafi.yaml in the current directory
  rafi-deploy init

  # Write the config to a specific path
  rafi-deploy init -o clients/jane_doe.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "rafi.yaml", "Path to write the configuration file")

	return cmd
}
