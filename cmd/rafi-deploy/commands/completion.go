package commands

import (
	"os"

	"github.com/spf13/cobra"
)

// Completion returns the completion command for shell autocompletion.
func Completion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for rafi-deploy.

To load completions:

Bash:
  $ source <(rafi-deploy completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ rafi-deploy completion bash > /etc/bash_completion.d/rafi-deploy
  # macOS:
  $ rafi-deploy completion bash > $(brew --prefix)/etc/bash_completion.d/rafi-deploy

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ rafi-deploy completion zsh > "${fpath[1]}/_rafi-deploy"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ rafi-deploy completion fish | source
  # To load completions for each session, execute once:
  $ rafi-deploy completion fish > ~/.config/fish/completions/rafi-deploy.fish

PowerShell:
  PS> rafi-deploy completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> rafi-deploy completion powershell > rafi-deploy.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
