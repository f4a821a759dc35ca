package cli

import "github.com/spf13/cobra"

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for subplots.

To load completions:

Bash:
  $ source <(subplots completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ subplots completion bash > /etc/bash_completion.d/subplots
  # macOS:
  $ subplots completion bash > $(brew --prefix)/etc/bash_completion.d/subplots

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ subplots completion zsh > "${fpath[1]}/_subplots"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ subplots completion fish | source

  # To load completions for each session, execute once:
  $ subplots completion fish > ~/.config/fish/completions/subplots.fish

PowerShell:
  PS> subplots completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> subplots completion powershell > subplots.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(w)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}
