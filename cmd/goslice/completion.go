package main

import (
	"os"

	"github.com/philipparndt/goslice/internal/config"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for goslice.

Bash:

  $ source <(goslice completion bash)

Zsh:

  $ goslice completion zsh > "${fpath[1]}/_goslice"

Fish:

  $ goslice completion fish > ~/.config/fish/completions/goslice.fish

PowerShell:

  PS> goslice completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(os.Stdout, true)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		default:
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// registerCompletions runs after every init so the flags exist
func registerCompletions() {
	for _, c := range []*cobra.Command{sliceCmd, mirrorCmd, watchCmd, uvCmd} {
		if err := c.RegisterFlagCompletionFunc("material", completeMaterials); err != nil {
			panic(err)
		}
	}
}

// completeMaterials offers the ids of the configured material index.
// Completion skips the root pre-run, so the config is loaded here.
func completeMaterials(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	c := cfg
	if c == nil {
		var err error
		if c, err = config.Load(cfgPath); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
	}
	ix, err := c.Materials()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	ids := []string{"none"}
	for _, id := range ix.IDs() {
		ids = append(ids, string(id))
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
