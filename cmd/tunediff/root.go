package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	version = "dev"

	metricName string
	formatName string
	jsonOutput bool
	noColor    bool
	byName     bool
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "tunediff <url>",
	Short: "tunediff — report how an SPSA tuning run moved each parameter",
	Long: `tunediff fetches a parameter-tuning results page, extracts the embedded
starting configuration and tuned result, and prints each option's relative
change, ranked by magnitude, as a colored table.`,
	Version:       version,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.Flags().StringVar(&metricName, "metric", "range", "change metric: \"range\" (normalized by tuning bounds) or \"value\" (normalized by starting value)")
	rootCmd.Flags().StringVar(&formatName, "format", "aligned", "table format: \"aligned\" (before -> after) or \"percent\" (signed percentages)")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the report as JSON instead of a table")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI color in the table")
	rootCmd.Flags().BoolVar(&byName, "by-name", false, "pair options by name instead of by position")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "HTTP fetch timeout")

	// Shell completion (bash, zsh, fish, powershell) via Cobra's built-in generator
	completionCmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate a shell completion script for tunediff.

To load completions:

Bash:
  $ source <(tunediff completion bash)

Zsh:
  $ tunediff completion zsh > "${fpath[1]}/_tunediff"

Fish:
  $ tunediff completion fish | source

PowerShell:
  PS> tunediff completion powershell | Out-String | Invoke-Expression`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	rootCmd.AddCommand(completionCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tunediff: %s\n", err)
		os.Exit(1)
	}
}
