// Package main provides the entry point for the powerfang CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/powerfang/cmd/powerfang/commands"
	"github.com/Sumatoshi-tech/powerfang/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "powerfang",
		Short: "Powerfang - canonical PowerShell source renderer",
		Long: `Powerfang renders serialized PowerShell syntax trees as canonical
source text.

Commands:
  format    Render a tree document as PowerShell source
  tokens    List every token kind with its canonical spelling`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewFormatCommand())
	rootCmd.AddCommand(commands.NewTokensCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "powerfang %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
