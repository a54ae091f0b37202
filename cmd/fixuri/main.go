package main

import (
	"context"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walteh/fixuri/cmd/fixuri/commands"
	"github.com/walteh/fixuri/cmd/fixuri/opts"
)

func main() {
	// Setup logging
	setupLogging()
	ctx := log.Logger.WithContext(context.Background())

	rootOpts := &opts.RootOpts{}

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "fixuri",
		Short: "Rewrite vscode-uri joins to path-based joins",
		Long: `fixuri scans TypeScript sources for path joining built on vscode-uri
(URI.parse, URI.file, URI.joinPath) and rewrites them to use node's path
module, reporting every file it modifies.

Running fixuri with no arguments fixes the default tree (server/src).`,
		SilenceErrors: true,
		SilenceUsage:  true,
		// Bare `fixuri` runs the fix directly.
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunFix(cmd.Context(), rootOpts)
		},
	}

	// Add shared flags
	addRootFlags(rootCmd, rootOpts)

	// Add commands
	rootCmd.AddCommand(
		commands.NewFixCmd(rootOpts),
		commands.NewRulesCmd(rootOpts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
