// Command apiary runs the apiary economy server and its maintenance tools.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/Apiary_Go/internal/handler"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "apiary",
		Short: "Apiary production and order economy",
		Long: `Runs the apiary HTTP server and offers offline tools for
inspecting, migrating and exporting a player's saved progress.

Configuration comes from the environment (and .env when present).`,
		Version:       handler.ResolveVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newStatusCmd(),
		newQualityCmd(),
		newExportCmd(),
		newImportCmd(),
	)
	return root
}
