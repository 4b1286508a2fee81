package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Execute runs the root command.
func Execute(version, commit string) error {
	return newRootCommand(version, commit).Execute()
}

func newRootCommand(version, commit string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vleq",
		Short: "vleq - vapor-liquid equilibrium flash calculations",
		Long: `vleq solves the Rachford-Rice equation for the equilibrium vapor
fraction of a multi-component fluid undergoing isothermal flash separation.

Feed data goes in as literal flag values; the converged vapor fraction
comes out on stdout. No files are read or written.`,
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
	}

	rootCmd.AddCommand(newFlashCommand())

	return rootCmd
}
