package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/gofunge/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gofunge",
	Short: "A Befunge-93 interpreter",
	Long: `Gofunge is an interpreter for Befunge-93, a stack-based language whose
programs are laid out on a two-dimensional grid. The instruction pointer
walks the grid in four directions, wrapping around the edges like a torus,
and executes the character under it at every step.

Reference: https://catseye.tc/view/befunge-93/doc/Befunge-93.markdown`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("gofunge %s\n", version.String()))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
