package cmd

import (
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <code>",
	Short: "Run Befunge-93 code given as an argument",
	Long: `Run Befunge-93 source passed directly on the command line, without a
program file. Useful for one-liners:

  gofunge eval '64+"!dlroW ,olleH">:#,_@'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return execute(cmd, args[0])
	},
}

func init() {
	addInterpreterFlags(evalCmd)
	rootCmd.AddCommand(evalCmd)
}
