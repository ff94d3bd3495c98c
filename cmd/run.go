package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/itsmostafa/gofunge/internal/befunge"
	"github.com/spf13/cobra"
)

// sourceExt is the required extension for Befunge-93 program files.
const sourceExt = ".bf"

var startX int64
var startY int64
var direction string
var traceEnabled bool

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a Befunge-93 program from a file",
	Long: `Run a Befunge-93 program from a file. The file must have a ` + sourceExt + ` extension.
Process stdin and stdout are wired as the program's input and output
channels, and any interpreter error exits with a non-zero status.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args[0])
		if err != nil {
			return err
		}
		return execute(cmd, source)
	},
}

func init() {
	addInterpreterFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

// addInterpreterFlags registers the flags shared by run and eval.
func addInterpreterFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&startX, "start-x", 0, "Initial instruction pointer column")
	cmd.Flags().Int64Var(&startY, "start-y", 0, "Initial instruction pointer row")

	// Direction flag with env var fallback
	defaultDirection := "right"
	if envDirection := os.Getenv("GOFUNGE_DIRECTION"); envDirection != "" {
		defaultDirection = envDirection
	}
	cmd.Flags().StringVar(&direction, "direction", defaultDirection, "Initial instruction pointer direction (right, left, up, down)")

	cmd.Flags().BoolVar(&traceEnabled, "trace", false, "Print a styled execution trace to stderr")
}

// readSource validates the program file's extension and reads its contents.
func readSource(path string) (string, error) {
	if filepath.Ext(path) != sourceExt {
		return "", fmt.Errorf("%s is not a Befunge-93 program (expected a %s extension)", path, sourceExt)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read program: %w", err)
	}
	return string(data), nil
}

// execute wires the command's streams to the interpreter and runs it.
func execute(cmd *cobra.Command, source string) error {
	dir, err := befunge.ParseDirection(direction)
	if err != nil {
		return err
	}

	cfg := befunge.Config{
		Source:    source,
		Output:    cmd.OutOrStdout(),
		Input:     cmd.InOrStdin(),
		Direction: dir,
	}
	if startX != 0 || startY != 0 {
		cfg.Start = &befunge.Coord{X: startX, Y: startY}
	}
	if traceEnabled {
		cfg.Trace = cmd.ErrOrStderr()
	}

	interp, err := befunge.New(cfg)
	if err != nil {
		return err
	}
	return interp.Execute()
}
