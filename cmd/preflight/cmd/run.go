package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aireport/preflight/internal/launcher"
	"github.com/aireport/preflight/internal/precheck"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [-- <command> [args...]]",
	Short: "Run prechecks, then launch the report assistant",
	Long: `Run verifies that the Ollama daemon is running and that the required
model is installed, in that order, stopping at the first failure with
exit code 1. When both checks pass it launches the delegate with
inherited standard streams and exits with the delegate's own exit code.

With no arguments the configured delegate is launched (default:
python3 main.py). An explicit command can be given after "--".

Example:
  preflight run
  preflight run -- python3 main_stream.py
  preflight run --model llama3:8b -- ./serve.sh`,
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	checker := precheck.NewChecker(processName, modelName)
	results, err := checker.Gate(ctx)
	printResults(results)
	if err != nil {
		// Precheck failures already printed their own warning; a nil
		// result set means the process table itself was unreadable
		if len(results) == 0 {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	command, cmdArgs := delegateCommand(args)
	code, err := launcher.Run(ctx, command, cmdArgs...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
	return nil
}

// printResults emits one human-readable status line per executed check.
// Failures go to stderr together with their remediation.
func printResults(results []precheck.Result) {
	for _, r := range results {
		if r.OK {
			fmt.Printf("OK: %s\n", r.Detail)
			continue
		}
		fmt.Fprintf(os.Stderr, "Warning: %s\n", r.Detail)
		if r.Remedy != "" {
			fmt.Fprintf(os.Stderr, "  %s\n", r.Remedy)
		}
	}
}

// delegateCommand picks the explicit command when one was given after
// "--", otherwise the configured delegate.
func delegateCommand(args []string) (string, []string) {
	if len(args) > 0 {
		return args[0], args[1:]
	}
	delegate := viper.GetStringSlice("delegate")
	if len(delegate) == 0 {
		delegate = launcher.DefaultDelegate
	}
	return delegate[0], delegate[1:]
}
