package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// DefaultDelegate is the workload the launcher exists for: the report
// assistant's Python entry point in the current directory.
var DefaultDelegate = []string{"python3", "main.py"}

// Run spawns the delegate with inherited standard streams, waits for it
// to finish, and returns its exit code. A delegate that exits non-zero
// is not an error here; the caller propagates the code. Only failure to
// start the delegate at all is an error.
func Run(ctx context.Context, command string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("failed to start %s: %w", command, err)
	}
	return 0, nil
}
