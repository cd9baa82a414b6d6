package process

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Runner runs external commands with the parent's standard streams,
// so installer output lands in the build log as it is produced.
type Runner struct{}

// NewRunner creates a new process runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Command builds the child process for args. The child inherits stdin,
// stdout, stderr, environment and working directory. Cancelling ctx kills it.
func (r *Runner) Command(ctx context.Context, args []string) (*exec.Cmd, error) {
	if len(args) == 0 || args[0] == "" {
		return nil, fmt.Errorf("empty command")
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// Run starts the command and waits for it to exit.
// A non-zero exit is reported as *exec.ExitError.
func (r *Runner) Run(ctx context.Context, args []string) error {
	cmd, err := r.Command(ctx, args)
	if err != nil {
		return err
	}
	return cmd.Run()
}
