// Package shell provides the command executor adapter.
package shell

import (
	"context"
	"errors"
	"os/exec"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct{}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs cmd.Args with the process environment.
// Streams left nil are connected to the null device.
func (e *Executor) Execute(ctx context.Context, cmd ports.Command) error {
	if len(cmd.Args) == 0 {
		return domain.ErrNoCommandSpecified
	}

	name := cmd.Args[0]
	c := exec.CommandContext(ctx, name, cmd.Args[1:]...) //nolint:gosec // user provided command
	c.Dir = cmd.Dir
	c.Stdin = cmd.Stdin
	c.Stdout = cmd.Stdout
	c.Stderr = cmd.Stderr

	if err := c.Run(); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrCommandFailed.Error()),
			"command", name), "exit_code", exitCode(err))
	}
	return nil
}

// exitCode returns the process exit code, or -1 when the process never
// started or was killed by a signal.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
