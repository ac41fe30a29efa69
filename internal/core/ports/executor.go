package ports

import (
	"context"
	"io"
)

// Command is a process run by an Executor.
type Command struct {
	// Args is the program followed by its arguments.
	Args []string
	// Dir is the working directory. Empty means the current one.
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Executor runs external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command to completion. A non-zero exit is an error
	// carrying the exit code as metadata.
	Execute(ctx context.Context, cmd Command) error
}
