package shell_test

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tally/internal/adapters/shell"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/zerr"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecutor_Execute_Output(t *testing.T) {
	requireShell(t)

	var stdout, stderr bytes.Buffer
	err := shell.NewExecutor().Execute(context.Background(), ports.Command{
		Args:   []string{"sh", "-c", "echo line1; echo line2; echo oops >&2"},
		Stdout: &stdout,
		Stderr: &stderr,
	})
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", stdout.String())
	assert.Equal(t, "oops\n", stderr.String())
}

func TestExecutor_Execute_WorkingDir(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	var stdout bytes.Buffer
	err := shell.NewExecutor().Execute(context.Background(), ports.Command{
		Args:   []string{"sh", "-c", "pwd"},
		Dir:    dir,
		Stdout: &stdout,
	})
	require.NoError(t, err)

	got, err := filepath.EvalSymlinks(strings.TrimSpace(stdout.String()))
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExecutor_Execute_Stdin(t *testing.T) {
	requireShell(t)

	var stdout bytes.Buffer
	err := shell.NewExecutor().Execute(context.Background(), ports.Command{
		Args:   []string{"sh", "-c", "cat"},
		Stdin:  strings.NewReader("piped"),
		Stdout: &stdout,
	})
	require.NoError(t, err)
	assert.Equal(t, "piped", stdout.String())
}

func TestExecutor_Execute_ExitCode(t *testing.T) {
	requireShell(t)

	err := shell.NewExecutor().Execute(context.Background(), ports.Command{
		Args: []string{"sh", "-c", "exit 3"},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCommandFailed.Error())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
	assert.Equal(t, "sh", zErr.Metadata()["command"])

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
}

func TestExecutor_Execute_NotFound(t *testing.T) {
	err := shell.NewExecutor().Execute(context.Background(), ports.Command{
		Args: []string{"tally-definitely-not-a-command"},
	})
	require.Error(t, err)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, -1, zErr.Metadata()["exit_code"])
}

func TestExecutor_Execute_NoArgs(t *testing.T) {
	err := shell.NewExecutor().Execute(context.Background(), ports.Command{})
	require.ErrorIs(t, err, domain.ErrNoCommandSpecified)
}

func TestExecutor_Execute_Cancelled(t *testing.T) {
	requireShell(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := shell.NewExecutor().Execute(ctx, ports.Command{
		Args: []string{"sh", "-c", "sleep 5"},
	})
	require.Error(t, err)
}
