package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tally/internal/adapters/telemetry"
	"go.trai.ch/tally/internal/app"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader   *mocks.MockConfigLoader
	store    *mocks.MockClientIDStore
	opener   *mocks.MockAnalyticsOpener
	executor *mocks.MockExecutor
	logger   *mocks.MockLogger
	app      *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		store:    mocks.NewMockClientIDStore(ctrl),
		opener:   mocks.NewMockAnalyticsOpener(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	f.app = app.New(f.loader, f.store, f.opener, f.executor, f.logger).
		WithWorkDir(t.TempDir()).
		WithOutput(io.Discard, io.Discard)
	return f
}

func (f *fixture) provider(_ context.Context) (*app.Components, func(), error) {
	return &app.Components{App: f.app, Logger: f.logger}, func() {}, nil
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	f := newFixture(t)

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), f.provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().SetJSON(false)
	f.loader.EXPECT().Load(gomock.Any(), "").Return(nil, domain.ErrConfigParseFailed)
	f.logger.EXPECT().Error(domain.ErrConfigParseFailed).Times(1)

	exitCode := run(context.Background(), []string{"kinds"}, new(bytes.Buffer), f.provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_PropagatesChildExitCode verifies that a timed command's exit code becomes the process exit code.
func TestRun_PropagatesChildExitCode(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	childErr := exec.Command("sh", "-c", "exit 3").Run()
	var exitErr *exec.ExitError
	require.ErrorAs(t, childErr, &exitErr)

	f := newFixture(t)
	cfg := domain.DefaultConfig()
	cfg.Root = t.TempDir()

	f.logger.EXPECT().SetJSON(false).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.loader.EXPECT().Load(gomock.Any(), "").Return(cfg, nil)
	f.store.EXPECT().ClientID(cfg.Root).Return("client-1", nil)
	f.opener.EXPECT().Open(gomock.Any(), cfg, gomock.Any()).
		Return(telemetry.NewNoOpSDK(), func(context.Context) error { return nil }, nil)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).
		Return(zerr.With(zerr.Wrap(childErr, domain.ErrCommandFailed.Error()), "exit_code", 3))
	f.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"time", "build", "compile", "--", "sh", "-c", "exit 3"},
		new(bytes.Buffer), f.provider)
	assert.Equal(t, 3, exitCode)
}

// TestRun_AppliesOptions verifies that options are applied to the app before execution.
func TestRun_AppliesOptions(t *testing.T) {
	f := newFixture(t)
	applied := false

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), f.provider, func(*app.App) {
		applied = true
	})
	assert.Equal(t, 0, exitCode)
	assert.True(t, applied)
}
