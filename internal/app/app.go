// Package app implements the application layer for tally.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/tally/internal/build"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/tally/internal/engine/registry"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	store        ports.ClientIDStore
	opener       ports.AnalyticsOpener
	executor     ports.Executor
	logger       ports.Logger
	clock        clockwork.Clock
	stdout       io.Writer
	stderr       io.Writer
	workDir      string

	mu       sync.Mutex
	registry *registry.Registry
	shutdown func(context.Context) error
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	store ports.ClientIDStore,
	opener ports.AnalyticsOpener,
	executor ports.Executor,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		store:        store,
		opener:       opener,
		executor:     executor,
		logger:       log,
		clock:        clockwork.NewRealClock(),
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithClock sets the clock the registry measures elapsed time with.
func (a *App) WithClock(c clockwork.Clock) *App {
	a.clock = c
	return a
}

// WithOutput sets where sink output and timed commands write to.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithWorkDir sets the directory configuration is resolved from.
// The process working directory is used when unset.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// Options are the per-invocation settings shared by all commands.
type Options struct {
	// ConfigPath is an explicit tally.yaml path.
	ConfigPath string
	// Tracker selects the tracker kind hits are sent through.
	Tracker string
	// JSON switches the logger to JSON output.
	JSON bool
}

// Registry returns the process registry, building and initializing it on first use.
// The first call initializes with the tracker selected by opts.Tracker, falling back
// to the configured default. Later calls return the same instance and only apply opts.Tracker.
func (a *App) Registry(ctx context.Context, opts Options) (*registry.Registry, error) {
	var (
		kind     domain.TrackerKind
		selected = opts.Tracker != ""
	)
	if selected {
		var err error
		if kind, err = domain.ParseTrackerKind(opts.Tracker); err != nil {
			return nil, err
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.registry == nil {
		reg, err := a.newRegistry(ctx, opts, kind, selected)
		if err != nil {
			return nil, err
		}
		a.registry = reg
		return reg, nil
	}

	if selected {
		if err := a.registry.SetTrackerKind(kind); err != nil {
			return nil, err
		}
	}
	return a.registry, nil
}

func (a *App) newRegistry(
	ctx context.Context,
	opts Options,
	kind domain.TrackerKind,
	selected bool,
) (*registry.Registry, error) {
	a.logger.SetJSON(opts.JSON)

	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}

	clientID, err := a.store.ClientID(cfg.Root)
	if err != nil {
		return nil, err
	}

	analytics, shutdown, err := a.opener.Open(ctx, cfg, a.stdout)
	if err != nil {
		return nil, err
	}

	defaultKind := cfg.DefaultTracker
	if selected {
		defaultKind = kind
	}

	version := cfg.Version
	if version == "" {
		version = build.Version
	}

	reg := registry.New(analytics, registry.Config{
		Client: ports.ClientOptions{
			AppName:    cfg.App,
			AppVersion: version,
			ClientID:   clientID,
			DryRun:     cfg.DryRun,
		},
		Trackers:    cfg.Trackers,
		DefaultKind: defaultKind,
		OptOut:      cfg.OptOut,
	}, a.logger, registry.WithClock(a.clock))

	if err := reg.Init(ctx); err != nil {
		if shutdownErr := shutdown(ctx); shutdownErr != nil {
			a.logger.Error(shutdownErr)
		}
		return nil, err
	}

	a.shutdown = shutdown
	return reg, nil
}

func (a *App) loadConfig(opts Options) (*domain.Config, error) {
	cwd := a.workDir
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to get current working directory")
		}
		cwd = wd
	}
	return a.configLoader.Load(cwd, opts.ConfigPath)
}

// Send dispatches a hit through the tracker of the selected kind.
// A screen view hit takes its screen name from hit.ScreenName.
func (a *App) Send(ctx context.Context, opts Options, hit domain.Hit) error {
	reg, err := a.Registry(ctx, opts)
	if err != nil {
		return err
	}

	switch hit.Type {
	case domain.HitScreenView:
		return reg.SendScreenView(ctx, hit.ScreenName)
	case domain.HitEvent:
		return reg.SendEvent(ctx, hit.Category, hit.Action, hit.Label, hit.Value)
	case domain.HitTiming:
		return reg.SendTiming(ctx, hit.Category, hit.Value, hit.Variable, hit.Label)
	case domain.HitException:
		return reg.SendException(ctx, hit.Description)
	default:
		return zerr.With(domain.ErrHitSendFailed, "hit_type", string(hit.Type))
	}
}

// TimeRequest describes a command whose duration is reported as a timing hit.
type TimeRequest struct {
	Category string
	Name     string
	Label    string
	Command  []string
}

// Time runs the command, reports its duration as a timing hit and returns
// the command's error when it did not succeed. The timing is sent either way.
func (a *App) Time(ctx context.Context, opts Options, req TimeRequest) error {
	if len(req.Command) == 0 {
		return domain.ErrNoCommandSpecified
	}

	reg, err := a.Registry(ctx, opts)
	if err != nil {
		return err
	}

	reg.Begin()
	defer reg.ClearBeginTime()

	runErr := a.executor.Execute(ctx, ports.Command{
		Args:   req.Command,
		Dir:    a.workDir,
		Stdin:  os.Stdin,
		Stdout: a.stdout,
		Stderr: a.stderr,
	})

	elapsed, err := reg.ElapsedMillis()
	if err != nil {
		return err
	}
	sendErr := reg.SendTiming(ctx, req.Category, elapsed, req.Name, req.Label)
	if runErr == nil {
		return sendErr
	}
	if sendErr != nil {
		a.logger.Error(sendErr)
	}
	return runErr
}

// KindInfo describes one tracker kind as configured.
type KindInfo struct {
	Kind     domain.TrackerKind
	Settings domain.TrackerSettings
	Default  bool
}

// Kinds lists every tracker kind with its configured resource.
// It reads the configuration only and does not initialize the SDK.
func (a *App) Kinds(opts Options) ([]KindInfo, error) {
	a.logger.SetJSON(opts.JSON)

	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}

	selected := cfg.DefaultTracker
	if opts.Tracker != "" {
		if selected, err = domain.ParseTrackerKind(opts.Tracker); err != nil {
			return nil, err
		}
	}

	infos := make([]KindInfo, 0, len(domain.TrackerKinds))
	for _, kind := range domain.TrackerKinds {
		settings, ok := cfg.Trackers[kind]
		if !ok {
			settings = domain.DefaultTrackerSettings()[kind]
		}
		infos = append(infos, KindInfo{Kind: kind, Settings: settings, Default: kind == selected})
	}
	return infos, nil
}

// Check initializes the registry and creates the tracker of every kind,
// returning the kinds that now have a tracker.
func (a *App) Check(ctx context.Context, opts Options) ([]domain.TrackerKind, error) {
	reg, err := a.Registry(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := reg.Warm(ctx, domain.TrackerKinds...); err != nil {
		return nil, err
	}
	return reg.Trackers(), nil
}

// Close releases the registry's client and the SDK. It is a no-op before first use.
func (a *App) Close(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.registry == nil {
		return nil
	}

	err := a.registry.Close(ctx)
	if a.shutdown != nil {
		err = errors.Join(err, a.shutdown(ctx))
	}
	a.registry = nil
	a.shutdown = nil
	return err
}

// Components holds the long-lived dependencies of the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}
