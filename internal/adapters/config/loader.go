// Package config provides the configuration loader for tally.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the configuration for cwd.
// An explicit path must exist. Without one the loader walks up from cwd
// and returns the defaults rooted at cwd when no tally.yaml is found.
func (l *Loader) Load(cwd, path string) (*domain.Config, error) {
	configPath := path
	if configPath != "" {
		if !filepath.IsAbs(configPath) {
			configPath = filepath.Join(cwd, configPath)
		}
		if _, err := os.Stat(configPath); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
		}
	} else {
		configPath = findConfiguration(cwd)
	}

	if configPath == "" {
		cfg := domain.DefaultConfig()
		cfg.Root = filepath.Clean(cwd)
		return cfg, nil
	}

	var tallyfile Tallyfile
	if err := readAndUnmarshalYAML(configPath, &tallyfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	cfg, err := l.buildConfig(&tallyfile)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	cfg.Root = filepath.Dir(filepath.Clean(configPath))
	return cfg, nil
}

// findConfiguration returns the nearest tally.yaml at or above cwd, or "".
func findConfiguration(cwd string) string {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return ""
		}
		currentDir = parentDir
	}
}

func (l *Loader) buildConfig(tallyfile *Tallyfile) (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	if tallyfile.App != "" {
		cfg.App = tallyfile.App
	}
	cfg.Version = tallyfile.Version
	cfg.OptOut = tallyfile.OptOut
	cfg.DryRun = tallyfile.DryRun
	cfg.OTLP = domain.OTLPSettings{
		Endpoint: tallyfile.OTLP.Endpoint,
		Insecure: tallyfile.OTLP.Insecure,
	}

	sink, err := domain.ParseSink(tallyfile.Sink)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	cfg.Sink = sink

	if tallyfile.OTLP.Endpoint != "" && sink != domain.SinkOTel {
		l.Logger.Warn("'otlp' has no effect unless sink is 'otel'")
	}

	if tallyfile.DefaultTracker != "" {
		kind, err := domain.ParseTrackerKind(tallyfile.DefaultTracker)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		}
		cfg.DefaultTracker = kind
	}

	for name, dto := range tallyfile.Trackers {
		kind, err := domain.ParseTrackerKind(name)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		}
		settings := mergeTracker(cfg.Trackers[kind], dto)
		if err := settings.Validate(); err != nil {
			return nil, zerr.With(err, "tracker", kind.String())
		}
		cfg.Trackers[kind] = settings
	}

	return cfg, nil
}

// mergeTracker overlays the configured fields of dto on base.
func mergeTracker(base domain.TrackerSettings, dto *TrackerDTO) domain.TrackerSettings {
	if dto == nil {
		return base
	}
	if dto.Resource != "" {
		base.Resource = dto.Resource
	}
	if dto.TrackingID != "" {
		base.TrackingID = dto.TrackingID
	}
	if dto.SampleRate != nil {
		base.SampleRate = *dto.SampleRate
	}
	base.AnonymizeIP = dto.AnonymizeIP
	return base
}

// readAndUnmarshalYAML reads a YAML file and strictly unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
