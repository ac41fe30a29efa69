package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Sink selects the analytics SDK adapter hits are delivered to.
type Sink string

const (
	// SinkOTel records hits as OpenTelemetry spans.
	SinkOTel Sink = "otel"
	// SinkConsole writes hits as JSON lines.
	SinkConsole Sink = "console"
	// SinkNoop discards hits.
	SinkNoop Sink = "noop"
)

// ParseSink converts a configuration value into a Sink. An empty value selects SinkOTel.
func ParseSink(s string) (Sink, error) {
	switch Sink(strings.ToLower(strings.TrimSpace(s))) {
	case "", SinkOTel:
		return SinkOTel, nil
	case SinkConsole:
		return SinkConsole, nil
	case SinkNoop:
		return SinkNoop, nil
	default:
		return "", zerr.With(ErrUnknownSink, "sink", s)
	}
}

// OTLPSettings configures span export for the otel sink.
type OTLPSettings struct {
	// Endpoint is the collector address; empty keeps spans in-process.
	Endpoint string
	Insecure bool
}

// Config is the resolved tally configuration.
type Config struct {
	App            string
	Version        string
	OptOut         bool
	DryRun         bool
	Sink           Sink
	OTLP           OTLPSettings
	DefaultTracker TrackerKind
	Trackers       map[TrackerKind]TrackerSettings
	// Root is the directory the configuration was found in.
	Root string
}

// DefaultConfig returns the configuration used when no tally.yaml exists.
func DefaultConfig() *Config {
	return &Config{
		App:            "tally",
		Sink:           SinkOTel,
		DefaultTracker: TrackerApp,
		Trackers:       DefaultTrackerSettings(),
		Root:           ".",
	}
}
