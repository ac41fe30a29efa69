package domain

import "go.trai.ch/zerr"

var (
	// ErrNotInitialized is returned when a hit is sent before the registry was initialized.
	ErrNotInitialized = zerr.New("tracker registry not initialized")

	// ErrNoBeginTimeSet is returned when elapsed time is read before a begin time was set.
	ErrNoBeginTimeSet = zerr.New("no begin time set")

	// ErrUnknownTrackerKind is returned for a tracker kind outside app, global and ecommerce.
	ErrUnknownTrackerKind = zerr.New("unknown tracker kind, expected 'app', 'global' or 'ecommerce'")

	// ErrMissingTrackerResource is returned when tracker settings carry no resource identifier.
	ErrMissingTrackerResource = zerr.New("tracker resource is required")

	// ErrInvalidSampleRate is returned when a sample rate is outside (0, 100].
	ErrInvalidSampleRate = zerr.New("sample rate must be greater than 0 and at most 100")

	// ErrClientCreateFailed is returned when the analytics client cannot be created.
	ErrClientCreateFailed = zerr.New("failed to create analytics client")

	// ErrTrackerCreateFailed is returned when a tracker cannot be created.
	ErrTrackerCreateFailed = zerr.New("failed to create tracker")

	// ErrHitSendFailed is returned when the SDK rejects a hit.
	ErrHitSendFailed = zerr.New("failed to send hit")

	// ErrClientClosed is returned when a tracker of a closed client is used.
	ErrClientClosed = zerr.New("analytics client is closed")

	// ErrUnknownSink is returned when the configured sink is not otel, console or noop.
	ErrUnknownSink = zerr.New("unknown sink, expected 'otel', 'console' or 'noop'")

	// ErrExporterCreateFailed is returned when the span exporter cannot be created.
	ErrExporterCreateFailed = zerr.New("failed to create span exporter")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrStoreCreateFailed is returned when the client id store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create client id store directory")

	// ErrStoreReadFailed is returned when the client id cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read client id")

	// ErrStoreUnmarshalFailed is returned when the client id record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal client id")

	// ErrStoreMarshalFailed is returned when the client id record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal client id")

	// ErrStoreWriteFailed is returned when the client id cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write client id")

	// ErrInvalidHitValue is returned when a numeric hit argument cannot be parsed.
	ErrInvalidHitValue = zerr.New("invalid hit value, expected an integer")

	// ErrNoCommandSpecified is returned when the time command has nothing to run.
	ErrNoCommandSpecified = zerr.New("no command specified")

	// ErrCommandFailed is returned when a timed command exits with an error.
	ErrCommandFailed = zerr.New("timed command failed")
)
