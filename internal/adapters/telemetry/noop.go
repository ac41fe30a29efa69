package telemetry

import (
	"context"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
)

// NoOpSDK is an analytics SDK that discards every hit.
type NoOpSDK struct{}

// NewNoOpSDK creates a new NoOpSDK.
func NewNoOpSDK() *NoOpSDK {
	return &NoOpSDK{}
}

// NewClient returns a client whose trackers drop hits.
func (s *NoOpSDK) NewClient(_ context.Context, opts ports.ClientOptions) (ports.Client, error) {
	c := &NoOpClient{}
	c.opts = opts
	return c, nil
}

// NoOpClient is the client handle of NoOpSDK.
type NoOpClient struct {
	clientState
}

// NewTracker validates the settings and returns a NoOpTracker.
func (c *NoOpClient) NewTracker(settings domain.TrackerSettings) (ports.Tracker, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &NoOpTracker{client: c}, nil
}

// Close marks the client closed.
func (c *NoOpClient) Close(_ context.Context) error {
	c.closed.Store(true)
	return nil
}

// NoOpTracker keeps the screen name but sends nothing.
type NoOpTracker struct {
	screen
	client *NoOpClient
}

// Send does nothing unless the client is closed.
func (t *NoOpTracker) Send(_ context.Context, _ domain.Hit) error {
	if t.client.closed.Load() {
		return domain.ErrClientClosed
	}
	return nil
}
