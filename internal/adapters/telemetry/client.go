package telemetry

import (
	"sync/atomic"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
)

// clientState is the part of a client every adapter shares: options, opt-out and closed flags.
type clientState struct {
	opts   ports.ClientOptions
	optOut atomic.Bool
	closed atomic.Bool
}

// SetAppOptOut disables or re-enables data collection.
func (c *clientState) SetAppOptOut(optOut bool) {
	c.optOut.Store(optOut)
}

// AppOptOut reports whether data collection is disabled.
func (c *clientState) AppOptOut() bool {
	return c.optOut.Load()
}

// deliver reports whether a hit sent through a tracker with the given settings leaves the client.
func (c *clientState) deliver(settings domain.TrackerSettings) (bool, error) {
	if c.closed.Load() {
		return false, domain.ErrClientClosed
	}
	if c.optOut.Load() || c.opts.DryRun {
		return false, nil
	}
	return domain.InSample(c.opts.ClientID, settings.SampleRate), nil
}
