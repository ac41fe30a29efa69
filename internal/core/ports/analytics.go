// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/tally/internal/core/domain"
)

//go:generate mockgen -source=analytics.go -destination=mocks/mock_analytics.go -package=mocks

// ClientOptions configures an analytics client at creation time.
type ClientOptions struct {
	// AppName and AppVersion describe the host application.
	AppName    string
	AppVersion string
	// ClientID identifies this installation across runs.
	ClientID string
	// DryRun keeps hits from leaving the client.
	DryRun bool
}

// Analytics is the entry point of an analytics SDK.
type Analytics interface {
	// NewClient creates the SDK client handle.
	NewClient(ctx context.Context, opts ClientOptions) (Client, error)
}

// Client is an SDK client handle from which trackers are created.
type Client interface {
	// NewTracker creates a tracker from a preconfigured tracker resource.
	NewTracker(settings domain.TrackerSettings) (Tracker, error)
	// SetAppOptOut disables (true) or re-enables (false) data collection for the whole client.
	SetAppOptOut(optOut bool)
	// AppOptOut reports whether data collection is disabled.
	AppOptOut() bool
	// Close releases the client and flushes anything it buffered.
	Close(ctx context.Context) error
}

// Tracker is a named channel through which hits for one scope are sent.
type Tracker interface {
	// SetScreenName sets the screen name stamped on subsequent hits. An empty name clears it.
	SetScreenName(name string)
	// ScreenName returns the screen name currently set.
	ScreenName() string
	// Send dispatches a single hit.
	Send(ctx context.Context, hit domain.Hit) error
}
