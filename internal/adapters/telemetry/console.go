package telemetry

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/zerr"
)

// ConsoleSDK is an analytics SDK that writes each hit as one JSON line.
type ConsoleSDK struct {
	mu        sync.Mutex
	out       io.Writer
	sizeLimit int
}

// NewConsoleSDK creates a ConsoleSDK writing to out.
// A positive sizeLimit overrides the batching buffer size.
func NewConsoleSDK(out io.Writer, sizeLimit int) *ConsoleSDK {
	return &ConsoleSDK{out: out, sizeLimit: sizeLimit}
}

// NewClient creates a client with its own batch processor.
func (s *ConsoleSDK) NewClient(_ context.Context, opts ports.ClientOptions) (ports.Client, error) {
	if s.out == nil {
		return nil, zerr.With(domain.ErrClientCreateFailed, "sink", string(domain.SinkConsole))
	}
	c := &ConsoleClient{}
	c.opts = opts
	c.batcher = NewBatchProcessor(s.sizeLimit, DefaultTimeLimit, func(data []byte) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		_, err := s.out.Write(data)
		return err
	})
	return c, nil
}

// ConsoleClient is the client handle of ConsoleSDK.
type ConsoleClient struct {
	clientState
	batcher *BatchProcessor
}

// NewTracker creates a tracker writing through the client's batch processor.
func (c *ConsoleClient) NewTracker(settings domain.TrackerSettings) (ports.Tracker, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &ConsoleTracker{client: c, settings: settings}, nil
}

// Close flushes pending lines and stops the batch processor.
func (c *ConsoleClient) Close(_ context.Context) error {
	if c.closed.Swap(true) {
		return nil
	}
	return c.batcher.Close()
}

// ConsoleTracker encodes hits as consoleRecord lines.
type ConsoleTracker struct {
	screen
	client   *ConsoleClient
	settings domain.TrackerSettings
}

type consoleRecord struct {
	Tracker    string     `json:"tracker"`
	TrackingID string     `json:"tracking_id,omitempty"`
	ClientID   string     `json:"client_id,omitempty"`
	App        string     `json:"app,omitempty"`
	Version    string     `json:"version,omitempty"`
	Hit        domain.Hit `json:"hit"`
}

// Send encodes the hit and queues it for output.
func (t *ConsoleTracker) Send(_ context.Context, hit domain.Hit) error {
	ok, err := t.client.deliver(t.settings)
	if err != nil || !ok {
		return err
	}

	opts := t.client.opts
	line, err := json.Marshal(consoleRecord{
		Tracker:    t.settings.Resource,
		TrackingID: t.settings.TrackingID,
		ClientID:   opts.ClientID,
		App:        opts.AppName,
		Version:    opts.AppVersion,
		Hit:        t.stamp(hit),
	})
	if err != nil {
		return zerr.Wrap(err, domain.ErrHitSendFailed.Error())
	}

	if _, err := t.client.batcher.Write(append(line, '\n')); err != nil {
		return zerr.Wrap(err, domain.ErrHitSendFailed.Error())
	}
	return nil
}
