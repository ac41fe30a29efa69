package telemetry

import (
	"context"
	"io"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/zerr"
)

// Opener implements ports.AnalyticsOpener with Open.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open implements ports.AnalyticsOpener.
func (o *Opener) Open(ctx context.Context, cfg *domain.Config, out io.Writer) (ports.Analytics, func(context.Context) error, error) {
	return Open(ctx, cfg, out)
}

// Open returns the analytics SDK selected by cfg.Sink and its shutdown function.
// Console output goes to out.
func Open(ctx context.Context, cfg *domain.Config, out io.Writer) (ports.Analytics, func(context.Context) error, error) {
	noShutdown := func(context.Context) error { return nil }

	switch cfg.Sink {
	case domain.SinkOTel, "":
		tp, err := NewTracerProvider(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return NewOTelSDK(tp), tp.Shutdown, nil
	case domain.SinkConsole:
		return NewConsoleSDK(out, 0), noShutdown, nil
	case domain.SinkNoop:
		return NewNoOpSDK(), noShutdown, nil
	default:
		return nil, nil, zerr.With(domain.ErrUnknownSink, "sink", string(cfg.Sink))
	}
}
