package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
)

// InstrumentationPrefix prefixes the instrumentation name of every tracker.
const InstrumentationPrefix = "tally/"

// OTelSDK is an analytics SDK that records every hit as an OpenTelemetry span.
type OTelSDK struct {
	provider trace.TracerProvider
}

// NewOTelSDK creates an OTelSDK. A nil provider uses the global tracer provider.
func NewOTelSDK(provider trace.TracerProvider) *OTelSDK {
	return &OTelSDK{provider: provider}
}

// NewClient creates a client whose trackers share the SDK's tracer provider.
func (s *OTelSDK) NewClient(_ context.Context, opts ports.ClientOptions) (ports.Client, error) {
	provider := s.provider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	c := &OTelClient{provider: provider}
	c.opts = opts
	return c, nil
}

// OTelClient is the client handle of OTelSDK.
type OTelClient struct {
	clientState
	provider trace.TracerProvider
}

// NewTracker creates a tracker backed by a tracer named after the tracker resource.
func (c *OTelClient) NewTracker(settings domain.TrackerSettings) (ports.Tracker, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &OTelTracker{
		client:   c,
		settings: settings,
		tracer:   c.provider.Tracer(InstrumentationPrefix + settings.Resource),
	}, nil
}

// Close marks the client closed. The tracer provider is owned by the caller.
func (c *OTelClient) Close(_ context.Context) error {
	c.closed.Store(true)
	return nil
}

// OTelTracker records hits as spans named "hit.<type>".
type OTelTracker struct {
	screen
	client   *OTelClient
	settings domain.TrackerSettings
	tracer   trace.Tracer
}

// Send records one span for the hit.
func (t *OTelTracker) Send(ctx context.Context, hit domain.Hit) error {
	ok, err := t.client.deliver(t.settings)
	if err != nil || !ok {
		return err
	}

	hit = t.stamp(hit)
	_, span := t.tracer.Start(ctx, "hit."+string(hit.Type),
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(t.attributes(hit)...),
	)
	if hit.Type == domain.HitException {
		span.AddEvent("exception", trace.WithAttributes(
			attribute.String("exception.message", hit.Description),
			attribute.Bool("exception.fatal", hit.Fatal),
		))
	}
	span.End()
	return nil
}

func (t *OTelTracker) attributes(hit domain.Hit) []attribute.KeyValue {
	opts := t.client.opts
	attrs := []attribute.KeyValue{
		attribute.String("ga.tracker", t.settings.Resource),
		attribute.Bool("ga.anonymize_ip", t.settings.AnonymizeIP),
	}
	optional := []struct {
		key   string
		value string
	}{
		{"ga.tracking_id", t.settings.TrackingID},
		{"ga.client_id", opts.ClientID},
		{"ga.app_name", opts.AppName},
		{"ga.app_version", opts.AppVersion},
	}
	for _, kv := range optional {
		if kv.value != "" {
			attrs = append(attrs, attribute.String(kv.key, kv.value))
		}
	}

	for key, value := range hitValues(hit) {
		attrs = append(attrs, attributeFor("ga."+key, value))
	}
	return attrs
}

// hitValues returns the typed fields of a hit keyed by parameter name.
func hitValues(hit domain.Hit) map[string]any {
	values := map[string]any{"hit_type": string(hit.Type)}
	if hit.ScreenName != "" {
		values["screen_name"] = hit.ScreenName
	}

	switch hit.Type {
	case domain.HitEvent:
		values["category"] = hit.Category
		values["action"] = hit.Action
		values["label"] = hit.Label
		values["value"] = hit.Value
	case domain.HitTiming:
		values["category"] = hit.Category
		values["variable"] = hit.Variable
		values["label"] = hit.Label
		values["value"] = hit.Value
	case domain.HitException:
		values["description"] = hit.Description
		values["fatal"] = hit.Fatal
	case domain.HitScreenView:
	}
	return values
}

func attributeFor(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case bool:
		return attribute.Bool(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	default:
		return attribute.String(key, fmt.Sprintf("%v", v))
	}
}
