package domain

import (
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

const (
	// DefaultSampleRate samples every client.
	DefaultSampleRate = 100.0

	// sampleBuckets is the resolution of the sampling decision (0.01%).
	sampleBuckets = 10000
)

// TrackerSettings is the preconfigured resource a tracker is created from.
type TrackerSettings struct {
	// Resource identifies the tracker configuration handed to the tracker factory.
	Resource string
	// TrackingID is the property the tracker reports to.
	TrackingID string
	// SampleRate is the percentage of clients whose hits are kept, in (0, 100].
	SampleRate float64
	// AnonymizeIP asks the SDK to drop the last octet of the client address.
	AnonymizeIP bool
}

// DefaultTrackerSettings returns the three preconfigured tracker resources.
func DefaultTrackerSettings() map[TrackerKind]TrackerSettings {
	return map[TrackerKind]TrackerSettings{
		TrackerApp:       {Resource: "app_tracker", SampleRate: DefaultSampleRate},
		TrackerGlobal:    {Resource: "global_tracker", SampleRate: DefaultSampleRate},
		TrackerEcommerce: {Resource: "ecommerce_tracker", SampleRate: DefaultSampleRate},
	}
}

// Validate checks the settings are usable by a tracker factory.
func (s TrackerSettings) Validate() error {
	if s.Resource == "" {
		return ErrMissingTrackerResource
	}
	if s.SampleRate <= 0 || s.SampleRate > 100 {
		return zerr.With(ErrInvalidSampleRate, "sample_rate", s.SampleRate)
	}
	return nil
}

// InSample reports whether hits from clientID are kept at the given sample rate.
// The decision is stable for a client id so a client is either always or never sampled.
func InSample(clientID string, rate float64) bool {
	if rate >= 100 {
		return true
	}
	if rate <= 0 {
		return false
	}
	bucket := xxhash.Sum64String(clientID) % sampleBuckets
	return float64(bucket) < rate*sampleBuckets/100
}
