package config

// Tallyfile represents the structure of the tally.yaml configuration file.
type Tallyfile struct {
	App            string                 `yaml:"app"`
	Version        string                 `yaml:"version"`
	OptOut         bool                   `yaml:"optOut"`
	DryRun         bool                   `yaml:"dryRun"`
	Sink           string                 `yaml:"sink"`
	OTLP           OTLPDTO                `yaml:"otlp"`
	DefaultTracker string                 `yaml:"defaultTracker"`
	Trackers       map[string]*TrackerDTO `yaml:"trackers"`
}

// OTLPDTO represents the span export settings.
type OTLPDTO struct {
	Endpoint string `yaml:"endpoint"`
	Insecure bool   `yaml:"insecure"`
}

// TrackerDTO represents a tracker resource in the configuration.
// Omitted fields keep the defaults of the tracker kind.
type TrackerDTO struct {
	Resource    string   `yaml:"resource"`
	TrackingID  string   `yaml:"trackingId"`
	SampleRate  *float64 `yaml:"sampleRate"`
	AnonymizeIP bool     `yaml:"anonymizeIP"`
}
