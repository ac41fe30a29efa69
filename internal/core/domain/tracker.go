package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// TrackerKind selects which tracker handle of the registry is active.
type TrackerKind int

const (
	// TrackerApp is the tracker used only by this application.
	TrackerApp TrackerKind = iota
	// TrackerGlobal is the tracker shared by all applications of an organization (roll-up tracking).
	TrackerGlobal
	// TrackerEcommerce is the tracker used for commerce transactions of an organization.
	TrackerEcommerce
)

// TrackerKinds lists every tracker kind in declaration order.
var TrackerKinds = []TrackerKind{TrackerApp, TrackerGlobal, TrackerEcommerce}

// String returns the configuration name of the kind.
func (k TrackerKind) String() string {
	switch k {
	case TrackerApp:
		return "app"
	case TrackerGlobal:
		return "global"
	case TrackerEcommerce:
		return "ecommerce"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the declared kinds.
func (k TrackerKind) Valid() bool {
	return k >= TrackerApp && k <= TrackerEcommerce
}

// ParseTrackerKind converts a configuration name into a TrackerKind.
// Matching is case-insensitive and surrounding whitespace is ignored.
func ParseTrackerKind(s string) (TrackerKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "app":
		return TrackerApp, nil
	case "global":
		return TrackerGlobal, nil
	case "ecommerce":
		return TrackerEcommerce, nil
	default:
		return TrackerApp, zerr.With(ErrUnknownTrackerKind, "kind", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k TrackerKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, zerr.With(ErrUnknownTrackerKind, "kind", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *TrackerKind) UnmarshalText(text []byte) error {
	parsed, err := ParseTrackerKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
