package domain

import "strconv"

// HitType identifies the kind of payload carried by a Hit.
type HitType string

const (
	// HitScreenView is a screen (app view) hit.
	HitScreenView HitType = "screenview"
	// HitEvent is a custom event hit.
	HitEvent HitType = "event"
	// HitTiming is a user timing hit.
	HitTiming HitType = "timing"
	// HitException is an exception report hit.
	HitException HitType = "exception"
)

// Hit is a single analytics payload handed to a tracker.
// Which fields are meaningful depends on Type.
type Hit struct {
	Type HitType `json:"type"`

	// ScreenName is stamped by the tracker at send time.
	ScreenName string `json:"screen_name,omitempty"`

	Category string `json:"category,omitempty"`
	Action   string `json:"action,omitempty"`
	Label    string `json:"label,omitempty"`
	// Value is the event value, or the timing interval in milliseconds.
	Value int64 `json:"value,omitempty"`
	// Variable is the timing name.
	Variable string `json:"variable,omitempty"`

	Description string `json:"description,omitempty"`
	Fatal       bool   `json:"fatal,omitempty"`
}

// NewScreenViewHit builds a screen view hit. The screen name comes from the tracker.
func NewScreenViewHit() Hit {
	return Hit{Type: HitScreenView}
}

// NewEventHit builds an event hit.
func NewEventHit(category, action, label string, value int64) Hit {
	return Hit{
		Type:     HitEvent,
		Category: category,
		Action:   action,
		Label:    label,
		Value:    value,
	}
}

// NewTimingHit builds a user timing hit with an interval in milliseconds.
func NewTimingHit(category string, intervalMillis int64, name, label string) Hit {
	return Hit{
		Type:     HitTiming,
		Category: category,
		Value:    intervalMillis,
		Variable: name,
		Label:    label,
	}
}

// NewExceptionHit builds a non-fatal exception hit.
func NewExceptionHit(description string) Hit {
	return Hit{
		Type:        HitException,
		Description: description,
		Fatal:       false,
	}
}

// Fields returns the populated fields of the hit keyed by parameter name.
// Empty strings are omitted; the value is always present for events and timings.
func (h Hit) Fields() map[string]string {
	fields := map[string]string{"type": string(h.Type)}
	put := func(key, value string) {
		if value != "" {
			fields[key] = value
		}
	}

	put("screen_name", h.ScreenName)

	switch h.Type {
	case HitEvent:
		put("category", h.Category)
		put("action", h.Action)
		put("label", h.Label)
		fields["value"] = strconv.FormatInt(h.Value, 10)
	case HitTiming:
		put("category", h.Category)
		put("variable", h.Variable)
		put("label", h.Label)
		fields["value"] = strconv.FormatInt(h.Value, 10)
	case HitException:
		put("description", h.Description)
		fields["fatal"] = strconv.FormatBool(h.Fatal)
	case HitScreenView:
	}

	return fields
}
