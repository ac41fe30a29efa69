package telemetry

import (
	"sync"

	"go.trai.ch/tally/internal/core/domain"
)

// screen holds the screen name a tracker stamps on outgoing hits.
type screen struct {
	mu   sync.RWMutex
	name string
}

// SetScreenName sets the screen name. An empty name clears it.
func (s *screen) SetScreenName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

// ScreenName returns the current screen name.
func (s *screen) ScreenName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *screen) stamp(hit domain.Hit) domain.Hit {
	if name := s.ScreenName(); name != "" {
		hit.ScreenName = name
	}
	return hit
}
