package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tally/internal/core/ports"
)

// NodeID is the unique identifier for the analytics opener Graft node.
const NodeID graft.ID = "adapter.analytics"

func init() {
	graft.Register(graft.Node[ports.AnalyticsOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.AnalyticsOpener, error) {
			return NewOpener(), nil
		},
	})
}
