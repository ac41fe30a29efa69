package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tally/internal/core/ports"
)

// NodeID is the unique identifier for the client id store Graft node.
const NodeID graft.ID = "adapter.client_id_store"

func init() {
	graft.Register(graft.Node[ports.ClientIDStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ClientIDStore, error) {
			store, err := NewStore()
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
