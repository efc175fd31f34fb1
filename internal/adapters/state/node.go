package state

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.skilldock.io/skilldock/internal/core/ports"
)

// NodeID is the unique identifier for the state store Graft node.
const NodeID graft.ID = "adapter.state_store"

func init() {
	graft.Register(graft.Node[ports.StateStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StateStore, error) {
			root, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return New(root), nil
		},
	})
}
