package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.skilldock.io/skilldock/internal/adapters/config"
	"go.skilldock.io/skilldock/internal/core/ports"
)

// NodeID is the unique identifier for the release repository Graft node.
const NodeID graft.ID = "adapter.release_repository"

func init() {
	graft.Register(graft.Node[ports.ReleaseRepository]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ReleaseRepository, error) {
			settings, err := graft.Dep[ports.SettingsStore](ctx)
			if err != nil {
				return nil, err
			}
			loaded, err := settings.Load()
			if err != nil {
				return nil, err
			}
			return NewClient(loaded.RegistryURL, loaded.Token, nil)
		},
	})
}
