package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.skilldock.io/skilldock/internal/adapters/state"
	"go.skilldock.io/skilldock/internal/core/ports"
)

// NodeID is the unique identifier for the archive installer Graft node.
const NodeID graft.ID = "adapter.archive_installer"

func init() {
	graft.Register(graft.Node[ports.ArchiveInstaller]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{state.NodeID},
		Run: func(ctx context.Context) (ports.ArchiveInstaller, error) {
			store, err := graft.Dep[ports.StateStore](ctx)
			if err != nil {
				return nil, err
			}
			return New(store.SkillsDir()), nil
		},
	})
}
