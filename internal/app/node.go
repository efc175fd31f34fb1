package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.skilldock.io/skilldock/internal/adapters/archive"   //nolint:depguard // Wired in app layer
	"go.skilldock.io/skilldock/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.skilldock.io/skilldock/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.skilldock.io/skilldock/internal/adapters/packager"  //nolint:depguard // Wired in app layer
	"go.skilldock.io/skilldock/internal/adapters/registry"  //nolint:depguard // Wired in app layer
	"go.skilldock.io/skilldock/internal/adapters/state"     //nolint:depguard // Wired in app layer
	"go.skilldock.io/skilldock/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.skilldock.io/skilldock/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.NodeID,
			state.NodeID,
			archive.NodeID,
			config.NodeID,
			packager.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	repo, err := graft.Dep[ports.ReleaseRepository](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.StateStore](ctx)
	if err != nil {
		return nil, err
	}

	installer, err := graft.Dep[ports.ArchiveInstaller](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[ports.SettingsStore](ctx)
	if err != nil {
		return nil, err
	}

	pack, err := graft.Dep[ports.Packager](ctx)
	if err != nil {
		return nil, err
	}

	watch, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(repo, store, installer, settings, pack, watch, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[ports.SettingsStore](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(application, log, settings), nil
}
