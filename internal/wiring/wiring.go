// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.skilldock.io/skilldock/internal/adapters/archive"
	_ "go.skilldock.io/skilldock/internal/adapters/config"
	_ "go.skilldock.io/skilldock/internal/adapters/logger"
	_ "go.skilldock.io/skilldock/internal/adapters/packager"
	_ "go.skilldock.io/skilldock/internal/adapters/registry"
	_ "go.skilldock.io/skilldock/internal/adapters/state"
	_ "go.skilldock.io/skilldock/internal/adapters/watcher"
	// Register app nodes.
	_ "go.skilldock.io/skilldock/internal/app"
)
