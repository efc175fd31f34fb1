package app

import (
	"go.skilldock.io/skilldock/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings ports.SettingsStore
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, settings ports.SettingsStore) *Components {
	return &Components{
		App:      app,
		Logger:   logger,
		Settings: settings,
	}
}
