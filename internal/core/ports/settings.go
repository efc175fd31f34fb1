package ports

// Settings are the persisted CLI settings: which registry to talk to and the
// token presented to it.
type Settings struct {
	RegistryURL string `json:"registry_url"`
	Token       string `json:"token,omitempty"`
}

// SettingsStore persists CLI settings in the user's configuration directory.
//
//go:generate mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsStore interface {
	// Load reads the settings, returning defaults when no file exists.
	Load() (Settings, error)

	// Save writes the settings with owner-only permissions.
	Save(settings Settings) error

	// Path returns the absolute path of the settings file.
	Path() string
}
