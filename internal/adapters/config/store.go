// Package config persists CLI settings in the user's configuration directory.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"go.skilldock.io/skilldock/internal/core/domain"
	"go.skilldock.io/skilldock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SettingsStore = (*Store)(nil)

// Store implements ports.SettingsStore as a JSON file under the XDG config
// directory, overridable with SKILLDOCK_CONFIG_PATH.
type Store struct {
	path string
}

// NewStore locates the settings file and returns a store for it.
func NewStore() (*Store, error) {
	if p := os.Getenv(domain.ConfigPathEnv); p != "" {
		return &Store{path: p}, nil
	}
	p, err := xdg.ConfigFile(filepath.Join("skilldock", "config.json"))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	return &Store{path: p}, nil
}

// Path returns the absolute path of the settings file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings. A missing file yields the defaults; a malformed
// file is an error, since silently dropping a token would be surprising.
func (s *Store) Load() (ports.Settings, error) {
	settings := ports.Settings{RegistryURL: domain.DefaultRegistryURL}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return ports.Settings{}, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	if settings.RegistryURL == "" {
		settings.RegistryURL = domain.DefaultRegistryURL
	}
	return settings, nil
}

// Save writes the settings with owner-only permissions.
func (s *Store) Save(settings ports.Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}
	data = append(data, '\n')
	if err := os.WriteFile(s.path, data, domain.PrivateFilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}
	return nil
}

// RedactToken renders a token for display without revealing it.
func RedactToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 10 {
		if len(token) <= 4 {
			return "****"
		}
		return token[:2] + "..." + token[len(token)-2:]
	}
	return token[:6] + "..." + token[len(token)-4:]
}
