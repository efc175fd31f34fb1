package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skilldock.io/skilldock/internal/adapters/config"
	"go.skilldock.io/skilldock/internal/core/domain"
	"go.skilldock.io/skilldock/internal/core/ports"
)

func newStore(t *testing.T) *config.Store {
	t.Helper()
	t.Setenv(domain.ConfigPathEnv, filepath.Join(t.TempDir(), "config.json"))
	store, err := config.NewStore()
	require.NoError(t, err)
	return store
}

func TestLoad_Defaults(t *testing.T) {
	store := newStore(t)

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRegistryURL, settings.RegistryURL)
	assert.Empty(t, settings.Token)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := newStore(t)

	want := ports.Settings{RegistryURL: "https://registry.internal", Token: "sk-secret-token"}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.PrivateFilePerm), info.Mode().Perm())
}

func TestLoad_EmptyRegistryFallsBackToDefault(t *testing.T) {
	store := newStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"token":"abc-123-def"}`), domain.PrivateFilePerm))

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRegistryURL, settings.RegistryURL)
	assert.Equal(t, "abc-123-def", settings.Token)
}

func TestLoad_Malformed(t *testing.T) {
	store := newStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{"), domain.PrivateFilePerm))

	_, err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
}

func TestRedactToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "empty", token: "", want: ""},
		{name: "tiny", token: "abcd", want: "****"},
		{name: "short", token: "abcdefgh", want: "ab...gh"},
		{name: "long", token: "sk-1234567890abcdef", want: "sk-123...cdef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, config.RedactToken(tt.token))
		})
	}
}
