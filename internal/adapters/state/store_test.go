package state_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skilldock.io/skilldock/internal/adapters/state"
	"go.skilldock.io/skilldock/internal/core/domain"
)

func mustRef(t *testing.T, key string) domain.SkillRef {
	t.Helper()
	ref, err := domain.ParseSkillRef(key)
	require.NoError(t, err)
	return ref
}

func TestLoadManifest_Missing(t *testing.T) {
	store := state.New(t.TempDir())

	m, err := store.LoadManifest()
	require.NoError(t, err)
	assert.Equal(t, domain.SchemaVersion, m.SchemaVersion)
	assert.Equal(t, domain.DefaultSkillsDir, m.SkillsDir)
	assert.Empty(t, m.Direct)
}

func TestLoadManifest_Malformed(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(root, domain.ManifestFileName),
		[]byte("{not json"),
		domain.FilePerm,
	))

	m, err := state.New(root).LoadManifest()
	require.NoError(t, err)
	assert.Empty(t, m.Direct)
	assert.Equal(t, domain.DefaultSkillsDir, m.SkillsDir)
}

func TestSaveManifest_RoundTrip(t *testing.T) {
	store := state.New(t.TempDir())

	direct := map[string]string{
		"acme/app":     "^1.0.0",
		"core/runtime": "latest",
	}
	require.NoError(t, store.SaveManifest(direct))

	m, err := store.LoadManifest()
	require.NoError(t, err)
	assert.Equal(t, direct, m.Direct)
	assert.Equal(t, domain.SchemaVersion, m.SchemaVersion)
}

func TestSaveManifest_PreservesSkillsDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(root, domain.ManifestFileName),
		[]byte(`{"schema_version": 1, "skills_dir": "vendor-skills", "direct": {}}`),
		domain.FilePerm,
	))
	store := state.New(root)

	require.NoError(t, store.SaveManifest(map[string]string{"acme/app": "latest"}))

	m, err := store.LoadManifest()
	require.NoError(t, err)
	assert.Equal(t, "vendor-skills", m.SkillsDir)
	assert.Equal(t, filepath.Join(root, "vendor-skills"), store.SkillsDir())
}

func TestSaveLock_Golden(t *testing.T) {
	root := t.TempDir()
	clock := func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) }
	store := state.NewWithClock(root, clock)

	resolved := map[string]domain.Release{
		"acme/app": {
			Ref:     mustRef(t, "acme/app"),
			Version: "1.0.0",
			Dependencies: []domain.DependencySpec{
				{Ref: mustRef(t, "core/runtime"), VersionRequirement: "^1.0.0"},
			},
			ContentHash:     "abc123",
			DownloadLocator: "https://registry.example/acme/app/1.0.0.zip",
		},
		"core/runtime": {
			Ref:             mustRef(t, "core/runtime"),
			Version:         "1.5.0",
			DownloadLocator: "https://registry.example/core/runtime/1.5.0.zip",
		},
	}
	require.NoError(t, store.SaveLock(resolved))

	data, err := os.ReadFile(store.LockPath())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "lock_snapshot", data)
}

func TestLoadLock_MissingAndMalformed(t *testing.T) {
	root := t.TempDir()
	store := state.New(root)

	l, err := store.LoadLock()
	require.NoError(t, err)
	assert.Empty(t, l.Skills)

	require.NoError(t, os.WriteFile(
		filepath.Join(root, domain.LockFileName),
		[]byte("]["),
		domain.FilePerm,
	))
	l, err = store.LoadLock()
	require.NoError(t, err)
	assert.Empty(t, l.Skills)
}

func TestSaveLock_RoundTrip(t *testing.T) {
	store := state.New(t.TempDir())

	resolved := map[string]domain.Release{
		"acme/app": {
			Ref:             mustRef(t, "acme/app"),
			Version:         "2.1.0",
			DownloadLocator: "https://registry.example/acme/app/2.1.0.zip",
		},
	}
	require.NoError(t, store.SaveLock(resolved))

	l, err := store.LoadLock()
	require.NoError(t, err)
	require.Contains(t, l.Skills, "acme/app")
	entry := l.Skills["acme/app"]
	assert.Equal(t, "acme", entry.Namespace)
	assert.Equal(t, "app", entry.Slug)
	assert.Equal(t, "2.1.0", entry.Version)
	assert.NotEmpty(t, l.GeneratedAt)
}

func TestSkillInstalledAndMeta(t *testing.T) {
	root := t.TempDir()
	store := state.New(root)
	ref := mustRef(t, "acme/app")

	assert.False(t, store.SkillInstalled(ref))
	_, found := store.ReadInstalledMeta(ref)
	assert.False(t, found)

	skillDir := filepath.Join(store.SkillsDir(), "acme", "app")
	require.NoError(t, os.MkdirAll(skillDir, domain.DirPerm))
	assert.True(t, store.SkillInstalled(ref))

	meta := `{"namespace":"acme","slug":"app","version":"1.0.0","installed_at":"2026-03-14T09:30:00Z"}`
	require.NoError(t, os.WriteFile(
		filepath.Join(skillDir, domain.InstallMetaFileName),
		[]byte(meta),
		domain.FilePerm,
	))

	got, found := store.ReadInstalledMeta(ref)
	require.True(t, found)
	assert.Equal(t, "1.0.0", got.Version)
	assert.Equal(t, "acme", got.Namespace)
}

func TestReadInstalledMeta_Malformed(t *testing.T) {
	root := t.TempDir()
	store := state.New(root)
	ref := mustRef(t, "acme/app")

	skillDir := filepath.Join(store.SkillsDir(), "acme", "app")
	require.NoError(t, os.MkdirAll(skillDir, domain.DirPerm))
	require.NoError(t, os.WriteFile(
		filepath.Join(skillDir, domain.InstallMetaFileName),
		[]byte("not json"),
		domain.FilePerm,
	))

	_, found := store.ReadInstalledMeta(ref)
	assert.False(t, found)
}

func TestRemoveSkill_PrunesEmptyNamespace(t *testing.T) {
	root := t.TempDir()
	store := state.New(root)
	ref := mustRef(t, "acme/app")

	skillDir := filepath.Join(store.SkillsDir(), "acme", "app")
	require.NoError(t, os.MkdirAll(skillDir, domain.DirPerm))

	require.NoError(t, store.RemoveSkill(ref))
	assert.False(t, store.SkillInstalled(ref))
	_, err := os.Stat(filepath.Join(store.SkillsDir(), "acme"))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveSkill_KeepsNamespaceWithSiblings(t *testing.T) {
	root := t.TempDir()
	store := state.New(root)

	require.NoError(t, os.MkdirAll(filepath.Join(store.SkillsDir(), "acme", "app"), domain.DirPerm))
	require.NoError(t, os.MkdirAll(filepath.Join(store.SkillsDir(), "acme", "web"), domain.DirPerm))

	require.NoError(t, store.RemoveSkill(mustRef(t, "acme/app")))
	_, err := os.Stat(filepath.Join(store.SkillsDir(), "acme", "web"))
	assert.NoError(t, err)
}

func TestRemoveSkill_MissingIsNoop(t *testing.T) {
	store := state.New(t.TempDir())
	require.NoError(t, store.RemoveSkill(mustRef(t, "ghost/skill")))
}

func TestEnsureSkillsDir(t *testing.T) {
	root := t.TempDir()
	store := state.New(root)

	require.NoError(t, store.EnsureSkillsDir())
	info, err := os.Stat(store.SkillsDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent.
	require.NoError(t, store.EnsureSkillsDir())
}

func TestEnsureSkillsDir_PathIsFile(t *testing.T) {
	root := t.TempDir()
	store := state.New(root)
	require.NoError(t, os.WriteFile(store.SkillsDir(), []byte("x"), domain.FilePerm))

	err := store.EnsureSkillsDir()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSkillsDirNotDirectory)
}
