package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skilldock.io/skilldock/cmd/skilldock/commands"
	"go.skilldock.io/skilldock/internal/app"
	"go.skilldock.io/skilldock/internal/build"
	"go.skilldock.io/skilldock/internal/core/domain"
	"go.skilldock.io/skilldock/internal/core/ports"
	"go.skilldock.io/skilldock/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type mockApp struct {
	installFunc   func(ctx context.Context, skillArg, requirement string) (*domain.ReconcileResult, error)
	uninstallFunc func(ctx context.Context, skillArg string) (*domain.ReconcileResult, error)
	syncFunc      func(ctx context.Context) (*domain.ReconcileResult, error)
	listFunc      func() ([]app.ListEntry, error)
	packFunc      func(root string, opts ports.PackageOptions) (ports.SkillPackage, error)
}

func (m *mockApp) Install(ctx context.Context, skillArg, requirement string) (*domain.ReconcileResult, error) {
	if m.installFunc != nil {
		return m.installFunc(ctx, skillArg, requirement)
	}
	return &domain.ReconcileResult{}, nil
}

func (m *mockApp) Uninstall(ctx context.Context, skillArg string) (*domain.ReconcileResult, error) {
	if m.uninstallFunc != nil {
		return m.uninstallFunc(ctx, skillArg)
	}
	return &domain.ReconcileResult{}, nil
}

func (m *mockApp) Sync(ctx context.Context) (*domain.ReconcileResult, error) {
	if m.syncFunc != nil {
		return m.syncFunc(ctx)
	}
	return &domain.ReconcileResult{}, nil
}

func (m *mockApp) SyncWatch(ctx context.Context, onPass func(*domain.ReconcileResult, error)) error {
	result, err := m.Sync(ctx)
	onPass(result, err)
	return nil
}

func (m *mockApp) List() ([]app.ListEntry, error) {
	if m.listFunc != nil {
		return m.listFunc()
	}
	return nil, nil
}

func (m *mockApp) Pack(root string, opts ports.PackageOptions) (ports.SkillPackage, error) {
	if m.packFunc != nil {
		return m.packFunc(root, opts)
	}
	return ports.SkillPackage{}, nil
}

func newCLI(t *testing.T, mock *mockApp) (*commands.CLI, *mocks.MockSettingsStore, *bytes.Buffer) {
	t.Helper()
	settings := mocks.NewMockSettingsStore(gomock.NewController(t))
	cli := commands.New(mock, settings)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	return cli, settings, buf
}

func TestCommands_Install(t *testing.T) {
	t.Run("wires argument and version flag", func(t *testing.T) {
		var gotSkill, gotReq string
		mock := &mockApp{
			installFunc: func(_ context.Context, skillArg, requirement string) (*domain.ReconcileResult, error) {
				gotSkill, gotReq = skillArg, requirement
				return &domain.ReconcileResult{Installed: []string{"acme/review"}}, nil
			},
		}

		cli, _, buf := newCLI(t, mock)
		cli.SetArgs([]string{"install", "acme/review", "--version", "^1.0.0"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "acme/review", gotSkill)
		assert.Equal(t, "^1.0.0", gotReq)
		assert.Contains(t, buf.String(), "Installed acme/review")
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			installFunc: func(_ context.Context, _, _ string) (*domain.ReconcileResult, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli, _, _ := newCLI(t, mock)
		cli.SetArgs([]string{"install", "acme/review"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Uninstall(t *testing.T) {
	var gotSkill string
	mock := &mockApp{
		uninstallFunc: func(_ context.Context, skillArg string) (*domain.ReconcileResult, error) {
			gotSkill = skillArg
			return &domain.ReconcileResult{Removed: []string{"acme/review"}}, nil
		},
	}

	cli, _, buf := newCLI(t, mock)
	cli.SetArgs([]string{"uninstall", "acme/review"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "acme/review", gotSkill)
	assert.Contains(t, buf.String(), "Removed acme/review")
}

func TestCommands_Sync(t *testing.T) {
	t.Run("prints warnings", func(t *testing.T) {
		mock := &mockApp{
			syncFunc: func(_ context.Context) (*domain.ReconcileResult, error) {
				return &domain.ReconcileResult{
					Unchanged: []string{"acme/review"},
					Warnings:  []string{"Skipping unavailable skill acme/ghost: skill not found or not visible: acme/ghost"},
				}, nil
			},
		}

		cli, _, buf := newCLI(t, mock)
		cli.SetArgs([]string{"sync"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "Skipping unavailable skill acme/ghost")
		assert.Contains(t, buf.String(), "Nothing to do")
	})

	t.Run("watch reports each pass", func(t *testing.T) {
		mock := &mockApp{
			syncFunc: func(_ context.Context) (*domain.ReconcileResult, error) {
				return &domain.ReconcileResult{Installed: []string{"acme/review"}}, nil
			},
		}

		cli, _, buf := newCLI(t, mock)
		cli.SetArgs([]string{"sync", "--watch"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "Watching manifest")
		assert.Contains(t, buf.String(), "Installed acme/review")
	})
}

func TestCommands_List(t *testing.T) {
	mock := &mockApp{
		listFunc: func() ([]app.ListEntry, error) {
			return []app.ListEntry{
				{Key: "acme/review", Version: "1.0.0", Requirement: "^1.0.0", Direct: true, Installed: true},
				{Key: "core/runtime", Version: "1.5.0", Installed: false},
			}, nil
		},
	}

	cli, _, buf := newCLI(t, mock)
	cli.SetArgs([]string{"list"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "acme/review@1.0.0 (requested: ^1.0.0)")
	assert.Contains(t, buf.String(), "core/runtime@1.5.0 (dependency) [missing on disk]")
}

func TestCommands_List_Empty(t *testing.T) {
	cli, _, buf := newCLI(t, &mockApp{})
	cli.SetArgs([]string{"list"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "No skills installed")
}

func TestCommands_Pack(t *testing.T) {
	dir := t.TempDir()
	mock := &mockApp{
		packFunc: func(root string, opts ports.PackageOptions) (ports.SkillPackage, error) {
			assert.Equal(t, "review", opts.TopLevelDir)
			return ports.SkillPackage{
				Root:      root,
				ZipBytes:  []byte("PK"),
				SHA256:    "deadbeef",
				SizeBytes: 2,
				FileCount: 1,
			}, nil
		},
	}

	cli, _, buf := newCLI(t, mock)
	out := dir + "/review.zip"
	cli.SetArgs([]string{"pack", dir, "--name", "review", "--output", out})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "deadbeef")
	assert.FileExists(t, out)
}

func TestCommands_AuthStatus(t *testing.T) {
	cli, settings, buf := newCLI(t, &mockApp{})
	settings.EXPECT().Load().Return(ports.Settings{RegistryURL: "https://api.skilldock.io", Token: "sk_1234567890abcd"}, nil)
	cli.SetArgs([]string{"auth", "status"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "https://api.skilldock.io")
	assert.NotContains(t, buf.String(), "sk_1234567890abcd")
}

func TestCommands_AuthSetToken(t *testing.T) {
	cli, settings, buf := newCLI(t, &mockApp{})
	settings.EXPECT().Load().Return(ports.Settings{RegistryURL: "https://api.skilldock.io"}, nil)
	settings.EXPECT().Save(ports.Settings{RegistryURL: "https://api.skilldock.io", Token: "sk_secret"}).Return(nil)
	settings.EXPECT().Path().Return("/home/user/.config/skilldock/config.json")
	cli.SetArgs([]string{"auth", "set-token", "sk_secret"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "Token saved")
}

func TestCommands_ConfigSet(t *testing.T) {
	t.Run("registry-url", func(t *testing.T) {
		cli, settings, _ := newCLI(t, &mockApp{})
		settings.EXPECT().Load().Return(ports.Settings{RegistryURL: "https://api.skilldock.io"}, nil)
		settings.EXPECT().Save(ports.Settings{RegistryURL: "https://staging.skilldock.io"}).Return(nil)
		cli.SetArgs([]string{"config", "set", "registry-url", "https://staging.skilldock.io"})

		require.NoError(t, cli.Execute(context.Background()))
	})

	t.Run("unknown key", func(t *testing.T) {
		cli, settings, _ := newCLI(t, &mockApp{})
		settings.EXPECT().Load().Return(ports.Settings{}, nil)
		cli.SetArgs([]string{"config", "set", "color", "on"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown configuration key")
	})
}

func TestCommands_Version(t *testing.T) {
	cli, _, buf := newCLI(t, &mockApp{})
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
}
