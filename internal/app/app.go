// Package app implements the application layer for skilldock.
package app

import (
	"context"
	"fmt"
	"sort"

	"go.skilldock.io/skilldock/internal/adapters/registry"
	"go.skilldock.io/skilldock/internal/core/domain"
	"go.skilldock.io/skilldock/internal/core/ports"
	"go.skilldock.io/skilldock/internal/engine/reconciler"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	repo      ports.ReleaseRepository
	store     ports.StateStore
	installer ports.ArchiveInstaller
	settings  ports.SettingsStore
	packager  ports.Packager
	watcher   ports.Watcher
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	repo ports.ReleaseRepository,
	store ports.StateStore,
	installer ports.ArchiveInstaller,
	settings ports.SettingsStore,
	packager ports.Packager,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		repo:      repo,
		store:     store,
		installer: installer,
		settings:  settings,
		packager:  packager,
		watcher:   watcher,
		logger:    log,
	}
}

// Install adds a skill to the direct requirements and reconciles. The skill
// argument accepts the "namespace/slug@spec" shorthand; the requirement may
// alternatively come in separately, but not both.
func (a *App) Install(ctx context.Context, skillArg, requirement string) (*domain.ReconcileResult, error) {
	key, req, err := domain.SplitInstallArg(skillArg, requirement)
	if err != nil {
		return nil, err
	}
	ref, err := domain.ParseSkillRef(key)
	if err != nil {
		return nil, err
	}

	manifest, err := a.store.LoadManifest()
	if err != nil {
		return nil, err
	}
	manifest.Direct[ref.Key()] = domain.NormalizeRequirement(req)

	return a.reconcile(ctx, manifest.Direct)
}

// Uninstall removes a skill from the direct requirements and reconciles,
// which also prunes dependencies nothing else needs.
func (a *App) Uninstall(ctx context.Context, skillArg string) (*domain.ReconcileResult, error) {
	ref, err := domain.ParseSkillRef(skillArg)
	if err != nil {
		return nil, err
	}

	manifest, err := a.store.LoadManifest()
	if err != nil {
		return nil, err
	}
	if _, ok := manifest.Direct[ref.Key()]; !ok {
		return nil, zerr.With(domain.ErrSkillNotRequested, "skill", ref.Key())
	}
	delete(manifest.Direct, ref.Key())

	return a.reconcile(ctx, manifest.Direct)
}

// Sync reconciles the installed tree against the manifest as it stands.
func (a *App) Sync(ctx context.Context) (*domain.ReconcileResult, error) {
	manifest, err := a.store.LoadManifest()
	if err != nil {
		return nil, err
	}
	return a.reconcile(ctx, manifest.Direct)
}

// SyncWatch runs an initial sync, then re-syncs whenever the manifest file
// changes, until ctx is done. Each pass reports through onPass; a failing
// pass is reported and watching continues.
func (a *App) SyncWatch(ctx context.Context, onPass func(*domain.ReconcileResult, error)) error {
	result, err := a.Sync(ctx)
	onPass(result, err)

	changes := make(chan struct{}, 1)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(changes)
		return a.watcher.Watch(ctx, a.store.ManifestPath(), func() {
			select {
			case changes <- struct{}{}:
			default:
			}
		})
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case _, ok := <-changes:
				if !ok {
					return nil
				}
				result, err := a.Sync(ctx)
				onPass(result, err)
			}
		}
	})

	return g.Wait()
}

// ListEntry is one installed (or locked) skill as shown by `skilldock list`.
type ListEntry struct {
	Key         string
	Version     string
	Requirement string
	Direct      bool
	Installed   bool
}

// List returns the locked skills, newest lock first by key, annotated with
// the direct requirement (if any) and whether the directory is on disk.
func (a *App) List() ([]ListEntry, error) {
	manifest, err := a.store.LoadManifest()
	if err != nil {
		return nil, err
	}
	lock, err := a.store.LoadLock()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(lock.Skills))
	for key := range lock.Skills {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]ListEntry, 0, len(keys))
	for _, key := range keys {
		locked := lock.Skills[key]
		ref := domain.SkillRef{Namespace: locked.Namespace, Slug: locked.Slug}
		if ref.Namespace == "" || ref.Slug == "" {
			if parsed, err := domain.ParseSkillRef(key); err == nil {
				ref = parsed
			}
		}
		req, direct := manifest.Direct[key]
		entries = append(entries, ListEntry{
			Key:         key,
			Version:     locked.Version,
			Requirement: req,
			Direct:      direct,
			Installed:   a.store.SkillInstalled(ref),
		})
	}
	return entries, nil
}

// Pack zips a local skill folder into an uploadable archive.
func (a *App) Pack(root string, opts ports.PackageOptions) (ports.SkillPackage, error) {
	return a.packager.Package(root, opts)
}

// reconcile runs one pass. The repository is memoized per pass so the
// resolver's repeated probing of the same skills hits the network once.
func (a *App) reconcile(ctx context.Context, direct map[string]string) (*domain.ReconcileResult, error) {
	rec := reconciler.New(registry.NewMemo(a.repo), a.store, a.installer, a.logger)
	result, err := rec.Reconcile(ctx, direct)
	if err != nil {
		return nil, zerr.Wrap(err, fmt.Sprintf("failed to reconcile %d direct requirement(s)", len(direct)))
	}
	return result, nil
}
