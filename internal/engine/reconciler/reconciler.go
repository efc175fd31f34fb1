// Package reconciler drives a full reconcile pass: resolve the direct
// requirements into a graph, install or update what the graph selects, remove
// what it no longer contains, and persist the manifest and lock.
//
// The pass tolerates partial failure: a direct requirement whose skill has
// become unavailable is dropped with a warning instead of failing the whole
// pass. A dependency conflict is never dropped; it always fails the pass.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"go.skilldock.io/skilldock/internal/core/domain"
	"go.skilldock.io/skilldock/internal/core/ports"
	"go.skilldock.io/skilldock/internal/engine/resolver"
)

// Reconciler reconciles the local skill tree against a direct requirement
// map. Hand it a repository memoized for the pass; the resolver probes the
// same skills repeatedly while backtracking.
type Reconciler struct {
	repo      ports.ReleaseRepository
	store     ports.StateStore
	installer ports.ArchiveInstaller
	logger    ports.Logger
	resolver  *resolver.Resolver
}

// New creates a Reconciler over the given ports.
func New(
	repo ports.ReleaseRepository,
	store ports.StateStore,
	installer ports.ArchiveInstaller,
	logger ports.Logger,
) *Reconciler {
	return &Reconciler{
		repo:      repo,
		store:     store,
		installer: installer,
		logger:    logger,
		resolver:  resolver.New(repo),
	}
}

// Reconcile brings the skill tree in line with the direct requirement map and
// returns what it did. The input map is not mutated; dropped requirements are
// reflected in the persisted manifest and the result's warnings.
func (r *Reconciler) Reconcile(ctx context.Context, direct map[string]string) (*domain.ReconcileResult, error) {
	if err := r.store.EnsureSkillsDir(); err != nil {
		return nil, err
	}

	effective := maps.Clone(direct)
	if effective == nil {
		effective = map[string]string{}
	}
	var warnings []string

	solution, err := r.resolveWithFallback(ctx, effective, &warnings)
	if err != nil {
		return nil, err
	}

	priorLock, err := r.store.LoadLock()
	if err != nil {
		return nil, err
	}

	result := &domain.ReconcileResult{
		ManifestPath: r.store.ManifestPath(),
		LockPath:     r.store.LockPath(),
	}

	resolved := solution.Selected
	for _, key := range sortedKeys(resolved) {
		rel := resolved[key]

		currentVersion := ""
		if meta, ok := r.store.ReadInstalledMeta(rel.Ref); ok {
			currentVersion = meta.Version
		} else if entry, ok := priorLock.Skills[key]; ok {
			currentVersion = entry.Version
		}
		dirExists := r.store.SkillInstalled(rel.Ref)

		if dirExists && currentVersion != "" && domain.CompareVersions(currentVersion, rel.Version) == 0 {
			result.Unchanged = append(result.Unchanged, key)
			continue
		}

		zipBytes, err := r.repo.DownloadArchive(ctx, rel)
		if err != nil {
			var noLocator *domain.NoLocatorError
			if errors.As(err, &noLocator) {
				// Skip this key only: it stays in the resolved graph, so it
				// is still locked and an installed copy is never pruned.
				warnings = append(warnings,
					fmt.Sprintf("Skipping release without download URL: %s@%s", key, rel.Version))
				continue
			}
			return nil, err
		}

		if err := r.installer.Install(rel, zipBytes); err != nil {
			return nil, err
		}

		if dirExists || currentVersion != "" {
			result.Updated = append(result.Updated, key)
			r.logger.Info(fmt.Sprintf("Updated %s to %s", key, rel.Version))
		} else {
			result.Installed = append(result.Installed, key)
			r.logger.Info(fmt.Sprintf("Installed %s@%s", key, rel.Version))
		}
	}

	for _, key := range sortedKeys(priorLock.Skills) {
		if _, keep := resolved[key]; keep {
			continue
		}
		entry := priorLock.Skills[key]
		ref, err := lockedRef(key, entry)
		if err != nil {
			continue
		}
		if err := r.store.RemoveSkill(ref); err != nil {
			return nil, err
		}
		result.Removed = append(result.Removed, key)
		r.logger.Info(fmt.Sprintf("Removed %s", key))
	}

	if err := r.store.SaveManifest(effective); err != nil {
		return nil, err
	}
	if err := r.store.SaveLock(resolved); err != nil {
		return nil, err
	}

	for _, w := range warnings {
		r.logger.Warn(w)
	}
	result.Warnings = warnings
	return result, nil
}

// resolveWithFallback resolves the effective requirement map, dropping direct
// requirements whose skills turn out to be unavailable and retrying until the
// resolution succeeds or nothing attributable is left to drop.
func (r *Reconciler) resolveWithFallback(
	ctx context.Context,
	effective map[string]string,
	warnings *[]string,
) (*resolver.Solution, error) {
	for {
		solution, err := r.resolver.Resolve(ctx, effective)
		if err == nil {
			return solution, nil
		}

		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			return nil, err
		}
		dropped, dropErr := r.dropUnavailable(ctx, effective, err, warnings)
		if dropErr != nil {
			return nil, dropErr
		}
		if !dropped {
			return nil, err
		}
	}
}

// dropUnavailable removes direct requirements the failure is attributable to.
// When the failure names a direct key, that key alone is dropped; otherwise
// every direct requirement is probed in isolation and the ones that cannot
// resolve on their own are dropped together. A probe failure that is not an
// unavailability error is returned immediately instead of being retried.
func (r *Reconciler) dropUnavailable(
	ctx context.Context,
	effective map[string]string,
	cause error,
	warnings *[]string,
) (bool, error) {
	if key, msg, ok := unavailability(cause); ok {
		if _, present := effective[key]; present {
			delete(effective, key)
			*warnings = append(*warnings, fmt.Sprintf("Skipping unavailable skill %s: %s", key, msg))
			return true, nil
		}
	}

	type drop struct{ key, msg string }
	var drops []drop
	for _, key := range sortedKeys(effective) {
		_, err := r.resolver.Resolve(ctx, map[string]string{key: effective[key]})
		if err == nil {
			continue
		}
		if _, msg, ok := unavailability(err); ok {
			drops = append(drops, drop{key: key, msg: msg})
			continue
		}
		return false, err
	}
	if len(drops) == 0 {
		return false, nil
	}
	for _, d := range drops {
		delete(effective, d.key)
		*warnings = append(*warnings, fmt.Sprintf("Skipping unavailable skill %s: %s", d.key, d.msg))
	}
	return true, nil
}

// unavailability reports whether err is one of the release-unavailable
// failures, and which key and message it carries.
func unavailability(err error) (string, string, bool) {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		return notFound.Key, notFound.Error(), true
	}
	var noCandidate *domain.NoCandidateError
	if errors.As(err, &noCandidate) {
		return noCandidate.Key, noCandidate.Error(), true
	}
	var noDownloadable *domain.NoDownloadableError
	if errors.As(err, &noDownloadable) {
		return noDownloadable.Key, noDownloadable.Error(), true
	}
	var noLocator *domain.NoLocatorError
	if errors.As(err, &noLocator) {
		return noLocator.Key, noLocator.Error(), true
	}
	return "", "", false
}

func lockedRef(key string, entry ports.LockedSkill) (domain.SkillRef, error) {
	if entry.Namespace != "" && entry.Slug != "" {
		return domain.SkillRef{Namespace: entry.Namespace, Slug: entry.Slug}, nil
	}
	return domain.ParseSkillRef(key)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := slices.Collect(maps.Keys(m))
	slices.Sort(keys)
	return keys
}
