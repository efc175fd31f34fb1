package registry

import (
	"context"
	"slices"
	"sync"

	"go.skilldock.io/skilldock/internal/core/domain"
	"go.skilldock.io/skilldock/internal/core/ports"
)

var _ ports.ReleaseRepository = (*Memo)(nil)

// Memo caches repository lookups. Its lifetime is one reconcile pass: the
// resolver probes the same skills repeatedly while backtracking, and within a
// single pass the registry is treated as immutable. Never share a Memo across
// passes.
type Memo struct {
	inner ports.ReleaseRepository

	mu    sync.Mutex
	lists map[string]listOutcome
	gets  map[string]getOutcome
}

type listOutcome struct {
	releases []domain.Release
	err      error
}

type getOutcome struct {
	release domain.Release
	found   bool
	err     error
}

// NewMemo wraps a repository with per-pass caching.
func NewMemo(inner ports.ReleaseRepository) *Memo {
	return &Memo{
		inner: inner,
		lists: map[string]listOutcome{},
		gets:  map[string]getOutcome{},
	}
}

// ListReleases returns a copy of the cached list so callers may reorder it.
func (m *Memo) ListReleases(ctx context.Context, ref domain.SkillRef) ([]domain.Release, error) {
	key := ref.Key()

	m.mu.Lock()
	outcome, ok := m.lists[key]
	m.mu.Unlock()

	if !ok {
		releases, err := m.inner.ListReleases(ctx, ref)
		outcome = listOutcome{releases: releases, err: err}
		m.mu.Lock()
		m.lists[key] = outcome
		m.mu.Unlock()
	}
	if outcome.err != nil {
		return nil, outcome.err
	}
	return slices.Clone(outcome.releases), nil
}

// GetRelease caches point lookups, including the not-found outcome.
func (m *Memo) GetRelease(ctx context.Context, ref domain.SkillRef, version string) (domain.Release, bool, error) {
	key := ref.Key() + "@" + version

	m.mu.Lock()
	outcome, ok := m.gets[key]
	m.mu.Unlock()

	if !ok {
		release, found, err := m.inner.GetRelease(ctx, ref, version)
		outcome = getOutcome{release: release, found: found, err: err}
		m.mu.Lock()
		m.gets[key] = outcome
		m.mu.Unlock()
	}
	return outcome.release, outcome.found, outcome.err
}

// DownloadArchive is never cached; archives are fetched once per install.
func (m *Memo) DownloadArchive(ctx context.Context, release domain.Release) ([]byte, error) {
	return m.inner.DownloadArchive(ctx, release)
}
