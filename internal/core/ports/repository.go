// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.skilldock.io/skilldock/internal/core/domain"
)

// ReleaseRepository supplies candidate releases and archive bytes for a skill.
// Implementations own timeouts and retries; callers treat every method as
// blocking. Failures are structured: a missing skill surfaces as
// *domain.NotFoundError and a release without a retrievable archive as
// *domain.NoLocatorError.
//
//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type ReleaseRepository interface {
	// ListReleases returns every known release of the skill, newest first.
	ListReleases(ctx context.Context, ref domain.SkillRef) ([]domain.Release, error)

	// GetRelease fetches one release by exact version. A missing version
	// returns found=false with a nil error.
	GetRelease(ctx context.Context, ref domain.SkillRef, version string) (domain.Release, bool, error)

	// DownloadArchive fetches the zip archive bytes for a release.
	DownloadArchive(ctx context.Context, release domain.Release) ([]byte, error)
}
