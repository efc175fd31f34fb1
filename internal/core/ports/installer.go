package ports

import "go.skilldock.io/skilldock/internal/core/domain"

// ArchiveInstaller unpacks a downloaded archive into the skills directory.
// Installs are atomic per skill: staged extraction, backup of any existing
// directory, rename into place, rollback on failure.
//
//go:generate mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type ArchiveInstaller interface {
	// Install unpacks zipBytes for the release into the skills directory and
	// writes the installed metadata file.
	Install(release domain.Release, zipBytes []byte) error
}
