package ports

import "go.skilldock.io/skilldock/internal/core/domain"

// Manifest is the persisted record of directly requested skills.
type Manifest struct {
	SchemaVersion int               `json:"schema_version"`
	SkillsDir     string            `json:"skills_dir"`
	Direct        map[string]string `json:"direct"`
}

// LockedSkill is one resolved entry of the lock file.
type LockedSkill struct {
	Namespace       string           `json:"namespace"`
	Slug            string           `json:"slug"`
	Version         string           `json:"version"`
	Dependencies    []LockDependency `json:"dependencies"`
	ContentHash     string           `json:"content_hash,omitempty"`
	DownloadLocator string           `json:"download_locator,omitempty"`
}

// LockDependency is one dependency edge of a locked skill.
type LockDependency struct {
	Namespace          string `json:"namespace"`
	Slug               string `json:"slug"`
	VersionRequirement string `json:"version_requirement,omitempty"`
	ReleaseVersion     string `json:"release_version,omitempty"`
}

// Lock is the persisted snapshot of the fully resolved dependency graph.
type Lock struct {
	SchemaVersion int                    `json:"schema_version"`
	GeneratedAt   string                 `json:"generated_at"`
	Skills        map[string]LockedSkill `json:"skills"`
}

// InstalledMeta is the metadata file written into each installed skill directory.
type InstalledMeta struct {
	Namespace   string `json:"namespace"`
	Slug        string `json:"slug"`
	Version     string `json:"version"`
	ContentHash string `json:"content_hash,omitempty"`
	InstalledAt string `json:"installed_at"`
}

// StateStore persists the manifest, the lock file and per-skill installed
// metadata. Writes replace the target file atomically; the manifest and lock
// are two independent writes, not one transaction.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StateStore interface {
	// LoadManifest reads the manifest, returning an empty direct map when the
	// file does not exist or is malformed.
	LoadManifest() (Manifest, error)

	// SaveManifest writes the manifest with sorted keys.
	SaveManifest(direct map[string]string) error

	// LoadLock reads the lock file, returning an empty skills map when the
	// file does not exist or is malformed.
	LoadLock() (Lock, error)

	// SaveLock writes the full resolved graph.
	SaveLock(resolved map[string]domain.Release) error

	// ReadInstalledMeta reads the metadata of an installed skill.
	// Returns found=false when the skill directory or its metadata is absent
	// or unreadable.
	ReadInstalledMeta(ref domain.SkillRef) (InstalledMeta, bool)

	// SkillInstalled reports whether the skill's directory exists on disk.
	SkillInstalled(ref domain.SkillRef) bool

	// RemoveSkill deletes the skill directory and prunes its namespace
	// directory when empty.
	RemoveSkill(ref domain.SkillRef) error

	// EnsureSkillsDir creates the skills directory if needed.
	EnsureSkillsDir() error

	// SkillsDir returns the absolute path of the skills directory.
	SkillsDir() string

	// ManifestPath returns the absolute path of the manifest file.
	ManifestPath() string

	// LockPath returns the absolute path of the lock file.
	LockPath() string
}
