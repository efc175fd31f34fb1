package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidSkillRef is returned when a skill identifier is not of the form <namespace>/<slug>.
	ErrInvalidSkillRef = zerr.New("invalid skill identifier, expected <namespace>/<slug>")

	// ErrAmbiguousVersionArg is returned when a version is given both as @<version> and as a flag.
	ErrAmbiguousVersionArg = zerr.New("specify version either as @<version> or --version, not both")

	// ErrInvalidRequirement is returned when a caret or tilde requirement has a malformed base version.
	ErrInvalidRequirement = zerr.New("invalid version requirement")

	// ErrUnresolvable is returned when the resolver exhausts the search space without a solution.
	ErrUnresolvable = zerr.New("could not resolve dependency graph")

	// ErrSkillsDirCreateFailed is returned when the skills directory cannot be created.
	ErrSkillsDirCreateFailed = zerr.New("could not create skills directory")

	// ErrSkillsDirNotDirectory is returned when the skills path exists but is not a directory.
	ErrSkillsDirNotDirectory = zerr.New("skills path is not a directory")

	// ErrManifestReadFailed is returned when the manifest file cannot be read or decoded.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestWriteFailed is returned when the manifest file cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrLockReadFailed is returned when the lock file cannot be read or decoded.
	ErrLockReadFailed = zerr.New("failed to read lock file")

	// ErrLockWriteFailed is returned when the lock file cannot be written.
	ErrLockWriteFailed = zerr.New("failed to write lock file")

	// ErrMetaWriteFailed is returned when the installed metadata file cannot be written.
	ErrMetaWriteFailed = zerr.New("failed to write installed metadata")

	// ErrArchiveAbsolutePath is returned when an archive entry names an absolute path.
	ErrArchiveAbsolutePath = zerr.New("archive contains an absolute path entry")

	// ErrArchivePathEscapes is returned when an archive entry resolves outside the extraction root.
	ErrArchivePathEscapes = zerr.New("archive contains an invalid path entry")

	// ErrArchiveMarkerMissing is returned when an archive does not contain SKILL.md at its root.
	ErrArchiveMarkerMissing = zerr.New("archive does not contain SKILL.md at root")

	// ErrArchiveExtractFailed is returned when the archive cannot be opened or unpacked.
	ErrArchiveExtractFailed = zerr.New("failed to extract archive")

	// ErrInstallFailed is returned when moving a staged skill into place fails.
	ErrInstallFailed = zerr.New("failed to install skill")

	// ErrRemoveFailed is returned when an installed skill directory cannot be removed.
	ErrRemoveFailed = zerr.New("failed to remove skill")

	// ErrChecksumMismatch is returned when a downloaded archive does not match the
	// content hash advertised by the catalog.
	ErrChecksumMismatch = zerr.New("downloaded archive does not match expected checksum")

	// ErrRegistryRequestFailed is returned when a catalog HTTP request fails.
	ErrRegistryRequestFailed = zerr.New("registry request failed")

	// ErrRegistryDecodeFailed is returned when a catalog response cannot be decoded.
	ErrRegistryDecodeFailed = zerr.New("failed to decode registry response")

	// ErrRegistryAPIError is returned when the catalog reports success=false.
	ErrRegistryAPIError = zerr.New("registry reported an error")

	// ErrConfigReadFailed is returned when the CLI config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigWriteFailed is returned when the CLI config file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrPackageRootInvalid is returned when the folder passed to pack does not exist or is not a directory.
	ErrPackageRootInvalid = zerr.New("skill folder does not exist or is not a directory")

	// ErrPackageMarkerMissing is returned when a local skill folder has no SKILL.md.
	ErrPackageMarkerMissing = zerr.New("skill folder is missing SKILL.md")

	// ErrPackageTopLevelName is returned when the archive top-level folder name is empty or contains separators.
	ErrPackageTopLevelName = zerr.New("top-level archive folder name must be a single folder name")

	// ErrFrontMatterInvalid is returned when SKILL.md front matter cannot be parsed.
	ErrFrontMatterInvalid = zerr.New("invalid SKILL.md front matter")

	// ErrSkillNotRequested is returned when uninstalling a skill that is not a direct requirement.
	ErrSkillNotRequested = zerr.New("skill is not a direct requirement")
)

// NotFoundError reports that a skill (or any release of it) is absent or not
// visible to the caller. It carries the offending key so callers can decide
// structurally whether the failure is attributable to a direct requirement.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("skill not found or not visible: %s", e.Key)
}

// ConflictError reports that two requirements pin different exact versions for
// the same key. It is fatal: the resolver never backtracks around it and the
// reconciler never drops its way past it.
type ConflictError struct {
	Key         string
	Versions    []string
	Constraints []Requirement
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"dependency conflict for %s: multiple exact versions requested (%s); constraints: %s",
		e.Key, strings.Join(e.Versions, ", "), FormatRequirements(e.Constraints),
	)
}

// NoCandidateError reports that no release of a skill satisfies the
// accumulated constraints.
type NoCandidateError struct {
	Key         string
	Constraints []Requirement
}

func (e *NoCandidateError) Error() string {
	return fmt.Sprintf(
		"no release found for %s that satisfies constraints: %s",
		e.Key, FormatRequirements(e.Constraints),
	)
}

// NoDownloadableError reports that releases matched the constraints but none
// of them provided a download locator, even after per-version hydration.
type NoDownloadableError struct {
	Key         string
	Versions    []string
	Constraints []Requirement
}

func (e *NoDownloadableError) Error() string {
	return fmt.Sprintf(
		"no downloadable release found for %s that satisfies constraints: %s; "+
			"list payload had no download locator, per-version lookup for %s provided none either",
		e.Key, FormatRequirements(e.Constraints), strings.Join(e.Versions, ", "),
	)
}

// NoLocatorError reports that one specific release has no retrievable archive.
type NoLocatorError struct {
	Key     string
	Version string
}

func (e *NoLocatorError) Error() string {
	return fmt.Sprintf("release %s@%s has no download locator", e.Key, e.Version)
}
