package ports

// SkillPackage is the result of zipping a local skill folder.
type SkillPackage struct {
	Root      string
	ZipBytes  []byte
	SHA256    string
	SizeBytes int64
	FileCount int
	Warnings  []string
}

// PackageOptions configures Packager.Package.
type PackageOptions struct {
	// TopLevelDir overrides the archive's top-level folder name.
	// Defaults to the base name of the skill folder.
	TopLevelDir string

	// MaxBytes triggers a warning (not an error) when the archive exceeds it.
	// Zero means the default limit.
	MaxBytes int
}

// Packager builds an uploadable zip archive from a local skill folder.
//
//go:generate mockgen -source=packager.go -destination=mocks/mock_packager.go -package=mocks
type Packager interface {
	// Package verifies the folder (SKILL.md present, front matter valid) and
	// zips it with deterministic file ordering.
	Package(root string, opts PackageOptions) (SkillPackage, error)
}
