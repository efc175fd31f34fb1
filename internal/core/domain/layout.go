package domain

const (
	// ManifestFileName is the name of the manifest file recording directly
	// requested skills. It lives next to the skills directory.
	ManifestFileName = ".skilldock.json"

	// LockFileName is the name of the lock file recording the fully resolved
	// dependency graph.
	LockFileName = ".skilldock.lock.json"

	// InstallMetaFileName is the name of the per-skill installed metadata file,
	// stored inside each installed skill directory.
	InstallMetaFileName = ".skilldock-meta.json"

	// MarkerFileName is the file that must exist at the root of every skill
	// package archive.
	MarkerFileName = "SKILL.md"

	// StagingDirName is the name of the staging area inside the skills
	// directory. Keeping it inside the skills directory guarantees that the
	// final rename stays on a single filesystem.
	StagingDirName = ".tmp"

	// BackupSuffix is appended to a skill directory name while a replacement
	// install is in flight.
	BackupSuffix = ".skilldock-backup"

	// DefaultSkillsDir is the skills directory used when none is configured.
	DefaultSkillsDir = "skills"

	// SchemaVersion is the schema version written to the manifest and lock files.
	SchemaVersion = 1

	// TimestampLayout is the UTC timestamp format used in lock files and
	// installed metadata.
	TimestampLayout = "2006-01-02T15:04:05Z"

	// DefaultRegistryURL is the registry endpoint used when none is configured.
	DefaultRegistryURL = "https://api.skilldock.io"

	// ConfigPathEnv overrides the location of the CLI settings file.
	ConfigPathEnv = "SKILLDOCK_CONFIG_PATH"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)
