// Package state persists the manifest, the lock file and per-skill installed
// metadata on the local filesystem.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.skilldock.io/skilldock/internal/core/domain"
	"go.skilldock.io/skilldock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StateStore = (*Store)(nil)

// Store implements ports.StateStore rooted at a workspace directory. The
// manifest and lock file live at the root; skills live under the skills
// directory named by the manifest.
type Store struct {
	root string
	now  func() time.Time
}

// New creates a Store rooted at the given workspace directory.
func New(root string) *Store {
	return &Store{root: root, now: time.Now}
}

// NewWithClock is like New but uses the supplied clock for generated
// timestamps. Tests use it for deterministic lock files.
func NewWithClock(root string, now func() time.Time) *Store {
	return &Store{root: root, now: now}
}

// ManifestPath returns the absolute path of the manifest file.
func (s *Store) ManifestPath() string {
	return filepath.Join(s.root, domain.ManifestFileName)
}

// LockPath returns the absolute path of the lock file.
func (s *Store) LockPath() string {
	return filepath.Join(s.root, domain.LockFileName)
}

// SkillsDir returns the absolute path of the skills directory named by the
// manifest, falling back to the default when no manifest exists.
func (s *Store) SkillsDir() string {
	m, _ := s.LoadManifest()
	return filepath.Join(s.root, m.SkillsDir)
}

// LoadManifest reads the manifest. A missing or malformed file yields the
// default manifest with an empty direct map, never an error.
func (s *Store) LoadManifest() (ports.Manifest, error) {
	m := ports.Manifest{
		SchemaVersion: domain.SchemaVersion,
		SkillsDir:     domain.DefaultSkillsDir,
		Direct:        map[string]string{},
	}

	data, err := os.ReadFile(s.ManifestPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m, nil
		}
		return m, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}

	var onDisk ports.Manifest
	if err := json.Unmarshal(data, &onDisk); err != nil {
		return m, nil
	}
	if onDisk.SchemaVersion != 0 {
		m.SchemaVersion = onDisk.SchemaVersion
	}
	if onDisk.SkillsDir != "" {
		m.SkillsDir = onDisk.SkillsDir
	}
	if onDisk.Direct != nil {
		m.Direct = onDisk.Direct
	}
	return m, nil
}

// SaveManifest writes the direct requirement map, preserving the configured
// skills directory. The write replaces the manifest atomically.
func (s *Store) SaveManifest(direct map[string]string) error {
	current, err := s.LoadManifest()
	if err != nil {
		return err
	}
	current.SchemaVersion = domain.SchemaVersion
	current.Direct = direct
	if current.Direct == nil {
		current.Direct = map[string]string{}
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	if err := atomicWrite(s.ManifestPath(), append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	return nil
}

// LoadLock reads the lock file. A missing or malformed file yields an empty
// lock, never an error.
func (s *Store) LoadLock() (ports.Lock, error) {
	l := ports.Lock{
		SchemaVersion: domain.SchemaVersion,
		Skills:        map[string]ports.LockedSkill{},
	}

	data, err := os.ReadFile(s.LockPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return l, nil
		}
		return l, zerr.Wrap(err, domain.ErrLockReadFailed.Error())
	}

	var onDisk ports.Lock
	if err := json.Unmarshal(data, &onDisk); err != nil {
		return l, nil
	}
	if onDisk.SchemaVersion != 0 {
		l.SchemaVersion = onDisk.SchemaVersion
	}
	l.GeneratedAt = onDisk.GeneratedAt
	if onDisk.Skills != nil {
		l.Skills = onDisk.Skills
	}
	return l, nil
}

// SaveLock writes the resolved graph with a fresh generation timestamp. The
// write replaces the lock file atomically.
func (s *Store) SaveLock(resolved map[string]domain.Release) error {
	skills := make(map[string]ports.LockedSkill, len(resolved))
	for key, rel := range resolved {
		deps := make([]ports.LockDependency, 0, len(rel.Dependencies))
		for _, d := range rel.Dependencies {
			deps = append(deps, ports.LockDependency{
				Namespace:          d.Ref.Namespace,
				Slug:               d.Ref.Slug,
				VersionRequirement: d.VersionRequirement,
				ReleaseVersion:     d.ReleaseVersion,
			})
		}
		skills[key] = ports.LockedSkill{
			Namespace:       rel.Ref.Namespace,
			Slug:            rel.Ref.Slug,
			Version:         rel.Version,
			Dependencies:    deps,
			ContentHash:     rel.ContentHash,
			DownloadLocator: rel.DownloadLocator,
		}
	}

	lock := ports.Lock{
		SchemaVersion: domain.SchemaVersion,
		GeneratedAt:   s.now().UTC().Format(domain.TimestampLayout),
		Skills:        skills,
	}

	data, err := json.MarshalIndent(lock, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrLockWriteFailed.Error())
	}
	if err := atomicWrite(s.LockPath(), append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrLockWriteFailed.Error())
	}
	return nil
}

// ReadInstalledMeta reads the metadata file of an installed skill. Any read
// or decode failure reports found=false.
func (s *Store) ReadInstalledMeta(ref domain.SkillRef) (ports.InstalledMeta, bool) {
	data, err := os.ReadFile(filepath.Join(s.skillDir(ref), domain.InstallMetaFileName))
	if err != nil {
		return ports.InstalledMeta{}, false
	}
	var meta ports.InstalledMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return ports.InstalledMeta{}, false
	}
	return meta, true
}

// SkillInstalled reports whether the skill's directory exists.
func (s *Store) SkillInstalled(ref domain.SkillRef) bool {
	info, err := os.Stat(s.skillDir(ref))
	return err == nil && info.IsDir()
}

// RemoveSkill deletes the skill directory, then prunes the namespace
// directory when it is left empty.
func (s *Store) RemoveSkill(ref domain.SkillRef) error {
	dir := s.skillDir(ref)
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRemoveFailed.Error()), "skill", ref.Key())
	}

	nsDir := filepath.Dir(dir)
	if entries, err := os.ReadDir(nsDir); err == nil && len(entries) == 0 {
		_ = os.Remove(nsDir)
	}
	return nil
}

// EnsureSkillsDir creates the skills directory if needed.
func (s *Store) EnsureSkillsDir() error {
	dir := s.SkillsDir()
	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return zerr.With(domain.ErrSkillsDirNotDirectory, "path", dir)
		}
		return nil
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrSkillsDirCreateFailed.Error())
	}
	return nil
}

func (s *Store) skillDir(ref domain.SkillRef) string {
	return filepath.Join(s.SkillsDir(), ref.Namespace, ref.Slug)
}

// atomicWrite writes data to a temporary file in the target directory and
// renames it over the destination.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
