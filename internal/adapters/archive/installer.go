// Package archive unpacks downloaded skill archives into the skills
// directory. Extraction is staged: the archive is unpacked into a scratch
// directory inside the skills directory, validated, and renamed into place so
// a failed install never leaves a half-written skill behind.
package archive

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.skilldock.io/skilldock/internal/core/domain"
	"go.skilldock.io/skilldock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArchiveInstaller = (*Installer)(nil)

// Installer implements ports.ArchiveInstaller against a skills directory.
type Installer struct {
	skillsDir string
	now       func() time.Time
}

// New creates an Installer writing into the given skills directory.
func New(skillsDir string) *Installer {
	return &Installer{skillsDir: skillsDir, now: time.Now}
}

// Install unpacks zipBytes for the release. Any existing skill directory is
// kept as a backup until the replacement is fully in place, then discarded.
func (i *Installer) Install(release domain.Release, zipBytes []byte) error {
	reader, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return zerr.Wrap(err, domain.ErrArchiveExtractFailed.Error())
	}
	if err := validateEntries(reader); err != nil {
		return zerr.With(err, "skill", release.Ref.Key())
	}

	stageDir := filepath.Join(i.skillsDir, domain.StagingDirName, stageName(release, i.now().UnixNano()))
	if err := os.MkdirAll(stageDir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrArchiveExtractFailed.Error())
	}
	defer func() { _ = os.RemoveAll(stageDir) }()

	if err := extract(reader, stageDir); err != nil {
		return err
	}

	root, err := contentRoot(stageDir)
	if err != nil {
		return zerr.With(err, "skill", release.Ref.Key())
	}

	dest := filepath.Join(i.skillsDir, release.Ref.Namespace, release.Ref.Slug)
	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrInstallFailed.Error())
	}

	backup := dest + domain.BackupSuffix
	_ = os.RemoveAll(backup)
	hadExisting := false
	if _, err := os.Stat(dest); err == nil {
		if err := os.Rename(dest, backup); err != nil {
			return zerr.Wrap(err, domain.ErrInstallFailed.Error())
		}
		hadExisting = true
	}

	if err := os.Rename(root, dest); err != nil {
		rollback(dest, backup, hadExisting)
		return zerr.Wrap(err, domain.ErrInstallFailed.Error())
	}

	if err := i.writeMeta(dest, release); err != nil {
		rollback(dest, backup, hadExisting)
		return err
	}

	if hadExisting {
		_ = os.RemoveAll(backup)
	}
	return nil
}

// validateEntries rejects archives with absolute entry paths or entries that
// resolve outside the extraction root, before anything touches the disk.
func validateEntries(reader *zip.Reader) error {
	for _, f := range reader.File {
		name := f.Name
		if strings.HasPrefix(name, "/") || strings.HasPrefix(name, "\\") || filepath.IsAbs(name) {
			return zerr.With(domain.ErrArchiveAbsolutePath, "entry", name)
		}
		clean := path.Clean(strings.ReplaceAll(name, "\\", "/"))
		if clean == ".." || strings.HasPrefix(clean, "../") {
			return zerr.With(domain.ErrArchivePathEscapes, "entry", name)
		}
	}
	return nil
}

func extract(reader *zip.Reader, stageDir string) error {
	for _, f := range reader.File {
		clean := path.Clean(strings.ReplaceAll(f.Name, "\\", "/"))
		target := filepath.Join(stageDir, filepath.FromSlash(clean))

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return zerr.Wrap(err, domain.ErrArchiveExtractFailed.Error())
			}
			continue
		}
		// Symlinks are never materialized from an archive.
		if f.Mode()&os.ModeSymlink != 0 {
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
			return zerr.Wrap(err, domain.ErrArchiveExtractFailed.Error())
		}
		if err := extractFile(f, target); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(f *zip.File, target string) error {
	src, err := f.Open()
	if err != nil {
		return zerr.Wrap(err, domain.ErrArchiveExtractFailed.Error())
	}
	defer func() { _ = src.Close() }()

	perm := os.FileMode(domain.FilePerm)
	if f.Mode()&0o111 != 0 {
		perm = os.FileMode(domain.DirPerm)
	}
	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return zerr.Wrap(err, domain.ErrArchiveExtractFailed.Error())
	}

	//nolint:gosec // entry paths were validated against traversal before extraction
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return zerr.Wrap(err, domain.ErrArchiveExtractFailed.Error())
	}
	if err := dst.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrArchiveExtractFailed.Error())
	}
	return nil
}

// contentRoot locates the directory containing the skill marker: either the
// stage root itself, or exactly one wrapping directory created by archivers
// that zip the skill folder instead of its contents.
func contentRoot(stageDir string) (string, error) {
	if markerExists(stageDir) {
		return stageDir, nil
	}

	entries, err := os.ReadDir(stageDir)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrArchiveExtractFailed.Error())
	}
	if len(entries) == 1 && entries[0].IsDir() {
		nested := filepath.Join(stageDir, entries[0].Name())
		if markerExists(nested) {
			return nested, nil
		}
	}
	return "", domain.ErrArchiveMarkerMissing
}

func markerExists(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, domain.MarkerFileName))
	return err == nil && info.Mode().IsRegular()
}

func rollback(dest, backup string, hadExisting bool) {
	_ = os.RemoveAll(dest)
	if hadExisting {
		_ = os.Rename(backup, dest)
	}
}

func (i *Installer) writeMeta(dest string, release domain.Release) error {
	meta := ports.InstalledMeta{
		Namespace:   release.Ref.Namespace,
		Slug:        release.Ref.Slug,
		Version:     release.Version,
		ContentHash: release.ContentHash,
		InstalledAt: i.now().UTC().Format(domain.TimestampLayout),
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrMetaWriteFailed.Error())
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(dest, domain.InstallMetaFileName), data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrMetaWriteFailed.Error())
	}
	return nil
}

// stageName derives a unique staging directory name from the release identity
// and a nonce, keeping staging paths short and filesystem-safe.
func stageName(release domain.Release, nonce int64) string {
	sum := xxhash.Sum64String(fmt.Sprintf("%s@%s:%s", release.Ref.Key(), release.Version, strconv.FormatInt(nonce, 10)))
	return strconv.FormatUint(sum, 16)
}
