// Package packager builds distributable zip archives from local skill
// folders, the inverse of the archive installer.
package packager

import (
	"archive/zip"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.skilldock.io/skilldock/internal/core/domain"
	"go.skilldock.io/skilldock/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.Packager = (*Packager)(nil)

// DefaultMaxBytes is the archive size above which Package warns.
const DefaultMaxBytes = 10 << 20

// excludedNames are never packaged, wherever they appear in the tree.
var excludedNames = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	".DS_Store":    true,
	"__pycache__":  true,
	"node_modules": true,
	"dist":         true,
	"build":        true,
	".idea":        true,
	".vscode":      true,
}

// FrontMatter is the YAML block optionally heading SKILL.md.
type FrontMatter struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// Packager implements ports.Packager.
type Packager struct{}

// New creates a Packager.
func New() *Packager {
	return &Packager{}
}

// Package zips the skill folder under a single top-level directory. The
// directory name comes from the options, else the SKILL.md front matter name,
// else the folder's base name.
func (p *Packager) Package(root string, opts ports.PackageOptions) (ports.SkillPackage, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return ports.SkillPackage{}, zerr.With(domain.ErrPackageRootInvalid, "path", root)
	}

	markerPath := filepath.Join(root, domain.MarkerFileName)
	if _, err := os.Stat(markerPath); err != nil {
		return ports.SkillPackage{}, zerr.With(domain.ErrPackageMarkerMissing, "path", root)
	}

	fm, err := parseFrontMatter(markerPath)
	if err != nil {
		return ports.SkillPackage{}, err
	}

	topLevel := strings.TrimSpace(opts.TopLevelDir)
	if topLevel == "" {
		topLevel = strings.TrimSpace(fm.Name)
	}
	if topLevel == "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return ports.SkillPackage{}, zerr.With(domain.ErrPackageRootInvalid, "path", root)
		}
		topLevel = filepath.Base(abs)
	}
	if topLevel == "" || topLevel == "." || topLevel == ".." || strings.ContainsAny(topLevel, `/\`) {
		return ports.SkillPackage{}, zerr.With(domain.ErrPackageTopLevelName, "name", topLevel)
	}

	files, err := collectFiles(root)
	if err != nil {
		return ports.SkillPackage{}, err
	}

	buf := &bytes.Buffer{}
	w := zip.NewWriter(buf)
	for _, rel := range files {
		if err := addFile(w, root, rel, topLevel); err != nil {
			_ = w.Close()
			return ports.SkillPackage{}, err
		}
	}
	if err := w.Close(); err != nil {
		return ports.SkillPackage{}, zerr.Wrap(err, domain.ErrPackageRootInvalid.Error())
	}

	data := buf.Bytes()
	sum := sha256.Sum256(data)

	pkg := ports.SkillPackage{
		Root:      root,
		ZipBytes:  data,
		SHA256:    hex.EncodeToString(sum[:]),
		SizeBytes: int64(len(data)),
		FileCount: len(files),
	}

	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if pkg.SizeBytes > int64(maxBytes) {
		pkg.Warnings = append(pkg.Warnings,
			fmt.Sprintf("archive is %d bytes, larger than the recommended maximum of %d bytes", pkg.SizeBytes, maxBytes))
	}
	return pkg, nil
}

// collectFiles walks the skill folder and returns packageable files as
// slash-separated relative paths, sorted case-insensitively.
func collectFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if excludedNames[d.Name()] {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPackageRootInvalid.Error())
	}

	sort.Slice(files, func(i, j int) bool {
		a, b := strings.ToLower(files[i]), strings.ToLower(files[j])
		if a != b {
			return a < b
		}
		return files[i] < files[j]
	})
	return files, nil
}

func addFile(w *zip.Writer, root, rel, topLevel string) error {
	src, err := os.Open(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return zerr.Wrap(err, domain.ErrPackageRootInvalid.Error())
	}
	defer func() { _ = src.Close() }()

	dst, err := w.CreateHeader(&zip.FileHeader{
		Name:   topLevel + "/" + rel,
		Method: zip.Deflate,
	})
	if err != nil {
		return zerr.Wrap(err, domain.ErrPackageRootInvalid.Error())
	}
	if _, err := io.Copy(dst, src); err != nil {
		return zerr.Wrap(err, domain.ErrPackageRootInvalid.Error())
	}
	return nil
}

// parseFrontMatter reads the optional YAML block heading SKILL.md. A marker
// without front matter is fine; a malformed block is not.
func parseFrontMatter(markerPath string) (FrontMatter, error) {
	data, err := os.ReadFile(markerPath)
	if err != nil {
		return FrontMatter{}, zerr.With(domain.ErrPackageMarkerMissing, "path", markerPath)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(text, "---\n") {
		return FrontMatter{}, nil
	}
	rest := text[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return FrontMatter{}, zerr.With(domain.ErrFrontMatterInvalid, "path", markerPath)
	}

	var fm FrontMatter
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return FrontMatter{}, zerr.Wrap(err, domain.ErrFrontMatterInvalid.Error())
	}
	return fm, nil
}
