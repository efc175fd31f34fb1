package packager_test

import (
	"archive/zip"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skilldock.io/skilldock/internal/adapters/packager"
	"go.skilldock.io/skilldock/internal/core/domain"
	"go.skilldock.io/skilldock/internal/core/ports"
)

func writeSkill(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
		require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	}
	return root
}

func zipNames(t *testing.T, data []byte) []string {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names
}

func TestPackage_Basic(t *testing.T) {
	root := writeSkill(t, map[string]string{
		"SKILL.md":       "# Review helper",
		"scripts/run.sh": "echo",
		"reference.md":   "ref",
	})

	pkg, err := packager.New().Package(root, ports.PackageOptions{TopLevelDir: "review-helper"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"review-helper/reference.md",
		"review-helper/scripts/run.sh",
		"review-helper/SKILL.md",
	}, zipNames(t, pkg.ZipBytes))
	assert.Equal(t, 3, pkg.FileCount)
	assert.Equal(t, int64(len(pkg.ZipBytes)), pkg.SizeBytes)
	assert.Empty(t, pkg.Warnings)

	sum := sha256.Sum256(pkg.ZipBytes)
	assert.Equal(t, hex.EncodeToString(sum[:]), pkg.SHA256)
}

func TestPackage_ExcludesJunk(t *testing.T) {
	root := writeSkill(t, map[string]string{
		"SKILL.md":               "x",
		".git/HEAD":              "ref",
		"__pycache__/a.pyc":      "bin",
		"node_modules/pkg/a.js":  "js",
		".DS_Store":              "junk",
		"scripts/helper.py":      "py",
		"build/out.bin":          "bin",
		"docs/.vscode/settings":  "cfg",
		"docs/usage.md":          "docs",
	})

	pkg, err := packager.New().Package(root, ports.PackageOptions{TopLevelDir: "skill"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"skill/docs/usage.md",
		"skill/scripts/helper.py",
		"skill/SKILL.md",
	}, zipNames(t, pkg.ZipBytes))
}

func TestPackage_MarkerMissing(t *testing.T) {
	root := writeSkill(t, map[string]string{"readme.md": "x"})

	_, err := packager.New().Package(root, ports.PackageOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPackageMarkerMissing)
}

func TestPackage_RootMissing(t *testing.T) {
	_, err := packager.New().Package(filepath.Join(t.TempDir(), "nope"), ports.PackageOptions{})
	assert.ErrorIs(t, err, domain.ErrPackageRootInvalid)
}

func TestPackage_TopLevelFromFrontMatter(t *testing.T) {
	root := writeSkill(t, map[string]string{
		"SKILL.md": "---\nname: code-review\nversion: 1.2.0\n---\n# Code review",
	})

	pkg, err := packager.New().Package(root, ports.PackageOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"code-review/SKILL.md"}, zipNames(t, pkg.ZipBytes))
}

func TestPackage_TopLevelFallsBackToFolderName(t *testing.T) {
	root := writeSkill(t, map[string]string{"SKILL.md": "no front matter"})

	pkg, err := packager.New().Package(root, ports.PackageOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Base(root) + "/SKILL.md"}, zipNames(t, pkg.ZipBytes))
}

func TestPackage_InvalidTopLevelName(t *testing.T) {
	root := writeSkill(t, map[string]string{"SKILL.md": "x"})

	for _, name := range []string{"a/b", `a\b`, "..", "."} {
		_, err := packager.New().Package(root, ports.PackageOptions{TopLevelDir: name})
		assert.ErrorIs(t, err, domain.ErrPackageTopLevelName, "name %q", name)
	}
}

func TestPackage_InvalidFrontMatter(t *testing.T) {
	root := writeSkill(t, map[string]string{
		"SKILL.md": "---\nname: [unclosed\n---\nbody",
	})

	_, err := packager.New().Package(root, ports.PackageOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrFrontMatterInvalid.Error())
}

func TestPackage_UnterminatedFrontMatter(t *testing.T) {
	root := writeSkill(t, map[string]string{
		"SKILL.md": "---\nname: x\nno terminator",
	})

	_, err := packager.New().Package(root, ports.PackageOptions{})
	assert.ErrorIs(t, err, domain.ErrFrontMatterInvalid)
}

func TestPackage_SizeWarning(t *testing.T) {
	root := writeSkill(t, map[string]string{
		"SKILL.md": "x",
		"big.txt":  string(make([]byte, 4096)),
	})

	pkg, err := packager.New().Package(root, ports.PackageOptions{TopLevelDir: "skill", MaxBytes: 128})
	require.NoError(t, err)
	require.Len(t, pkg.Warnings, 1)
	assert.Contains(t, pkg.Warnings[0], "larger than")
}
