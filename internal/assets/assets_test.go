package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
	require.NoError(t, os.Chmod(path, mode))
}

func TestCopyDir_MirrorsTree(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")

	writeFile(t, filepath.Join(src, "a.txt"), "a", 0o644)
	writeFile(t, filepath.Join(src, "nested", "deep", "b.txt"), "b", 0o600)

	n, err := CopyDir(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(filepath.Join(dst, "nested", "deep", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))

	info, err := os.Stat(filepath.Join(dst, "nested", "deep", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCopyDir_OverwritesExisting(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "style.css"), "new", 0o644)
	writeFile(t, filepath.Join(dst, "style.css"), "old and longer", 0o644)

	_, err := CopyDir(src, dst)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dst, "style.css"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCopyDir_MissingSource(t *testing.T) {
	_, err := CopyDir(filepath.Join(t.TempDir(), "nope"), t.TempDir())
	require.Error(t, err)
}

func TestCopySiteAssets(t *testing.T) {
	input := t.TempDir()
	output := t.TempDir()
	writeFile(t, filepath.Join(input, "images", "logo.png"), "png", 0o644)
	writeFile(t, filepath.Join(input, "style", "style.css"), "body{}", 0o644)
	writeFile(t, filepath.Join(input, "posts", "hello.md"), "# hi", 0o644)

	n, err := CopySiteAssets(input, output)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.FileExists(t, filepath.Join(output, "images", "logo.png"))
	assert.FileExists(t, filepath.Join(output, "style", "style.css"))
	assert.NoDirExists(t, filepath.Join(output, "posts"))
}

func TestCopySiteAssets_MissingDirsSkipped(t *testing.T) {
	input := t.TempDir()
	output := t.TempDir()
	writeFile(t, filepath.Join(input, "style", "style.css"), "body{}", 0o644)

	n, err := CopySiteAssets(input, output)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NoDirExists(t, filepath.Join(output, "images"))
}
