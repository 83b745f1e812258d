package bundler

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "index.html", want: "index.html"},
		{in: filepath.Join("icons", "icon-192.png"), want: "icons/icon-192.png"},
		{in: "./sw.js", want: "sw.js"},
		{in: "/abs/x", want: "abs/x"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, entryName(tc.in), tc.in)
	}
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for p, body := range files {
		full := filepath.Join(dir, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(body), 0o644))
	}
	return dir
}

func TestWriteToDiskNestedTree(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"b.txt":         "bee",
		"a/deep/c.txt":  "sea",
		"a/first.txt":   "one",
		"z/empty.bin":   "",
		"a/deep/d/e.js": "// e",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "only-dir"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(dir, "b.txt"), filepath.Join(dir, "link.txt")))

	ts := time.Date(2013, 7, 1, 0, 0, 0, 0, time.UTC)
	inv := NewInventoryBuilder("v1", ts)
	archive := filepath.Join(t.TempDir(), "out.zip")
	path, size, err := NewArchiveWriter(dir, ts).WriteToDisk(archive, inv)
	require.NoError(t, err)
	assert.Equal(t, archive, path)
	assert.EqualValues(t, len("bee")+len("sea")+len("one")+len("// e"), size)

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
		assert.True(t, f.Modified.Equal(ts), f.Name)
	}
	assert.Equal(t, []string{"a/deep/c.txt", "a/deep/d/e.js", "a/first.txt", "b.txt", "z/empty.bin"}, names)

	built := inv.Build()
	assert.Equal(t, 5, built.TotalFiles)
	assert.Equal(t, "a/deep/c.txt", built.Files[0].Path)
	assert.Len(t, built.ContentHash, 64)
}

func TestWriteToDiskMissingBaseDir(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "out.zip")
	_, _, err := NewArchiveWriter(filepath.Join(t.TempDir(), "gone"), time.Now()).WriteToDisk(archive, nil)
	require.Error(t, err)

	_, statErr := os.Stat(archive)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(archive + ".tmp")
	assert.True(t, os.IsNotExist(statErr))
}

func TestInventoryHashDependsOnContent(t *testing.T) {
	a := NewInventoryBuilder("v1", time.Time{})
	a.AddFile("x", []byte("1"))
	b := NewInventoryBuilder("v1", time.Time{})
	b.AddFile("x", []byte("2"))

	ia, ib := a.Build(), b.Build()
	assert.NotEqual(t, ia.ContentHash, ib.ContentHash)
	assert.Equal(t, int64(1), ia.Files[0].Size)
}
