package files

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("<a/>"), 0o644))
}

func TestFindDocuments(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.xml"))
	touch(t, filepath.Join(root, "a.xml"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "UPPER.XML"))
	touch(t, filepath.Join(root, "2021", "jan", "c.xml"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir.xml"), 0o755))

	got, err := FindDocuments(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "2021", "jan", "c.xml"),
		filepath.Join(root, "a.xml"),
		filepath.Join(root, "b.xml"),
	}, got)
}

func TestFindDocuments_Empty(t *testing.T) {
	got, err := FindDocuments(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindDocuments_Cancelled(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.xml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FindDocuments(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckReadableDir(t *testing.T) {
	assert.NoError(t, CheckReadableDir(t.TempDir()))
	assert.Error(t, CheckReadableDir(filepath.Join(t.TempDir(), "missing")))
}

func TestAtomicFile_Commit(t *testing.T) {
	target := filepath.Join(t.TempDir(), "report.csv")

	f, err := CreateAtomic(target)
	require.NoError(t, err)
	_, err = f.WriteString("data")
	require.NoError(t, err)

	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, f.Commit())
	f.Abort()

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
	assert.Error(t, f.Commit())

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, DefaultMode, info.Mode().Perm())
}

func TestAtomicFile_KeepsExistingMode(t *testing.T) {
	target := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o600))
	require.NoError(t, os.Chmod(target, 0o640))

	f, err := CreateAtomic(target)
	require.NoError(t, err)
	_, err = f.WriteString("new")
	require.NoError(t, err)
	require.NoError(t, f.Commit())

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestAtomicFile_Abort(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "report.csv")

	f, err := CreateAtomic(target)
	require.NoError(t, err)
	f.Abort()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreateAtomic_MissingDir(t *testing.T) {
	_, err := CreateAtomic(filepath.Join(t.TempDir(), "missing", "report.csv"))
	assert.Error(t, err)
}
