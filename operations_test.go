package filets_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joemaddalone/filets"
)

// TestCopyFile tests byte-for-byte copy with parent creation
func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "nested", "dst.bin")

	require.NoError(t, filets.WriteTextFile(src, "copy me"))
	require.NoError(t, filets.CopyFile(src, dst))

	got, err := filets.ReadTextFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "copy me", got)

	srcSum, err := filets.ChecksumFile(src)
	require.NoError(t, err)
	dstSum, err := filets.ChecksumFile(dst)
	require.NoError(t, err)
	assert.Equal(t, srcSum, dstSum)
}

// TestCopyFileOverwrites tests that an existing destination is replaced
func TestCopyFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")

	require.NoError(t, filets.WriteTextFile(src, "new"))
	require.NoError(t, filets.WriteTextFile(dst, "old content, longer"))

	require.NoError(t, filets.CopyFile(src, dst))

	got, err := filets.ReadTextFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", got)
}

// TestCopyFileMissingSource tests the wrapped failure
func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()

	err := filets.CopyFile(filepath.Join(dir, "absent"), filepath.Join(dir, "dst"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy failed")
}

// TestRenameFile tests the raw rename and its failure mode
func TestRenameFile(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.txt")
	newPath := filepath.Join(dir, "new.txt")

	require.NoError(t, filets.WriteTextFile(oldPath, "x"))
	require.NoError(t, filets.RenameFile(oldPath, newPath))

	assert.False(t, filets.FileExists(oldPath))
	assert.True(t, filets.FileExists(newPath))

	// No directory creation on the raw rename
	err := filets.RenameFile(newPath, filepath.Join(dir, "missing", "new.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rename failed")
}

// TestMoveFile tests rename with parent creation
func TestMoveFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "deep", "down", "dst.txt")

	require.NoError(t, filets.WriteTextFile(src, "relocate"))
	require.NoError(t, filets.MoveFile(src, dst))

	assert.False(t, filets.FileExists(src))
	got, err := filets.ReadTextFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "relocate", got)
}

// TestRemoveFileIdempotent tests deletion and the missing-path no-op
func TestRemoveFileIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, filets.WriteTextFile(path, "x"))

	require.NoError(t, filets.RemoveFile(path))
	assert.False(t, filets.FileExists(path))

	require.NoError(t, filets.RemoveFile(path))
}

// TestIsWritable tests the probe against a real and a missing directory
func TestIsWritable(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, filets.IsWritable(dir))
	assert.False(t, filets.IsWritable(filepath.Join(dir, "absent")))

	// The probe leaves nothing behind
	assert.Empty(t, filets.DirContents(dir))
}
