package filets_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joemaddalone/filets"
)

// TestEnsureDirIdempotent tests that repeated calls succeed
func TestEnsureDirIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, filets.EnsureDir(path))
	require.NoError(t, filets.EnsureDir(path))
	assert.True(t, filets.DirExists(path))
}

// TestCreateDirStrict tests that an existing directory is rejected
func TestCreateDirStrict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "once")

	require.NoError(t, filets.CreateDir(path))

	err := filets.CreateDir(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.ErrorIs(t, err, filets.ErrDirExists)
}

// TestRemoveDirIdempotent tests recursive removal and missing-path no-op
func TestRemoveDirIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree")
	require.NoError(t, filets.WriteTextFile(filepath.Join(path, "sub", "f.txt"), "x"))

	require.NoError(t, filets.RemoveDir(path))
	assert.False(t, filets.DirExists(path))

	// Second removal is a no-op, not an error
	require.NoError(t, filets.RemoveDir(path))
}

// TestDirExists tests the directory predicate against files and absence
func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, filets.WriteTextFile(file, "x"))

	assert.True(t, filets.DirExists(dir))
	assert.False(t, filets.DirExists(file))
	assert.False(t, filets.DirExists(filepath.Join(dir, "absent")))
}

// TestIsEmptyDir tests the three specified outcomes
func TestIsEmptyDir(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty")
	require.NoError(t, filets.EnsureDir(empty))
	got, err := filets.IsEmptyDir(empty)
	require.NoError(t, err)
	assert.True(t, got)

	require.NoError(t, filets.WriteTextFile(filepath.Join(empty, "f.txt"), "x"))
	got, err = filets.IsEmptyDir(empty)
	require.NoError(t, err)
	assert.False(t, got)

	_, err = filets.IsEmptyDir(filepath.Join(dir, "absent"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

// TestDirContents tests single-level listing and missing-path behavior
func TestDirContents(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, filets.WriteTextFile(filepath.Join(dir, "a.txt"), "x"))
	require.NoError(t, filets.EnsureDir(filepath.Join(dir, "sub")))
	require.NoError(t, filets.WriteTextFile(filepath.Join(dir, "sub", "nested.txt"), "x"))

	names := filets.DirContents(dir)
	assert.ElementsMatch(t, []string{"a.txt", "sub"}, names)

	assert.Empty(t, filets.DirContents(filepath.Join(dir, "absent")))
}

// TestCopyDir tests tree reproduction including an empty subdirectory
func TestCopyDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")

	require.NoError(t, filets.WriteTextFile(filepath.Join(src, "file.txt"), "payload"))
	require.NoError(t, filets.EnsureDir(filepath.Join(src, "hollow")))

	require.NoError(t, filets.CopyDir(src, dst))

	got, err := filets.ReadTextFile(filepath.Join(dst, "file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "payload", got)

	empty, err := filets.IsEmptyDir(filepath.Join(dst, "hollow"))
	require.NoError(t, err)
	assert.True(t, empty)

	// Source is untouched
	assert.True(t, filets.DirExists(src))
}

// TestCopyDirNested tests depth-first reproduction of nested trees
func TestCopyDirNested(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")

	require.NoError(t, filets.WriteTextFile(filepath.Join(src, "a", "b", "deep.txt"), "deep"))
	require.NoError(t, filets.WriteTextFile(filepath.Join(src, "top.txt"), "top"))

	require.NoError(t, filets.CopyDir(src, dst))

	got, err := filets.ReadTextFile(filepath.Join(dst, "a", "b", "deep.txt"))
	require.NoError(t, err)
	assert.Equal(t, "deep", got)
}

// TestCopyDirMissingSource tests the precondition failure
func TestCopyDirMissingSource(t *testing.T) {
	dir := t.TempDir()

	err := filets.CopyDir(filepath.Join(dir, "absent"), filepath.Join(dir, "dst"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source directory does not exist")
	assert.ErrorIs(t, err, filets.ErrSourceDirNotExist)
}

// TestMoveDir tests the whole-tree rename
func TestMoveDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "parent", "dst")

	require.NoError(t, filets.WriteTextFile(filepath.Join(src, "f.txt"), "moved"))

	require.NoError(t, filets.MoveDir(src, dst))

	assert.False(t, filets.DirExists(src))
	assert.True(t, filets.DirExists(dst))

	got, err := filets.ReadTextFile(filepath.Join(dst, "f.txt"))
	require.NoError(t, err)
	assert.Equal(t, "moved", got)
}

// TestMoveDirMissingSource tests the precondition failure
func TestMoveDirMissingSource(t *testing.T) {
	dir := t.TempDir()

	err := filets.MoveDir(filepath.Join(dir, "absent"), filepath.Join(dir, "dst"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source directory does not exist")
}
