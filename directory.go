package filets

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// DirExists reports whether path exists and is a directory. Errors are
// swallowed to false.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDir creates the directory at path together with any missing
// ancestors. It is idempotent; an existing directory is not an error.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, dirMode); err != nil {
		return wrap(KindDirCreate, path, err)
	}
	return nil
}

// CreateDir is the strict variant of EnsureDir: it fails if the directory
// is already present.
func CreateDir(path string) error {
	if DirExists(path) {
		return wrap(KindDirCreate, path, ErrDirExists)
	}
	return EnsureDir(path)
}

// RemoveDir deletes the directory at path recursively. A missing directory
// is a no-op, not an error.
func RemoveDir(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return wrap(KindDirRemove, path, err)
	}
	return nil
}

// IsEmptyDir reports whether the directory at path has zero entries. Unlike
// the existence predicates it fails when path is not an existing directory.
func IsEmptyDir(path string) (bool, error) {
	if !DirExists(path) {
		return false, wrap(KindDirEmptyCheck, path, ErrDirNotExist)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, wrap(KindDirEmptyCheck, path, err)
	}
	return len(entries) == 0, nil
}

// DirContents lists the entry names of one directory level in OS order.
// A missing or unreadable directory yields an empty slice.
func DirContents(path string) []string {
	entries, err := os.ReadDir(path)
	if err != nil {
		return []string{}
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	return names
}

// CopyDir copies the tree rooted at src into dst, depth-first in pre-order.
// dst and missing ancestors are created; files are copied byte-for-byte.
// Entries are resolved through symlinks, so a link cycle (or a destination
// nested inside the source) recurses until an OS limit fails the call. A
// failure mid-copy leaves the destination in its partial state.
func CopyDir(src, dst string) error {
	if !DirExists(src) {
		return wrap(KindDirCopy, src, ErrSourceDirNotExist)
	}
	if err := os.MkdirAll(dst, dirMode); err != nil {
		return wrap(KindDirCopy, dst, err)
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return wrap(KindDirCopy, src, err)
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		info, err := os.Stat(srcPath)
		if err != nil {
			return wrap(KindDirCopy, srcPath, err)
		}
		if info.IsDir() {
			if err := CopyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFileContents(srcPath, dstPath); err != nil {
			return wrap(KindDirCopy, srcPath, err)
		}
	}
	log.Debug("copied directory", zap.String("source", src), zap.String("destination", dst))
	return nil
}

// MoveDir renames the tree rooted at src to dst after ensuring dst's parent
// exists. The rename is a single atomic operation; moving across storage
// volumes fails with the underlying OS error, no copy-then-delete fallback
// is attempted.
func MoveDir(src, dst string) error {
	if !DirExists(src) {
		return wrap(KindDirMove, src, ErrSourceDirNotExist)
	}
	if err := ensureParent(dst); err != nil {
		return wrap(KindDirMove, dst, err)
	}
	if err := os.Rename(src, dst); err != nil {
		return wrap(KindDirMove, src, err)
	}
	log.Debug("moved directory", zap.String("source", src), zap.String("destination", dst))
	return nil
}

// ensureParent creates the parent directory of path if absent.
func ensureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, dirMode)
}
