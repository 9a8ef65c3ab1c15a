package filets

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CopyFile copies src to dst byte-for-byte, creating dst's parent directory
// and overwriting dst if present.
func CopyFile(src, dst string) error {
	if err := ensureParent(dst); err != nil {
		return wrap(KindFileCopy, dst, err)
	}
	if err := copyFileContents(src, dst); err != nil {
		return wrap(KindFileCopy, src, err)
	}
	log.Debug("copied file", zap.String("source", src), zap.String("destination", dst))
	return nil
}

// RenameFile performs a raw atomic rename. No directories are created.
func RenameFile(oldPath, newPath string) error {
	if err := os.Rename(oldPath, newPath); err != nil {
		return wrap(KindFileRename, oldPath, err)
	}
	return nil
}

// MoveFile renames src to dst after ensuring dst's parent directory exists.
func MoveFile(src, dst string) error {
	if err := ensureParent(dst); err != nil {
		return wrap(KindFileMove, dst, err)
	}
	if err := os.Rename(src, dst); err != nil {
		return wrap(KindFileMove, src, err)
	}
	return nil
}

// RemoveFile deletes the file at path. A missing file is a no-op, not an
// error.
func RemoveFile(path string) error {
	err := os.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return wrap(KindFileRemove, path, err)
}

// IsWritable probes dir by creating and immediately deleting a uniquely
// named marker file. It is a heuristic, not a guarantee: a real write can
// still race with the probe and fail.
func IsWritable(dir string) bool {
	probe := filepath.Join(dir, probePrefix+uuid.NewString())
	f, err := os.OpenFile(probe, os.O_CREATE|os.O_EXCL|os.O_WRONLY, fileMode)
	if err != nil {
		return false
	}
	f.Close()
	return os.Remove(probe) == nil
}

// copyFileContents streams src into dst, truncating dst first.
func copyFileContents(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, fileMode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
