package filets

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
	"github.com/gabriel-vasile/mimetype"
)

// IsFile reports whether path exists and is a regular file. Errors are
// swallowed to false.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path exists and is a directory. Errors are
// swallowed to false.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Stat returns a metadata snapshot for path.
func Stat(path string) (*Stats, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, wrap(KindStat, path, err)
	}
	return newStats(path, info), nil
}

// FileSize returns the byte size of path. Directories are not special-cased;
// whatever the OS reports is returned.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, wrap(KindStat, path, err)
	}
	return info.Size(), nil
}

// FileSizeHuman returns the size of path in human-readable form.
func FileSizeHuman(path string) (string, error) {
	size, err := FileSize(path)
	if err != nil {
		return "", err
	}
	return HumanSize(size), nil
}

// DirSize sums the sizes of all files under path recursively. Per-entry
// stat failures are skipped; symlinks are not followed.
func DirSize(path string) (int64, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, wrap(KindStat, path, err)
	}

	var total atomic.Int64
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, path, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total.Add(info.Size())
		return nil
	})
	if err != nil {
		return 0, wrap(KindStat, path, err)
	}
	return total.Load(), nil
}

// MimeType detects the MIME type of the file at path by content.
func MimeType(path string) (string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", wrap(KindStat, path, err)
	}
	return mtype.String(), nil
}

// IsTextFile reports whether the file at path holds text content.
func IsTextFile(path string) (bool, error) {
	mt, err := MimeType(path)
	if err != nil {
		return false, err
	}
	isText := strings.HasPrefix(mt, "text/") ||
		strings.HasPrefix(mt, "application/json") ||
		strings.HasPrefix(mt, "application/xml") ||
		strings.HasPrefix(mt, "application/javascript")
	return isText, nil
}

// HumanSize formats bytes as a human-readable size.
func HumanSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.2f %s", float64(bytes)/float64(div), units[exp])
}
