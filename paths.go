package filets

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Pure path algebra. These delegate to the platform path library, never
// touch the filesystem, and follow the platform's separator rules.

// AbsPath resolves path to an absolute path against the working directory.
func AbsPath(path string) (string, error) {
	return filepath.Abs(path)
}

// RelPath computes the relative path from base to target.
func RelPath(base, target string) (string, error) {
	return filepath.Rel(base, target)
}

// JoinPaths joins segments with the platform separator and normalizes the
// result.
func JoinPaths(segments ...string) string {
	return filepath.Join(segments...)
}

// NormalizePath returns the shortest equivalent of path.
func NormalizePath(path string) string {
	return filepath.Clean(path)
}

// DirName returns all but the last element of path.
func DirName(path string) string {
	return filepath.Dir(path)
}

// FileName returns the last element of path.
func FileName(path string) string {
	return filepath.Base(path)
}

// FileExt returns the extension of path, including the dot.
func FileExt(path string) string {
	return filepath.Ext(path)
}

// FileStem returns the last element of path without its extension.
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ChangeExt replaces the extension of path with ext. The leading dot on ext
// is optional; an empty ext strips the extension.
func ChangeExt(path, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

const maxFilenameLength = 255

var (
	// reservedNameChars are path-hostile on at least one platform and are
	// treated as separators.
	reservedNameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	droppedNameChars  = regexp.MustCompile(`[^a-zA-Z0-9\s_-]`)
	whitespaceRuns    = regexp.MustCompile(`\s+`)
)

// SanitizeFilename rewrites name into a portable filename: reserved
// characters become separators, remaining punctuation is dropped,
// whitespace runs collapse to single hyphens, and the result is trimmed
// of edge hyphens and capped at 255 characters.
func SanitizeFilename(name string) string {
	s := reservedNameChars.ReplaceAllString(name, " ")
	s = droppedNameChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxFilenameLength {
		s = strings.Trim(s[:maxFilenameLength], "-")
	}
	return s
}
