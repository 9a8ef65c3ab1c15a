package filets

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
)

// FindFiles walks dir recursively and returns the full paths of files whose
// name contains pattern as a substring. An empty pattern matches every
// file. Directories are recursed into unconditionally but never matched.
// Per-entry errors are skipped; symlinks are not followed, so link cycles
// terminate. Results are sorted.
func FindFiles(dir, pattern string) ([]string, error) {
	if err := checkSearchRoot(dir, KindFindFiles); err != nil {
		return nil, err
	}

	var mu sync.Mutex
	matches := []string{}
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if pattern == "" || strings.Contains(d.Name(), pattern) {
			mu.Lock()
			matches = append(matches, p)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, wrap(KindFindFiles, dir, err)
	}

	sort.Strings(matches)
	return matches, nil
}

// FindDirs walks dir recursively and returns the full paths of directories
// whose name contains pattern as a substring. Every directory is recursed
// into regardless of match; the root itself is not a candidate.
func FindDirs(dir, pattern string) ([]string, error) {
	if err := checkSearchRoot(dir, KindFindDirs); err != nil {
		return nil, err
	}

	var mu sync.Mutex
	matches := []string{}
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() || p == dir {
			return nil
		}
		if pattern == "" || strings.Contains(d.Name(), pattern) {
			mu.Lock()
			matches = append(matches, p)
			mu.Unlock()
		}
		return nil
	})
	if err != nil {
		return nil, wrap(KindFindDirs, dir, err)
	}

	sort.Strings(matches)
	return matches, nil
}

// Glob matches pattern against the tree rooted at dir, with doublestar
// (gitignore-style) `**` support. Returned paths include dir.
func Glob(dir, pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, wrap(KindFindFiles, dir, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// checkSearchRoot verifies that dir is an existing directory before a walk,
// so a bad root fails the call instead of vanishing into skipped entries.
func checkSearchRoot(dir string, kind Kind) error {
	info, err := os.Stat(dir)
	if err != nil {
		return wrap(kind, dir, err)
	}
	if !info.IsDir() {
		return wrap(kind, dir, ErrNotDirectory)
	}
	return nil
}
