package filets

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind identifies the failed operation category. The Kind doubles as the
// fixed message prefix, so callers can distinguish failure categories either
// by prefix or through errors.As.
type Kind string

const (
	KindDirCreate     Kind = "create directory failed"
	KindDirRemove     Kind = "remove directory failed"
	KindDirCopy       Kind = "copy directory failed"
	KindDirMove       Kind = "move directory failed"
	KindDirEmptyCheck Kind = "empty check failed"

	KindFileWrite  Kind = "write failed"
	KindFileRead   Kind = "read failed"
	KindFileAppend Kind = "append failed"
	KindFileRemove Kind = "remove failed"
	KindFileCopy   Kind = "copy failed"
	KindFileRename Kind = "rename failed"
	KindFileMove   Kind = "move failed"

	KindStat      Kind = "stat failed"
	KindFindFiles Kind = "find files failed"
	KindFindDirs  Kind = "find directories failed"

	KindJSONRead  Kind = "read json failed"
	KindJSONWrite Kind = "write json failed"
	KindYAMLRead  Kind = "read yaml failed"
	KindYAMLWrite Kind = "write yaml failed"
	KindTOMLRead  Kind = "read toml failed"
	KindTOMLWrite Kind = "write toml failed"
	KindCSVRead   Kind = "read csv failed"
	KindCSVWrite  Kind = "write csv failed"

	KindArchiveCreate  Kind = "archive creation failed"
	KindArchiveExtract Kind = "archive extraction failed"
	KindArchiveList    Kind = "archive listing failed"
	KindChecksum       Kind = "checksum failed"
)

// Error ties an operation failure to its category and the offending path.
// The underlying cause is wrapped exactly once and stays reachable through
// errors.Unwrap, errors.Is and errors.As.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinel conditions surfaced by precondition checks. fs.ErrNotExist and
// fs.ErrExist are re-exported so callers need not import io/fs.
var (
	ErrNotExist = fs.ErrNotExist
	ErrExist    = fs.ErrExist

	ErrDirExists          = errors.New("directory already exists")
	ErrDirNotExist        = errors.New("directory does not exist")
	ErrSourceDirNotExist  = errors.New("source directory does not exist")
	ErrNotDirectory       = errors.New("not a directory")
	ErrUnsupportedArchive = errors.New("unsupported archive format")
)

func wrap(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}
