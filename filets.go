package filets

import (
	"io/fs"

	"go.uber.org/zap"

	"github.com/joemaddalone/filets/internal/config"
	"github.com/joemaddalone/filets/internal/logging"
)

var (
	cfg         = config.LoadOrDefault()
	dirMode     fs.FileMode
	fileMode    fs.FileMode
	probePrefix string

	log = logging.NewNop()
)

func init() {
	dirMode = cfg.DirPerm()
	fileMode = cfg.FilePerm()
	probePrefix = cfg.ProbePrefix
}

// SetLogger installs a logger for operation-level debug events.
// The library is silent by default.
func SetLogger(l *zap.Logger) {
	log = logging.Wrap(l)
}

// NewLogger builds a logger from the FILETS_LOG_* environment settings,
// for callers that want the library's own logging defaults.
func NewLogger() *zap.Logger {
	l, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return zap.NewNop()
	}
	return l.Logger
}
