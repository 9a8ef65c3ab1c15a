package filets

import (
	"io/fs"
	"path/filepath"
	"time"
)

// Stats is a point-in-time metadata snapshot for one path. It is valid only
// at the instant of the call; nothing is cached or invalidated.
type Stats struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	IsDir     bool      `json:"is_dir"`
	IsFile    bool      `json:"is_file"`
	Mode      string    `json:"mode"`
	Modified  time.Time `json:"modified"`
	Changed   time.Time `json:"changed"`
	Extension string    `json:"extension,omitempty"`
}

func newStats(path string, info fs.FileInfo) *Stats {
	s := &Stats{
		Name:     info.Name(),
		Path:     path,
		Size:     info.Size(),
		IsDir:    info.IsDir(),
		IsFile:   info.Mode().IsRegular(),
		Mode:     info.Mode().String(),
		Modified: info.ModTime(),
		Changed:  changeTime(info),
	}
	if !info.IsDir() {
		s.Extension = filepath.Ext(path)
	}
	return s
}
