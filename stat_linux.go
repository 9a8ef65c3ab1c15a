//go:build linux

package filets

import (
	"io/fs"
	"syscall"
	"time"
)

// changeTime extracts the inode change time, falling back to the
// modification time when the stat source is unavailable.
func changeTime(info fs.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	}
	return info.ModTime()
}
