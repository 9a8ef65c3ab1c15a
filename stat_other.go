//go:build !linux && !darwin

package filets

import (
	"io/fs"
	"time"
)

// changeTime is not portable off Unix stat sources; the modification time
// is the closest available stand-in.
func changeTime(info fs.FileInfo) time.Time {
	return info.ModTime()
}
