//go:build !darwin

package plan

import (
	"os"
	"time"
)

// creationTime is unavailable through stat on this platform; date mode falls
// back to the modification time.
func creationTime(os.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
