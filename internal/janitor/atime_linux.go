//go:build linux

package janitor

import (
	"time"

	"golang.org/x/sys/unix"
)

// atime reads the last-access time; the sweep keys off it rather than
// mtime so a file a live run is still reading does not get collected.
func atime(path string) (time.Time, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, err
	}
	return time.Unix(st.Atim.Sec, st.Atim.Nsec), nil
}
