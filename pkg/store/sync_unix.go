//go:build linux || freebsd

package store

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file data to disk. Linux/FreeBSD: fdatasync is enough,
// the metadata we care about (size) is covered.
func syncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
