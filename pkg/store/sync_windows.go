//go:build windows

package store

import (
	"os"

	"golang.org/x/sys/windows"
)

// syncFile flushes file data and metadata to disk via FlushFileBuffers.
func syncFile(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
