//go:build !linux && !freebsd && !darwin && !windows

package store

import "os"

func syncFile(f *os.File) error {
	return f.Sync()
}
