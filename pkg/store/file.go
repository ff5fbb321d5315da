package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists resource buffers as flat files; the identifier is the
// file path. Saves are atomic: data is written to a temp file in the target
// directory, synced to disk, and renamed over the destination, so a crash
// never leaves a half-written resource behind.
type FileStore struct{}

// Load reads the whole file at path.
func (FileStore) Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return data, nil
}

// Save atomically replaces the file at path with data.
func (FileStore) Save(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".verskit-*")
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	tmp := f.Name()

	err = writeAll(f, data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeAll(f *os.File, data []byte) error {
	if err := f.Chmod(0o644); err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		return err
	}
	return syncFile(f)
}
