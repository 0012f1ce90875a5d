// Package jsonfile reads and writes JSON text files for the jsonkit
// commands and examples. Input files may be UTF-8 (with or without BOM) or
// BOM-marked UTF-16; everything is normalized to plain UTF-8 bytes before it
// reaches the parser.
package jsonfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadFile reads path and returns its content as UTF-8 with any BOM
// stripped.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	out, err := normalize(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return out, nil
}

// WriteFile writes data to path through a temporary file in the same
// directory, so a crash mid-write never leaves a truncated file behind.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonkit-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
