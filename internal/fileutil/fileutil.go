// Package fileutil provides output directory and file helpers.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Permissions for created output.
const (
	DirPerm  = 0o750
	FilePerm = 0o644
)

// Sentinel errors for file utility operations.
var (
	ErrNameEmpty         = errors.New("file name cannot be empty")
	ErrNamePathTraversal = errors.New("file name contains path separator or null byte")
	ErrNotDirectory      = errors.New("path exists and is not a directory")
)

// ValidateName checks that name is a bare file name safe to join to an
// output directory.
func ValidateName(name string) error {
	if name == "" {
		return ErrNameEmpty
	}
	if strings.ContainsAny(name, "/\\\x00") || name == "." || name == ".." {
		return ErrNamePathTraversal
	}
	return nil
}

// EnsureDir creates dir (and parents) when missing. It reports whether the
// directory was created.
func EnsureDir(dir string) (created bool, err error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	case !os.IsNotExist(err):
		return false, fmt.Errorf("checking output directory: %w", err)
	}

	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return false, fmt.Errorf("creating output directory: %w", err)
	}
	return true, nil
}

// WriteFile writes content to dir/name through a temporary file in the same
// directory, so readers never observe a partial file. Returns the final path.
func WriteFile(dir, name, content string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	tmpFile, err := os.CreateTemp(dir, "."+name+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, FilePerm); err != nil {
		cleanup()
		return "", fmt.Errorf("setting file mode: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return "", fmt.Errorf("renaming temp file: %w", err)
	}
	return path, nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
