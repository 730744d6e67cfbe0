package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File creation operations.

// EnsureFile creates path and its parent directories when they do not exist.
// Existing files are never truncated or otherwise modified.
func EnsureFile(path string) error {
	if path == "" {
		return ErrEmptyOutputPath
	}

	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, dirPermUserGroupRX)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return fmt.Errorf("%w: %s", ErrIsDirectory, path)
		}

		return nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check file %s: %w", path, err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, filePermUserRW)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("failed to close file %s: %w", path, err)
	}

	return nil
}

// File writing operations.

// WriteFileAtomic replaces the content of path with content.
//
// The content is written to a temporary file in the same directory, synced and
// renamed over path, so a failed write never leaves a truncated file behind.
// The mode of an existing file is preserved; new files are created user read/write.
// When path is a symlink the file it points to is replaced and the link is kept.
func WriteFileAtomic(path string, content []byte) error {
	if path == "" {
		return ErrEmptyOutputPath
	}

	path, err := resolveSymlink(filepath.Clean(path))
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)

	err = os.MkdirAll(dir, dirPermUserGroupRX)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	mode := os.FileMode(filePermUserRW)
	if info, statErr := os.Stat(path); statErr == nil {
		if info.IsDir() {
			return fmt.Errorf("%w: %s", ErrIsDirectory, path)
		}

		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}

	tmpName := tmp.Name()

	err = writeAndClose(tmp, content, mode)
	if err != nil {
		_ = os.Remove(tmpName)

		return err
	}

	err = os.Rename(tmpName, path)
	if err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("failed to replace file %s: %w", path, err)
	}

	return nil
}

// resolveSymlink returns the file path points to when path is a symlink, and
// path itself otherwise. A dangling link resolves to its (missing) target.
func resolveSymlink(path string) (string, error) {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return path, nil
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to resolve symlink %s: %w", path, err)
	}

	link, err := os.Readlink(path)
	if err != nil {
		return "", fmt.Errorf("failed to read symlink %s: %w", path, err)
	}

	if !filepath.IsAbs(link) {
		link = filepath.Join(filepath.Dir(path), link)
	}

	return filepath.Clean(link), nil
}

func writeAndClose(file *os.File, content []byte, mode os.FileMode) error {
	_, err := file.Write(content)
	if err != nil {
		_ = file.Close()

		return fmt.Errorf("failed to write temp file %s: %w", file.Name(), err)
	}

	err = file.Chmod(mode)
	if err != nil {
		_ = file.Close()

		return fmt.Errorf("failed to set mode on temp file %s: %w", file.Name(), err)
	}

	err = file.Sync()
	if err != nil {
		_ = file.Close()

		return fmt.Errorf("failed to sync temp file %s: %w", file.Name(), err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("failed to close temp file %s: %w", file.Name(), err)
	}

	return nil
}
