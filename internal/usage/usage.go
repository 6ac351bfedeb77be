// Package usage measures how many bytes files and directories occupy.
package usage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Entry is the measured size of one path.
type Entry struct {
	Path  string // Path as given by the caller
	Size  uint64 // Sum of regular file sizes in bytes
	Files int    // Number of regular files counted
	Dir   bool
}

// NotFoundError indicates a path that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("path '%s' not found", e.Path)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ExpandTilde expands ~ and a leading ~/ to the home directory.
// Other paths are returned unchanged.
func ExpandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand home dir: %w", err)
	}

	return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
}

// Measure returns the size of path. Directories are walked recursively and
// only regular files are counted; symlinks are not followed.
func Measure(ctx context.Context, path string) (Entry, error) {
	if path == "" {
		return Entry{}, fmt.Errorf("path cannot be empty")
	}
	resolved, err := ExpandTilde(path)
	if err != nil {
		return Entry{}, err
	}

	info, err := os.Lstat(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Entry{}, &NotFoundError{Path: path}
		}
		return Entry{}, fmt.Errorf("stat %s: %w", path, err)
	}

	entry := Entry{Path: path, Dir: info.IsDir()}
	if !info.IsDir() {
		if info.Mode().IsRegular() {
			entry.Size = uint64(info.Size())
			entry.Files = 1
		}
		return entry, nil
	}

	err = filepath.WalkDir(resolved, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		entry.Size += uint64(fi.Size())
		entry.Files++
		return nil
	})
	if err != nil {
		return Entry{}, fmt.Errorf("walk %s: %w", path, err)
	}
	return entry, nil
}

// MeasureAll measures each path in order and stops at the first error.
func MeasureAll(ctx context.Context, paths []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		e, err := Measure(ctx, p)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Total sums the sizes of entries.
func Total(entries []Entry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Size
	}
	return total
}
