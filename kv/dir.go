package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
)

// Dir is a Store keeping one file per key in a directory.
//
// Values are written to a temporary file and renamed, a reader never sees a
// partially written value.
type Dir struct {
	path string
}

// NewDir returns a Dir rooted at path, creating the directory if needed.
func NewDir(path string) (*Dir, error) {
	if path == "" {
		path = "."
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &Dir{path: path}, nil
}

// Path returns the file holding key.
func (d *Dir) Path(key string) string {
	return filepath.Join(d.path, url.PathEscape(key)+".json")
}

func (d *Dir) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(d.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotExist
	}
	if err != nil {
		return "", fmt.Errorf("read %q: %w", key, err)
	}
	return string(data), nil
}

func (d *Dir) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.CreateTemp(d.path, ".tmp-*")
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op once renamed

	if _, err := f.WriteString(value); err != nil {
		f.Close()
		return fmt.Errorf("write %q: %w", key, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync %q: %w", key, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", key, err)
	}
	if err := os.Rename(tmp, d.Path(key)); err != nil {
		return fmt.Errorf("replace %q: %w", key, err)
	}
	return nil
}

// Close does nothing.
func (d *Dir) Close() error { return nil }
