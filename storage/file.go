package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// FileStore persists each key as one JSON file in a directory. It is the
// server-side counterpart of browser local storage: small payloads, one
// writer per key, survives restarts.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns the store
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create storage directory %s", dir)
	}
	return &FileStore{dir: dir}, nil
}

var fileNameReplacer = strings.NewReplacer(":", "_", "/", "_", "\\", "_")

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, fileNameReplacer.Replace(key)+".json")
}

// Get returns the value stored under key
func (f *FileStore) Get(ctx context.Context, key string) (string, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", errors.Wrapf(err, "read %s", key)
	}
	return string(data), nil
}

// Set stores value under key
func (f *FileStore) Set(ctx context.Context, key, value string) error {
	if err := os.WriteFile(f.path(key), []byte(value), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", key)
	}
	return nil
}

// Remove deletes the value stored under key
func (f *FileStore) Remove(ctx context.Context, key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "remove %s", key)
	}
	return nil
}
