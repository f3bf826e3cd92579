package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hbomb79/Booru/pkg/logger"
	"github.com/mitchellh/go-homedir"
)

// FilesystemStore stores every blob as a single file inside of the root directory.
type FilesystemStore struct {
	root string
}

func NewFilesystemStore(root string) (*FilesystemStore, error) {
	expanded, err := homedir.Expand(root)
	if err != nil {
		return nil, fmt.Errorf("failed to expand content root %q: %w", root, err)
	}

	if err := os.MkdirAll(expanded, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create content root %q: %w", expanded, err)
	}

	log.Emit(logger.INFO, "Using filesystem content store rooted at %s\n", expanded)
	return &FilesystemStore{root: expanded}, nil
}

func (store *FilesystemStore) Exists(_ context.Context, key string) (bool, error) {
	path, err := store.path(key)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (store *FilesystemStore) OpenWrite(_ context.Context, key string) (io.WriteCloser, error) {
	path, err := store.path(key)
	if err != nil {
		return nil, err
	}

	return os.Create(path)
}

func (store *FilesystemStore) OpenRead(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := store.path(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrBlobNotFound
		}

		return nil, err
	}

	return file, nil
}

// path resolves the key to a file inside of the root. Keys are flat, so
// anything carrying a path separator is refused.
func (store *FilesystemStore) path(key string) (string, error) {
	if key == "" || filepath.Base(key) != key || key == "." || key == ".." {
		return "", fmt.Errorf("content key %q is not valid", key)
	}

	return filepath.Join(store.root, key), nil
}
