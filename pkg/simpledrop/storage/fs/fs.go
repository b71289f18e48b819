package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tendant/simple-drop/pkg/simpledrop"
)

// Backend is a filesystem implementation of the simpledrop.BlobStore
// interface. Objects are flat files under the base directory; the file's
// mtime is the object's last-modified timestamp.
type Backend struct {
	baseDir string
}

// Config options for the filesystem backend
type Config struct {
	BaseDir string // Base directory for storing files
}

// New creates a new filesystem storage backend
func New(config Config) (*Backend, error) {
	if config.BaseDir == "" {
		return nil, errors.New("base directory is required")
	}

	if err := os.MkdirAll(config.BaseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	return &Backend{baseDir: config.BaseDir}, nil
}

// path resolves a key to a file path. Keys come from URL parameters, so
// anything that would escape the base directory is rejected.
func (b *Backend) path(objectKey string) (string, error) {
	if objectKey == "" || objectKey != filepath.Base(objectKey) {
		return "", fmt.Errorf("invalid object key: %q", objectKey)
	}
	return filepath.Join(b.baseDir, objectKey), nil
}

// Upload uploads content directly to the filesystem
func (b *Backend) Upload(ctx context.Context, objectKey string, reader io.Reader) error {
	filePath, err := b.path(objectKey)
	if err != nil {
		return err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// Download downloads content directly from the filesystem
func (b *Backend) Download(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	filePath, err := b.path(objectKey)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if os.IsNotExist(err) {
		return nil, simpledrop.ErrObjectNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Delete deletes content from the filesystem
func (b *Backend) Delete(ctx context.Context, objectKey string) error {
	filePath, err := b.path(objectKey)
	if err != nil {
		return err
	}

	if err := os.Remove(filePath); os.IsNotExist(err) {
		return simpledrop.ErrObjectNotFound
	} else if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// List returns metadata for every stored object
func (b *Backend) List(ctx context.Context) ([]simpledrop.ObjectMeta, error) {
	entries, err := os.ReadDir(b.baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read base directory: %w", err)
	}

	metas := make([]simpledrop.ObjectMeta, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Deleted between ReadDir and Info; skip.
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}
		metas = append(metas, simpledrop.ObjectMeta{
			Key:       entry.Name(),
			Size:      info.Size(),
			UpdatedAt: info.ModTime(),
		})
	}
	return metas, nil
}
