package memory

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/tendant/simple-drop/pkg/simpledrop"
)

type object struct {
	data      []byte
	updatedAt time.Time
}

// Backend is an in-memory implementation of the simpledrop.BlobStore
// interface, used for development and tests.
type Backend struct {
	mu      sync.RWMutex
	objects map[string]object
}

// New creates a new in-memory storage backend
func New() *Backend {
	return &Backend{
		objects: make(map[string]object),
	}
}

// Upload uploads content directly
func (b *Backend) Upload(ctx context.Context, objectKey string, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.objects[objectKey] = object{data: data, updatedAt: time.Now().UTC()}
	return nil
}

// Download downloads content directly
func (b *Backend) Download(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	obj, exists := b.objects[objectKey]
	if !exists {
		return nil, simpledrop.ErrObjectNotFound
	}

	return io.NopCloser(bytes.NewReader(obj.data)), nil
}

// Delete deletes content
func (b *Backend) Delete(ctx context.Context, objectKey string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.objects[objectKey]; !exists {
		return simpledrop.ErrObjectNotFound
	}

	delete(b.objects, objectKey)
	return nil
}

// List returns metadata for every stored object
func (b *Backend) List(ctx context.Context) ([]simpledrop.ObjectMeta, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	metas := make([]simpledrop.ObjectMeta, 0, len(b.objects))
	for key, obj := range b.objects {
		metas = append(metas, simpledrop.ObjectMeta{
			Key:       key,
			Size:      int64(len(obj.data)),
			UpdatedAt: obj.updatedAt,
		})
	}
	return metas, nil
}

// SetUpdatedAt overrides an object's last-modified timestamp. Only the
// retention tests need this; a real store assigns the timestamp on write.
func (b *Backend) SetUpdatedAt(objectKey string, t time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if obj, exists := b.objects[objectKey]; exists {
		obj.updatedAt = t
		b.objects[objectKey] = obj
	}
}
