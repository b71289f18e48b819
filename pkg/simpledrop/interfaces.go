package simpledrop

import (
	"context"
	"io"
	"time"
)

// BlobStore defines the interface the relay requires from a durable store.
// Absence of a key is reported as ErrObjectNotFound, never as a nil reader.
type BlobStore interface {
	// Upload uploads content under the given key
	Upload(ctx context.Context, objectKey string, reader io.Reader) error

	// Download returns a reader over the content stored under the key
	Download(ctx context.Context, objectKey string) (io.ReadCloser, error)

	// Delete removes the content stored under the key
	Delete(ctx context.Context, objectKey string) error

	// List returns metadata for every stored object
	List(ctx context.Context) ([]ObjectMeta, error)
}

// ObjectMeta contains metadata about an object in storage. UpdatedAt is
// assigned by the store on write and drives retention.
type ObjectMeta struct {
	Key       string
	Size      int64
	UpdatedAt time.Time
}
