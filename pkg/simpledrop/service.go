package simpledrop

import (
	"context"
	"io"
	"time"
)

// StoredFile is the result of fetching an object: the raw bytes plus the
// content type sniffed from them at fetch time.
type StoredFile struct {
	Key         string
	Data        []byte
	ContentType string
}

// Service defines the object-lifecycle operations of the relay
type Service interface {
	// StoreFile writes the reader's bytes under a fresh unguessable key and
	// returns that key
	StoreFile(ctx context.Context, reader io.Reader) (string, error)

	// FetchFile returns the bytes stored under key together with the
	// content type sniffed from them
	FetchFile(ctx context.Context, key string) (*StoredFile, error)

	// RemoveFile deletes the object stored under key
	RemoveFile(ctx context.Context, key string) error

	// SweepExpired deletes every object whose age exceeds maxAge and
	// returns the number of objects deleted. Per-object delete failures are
	// logged and skipped.
	SweepExpired(ctx context.Context, maxAge time.Duration) (int, error)
}
