package simpledrop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tendant/simple-drop/pkg/simpledrop/blobid"
	"github.com/tendant/simple-drop/pkg/simpledrop/metrics"
	"github.com/tendant/simple-drop/pkg/simpledrop/sniff"
)

// service implements the Service interface
type service struct {
	store   BlobStore
	keys    blobid.Generator
	metrics metrics.Metrics
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithBlobStore sets the blob store backing the service
func WithBlobStore(store BlobStore) Option {
	return func(s *service) {
		s.store = store
	}
}

// WithKeyGenerator sets the object key generator
func WithKeyGenerator(gen blobid.Generator) Option {
	return func(s *service) {
		s.keys = gen
	}
}

// WithMetrics sets the metrics sink
func WithMetrics(m metrics.Metrics) Option {
	return func(s *service) {
		s.metrics = m
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		keys:    blobid.NewUUIDGenerator(),
		metrics: metrics.Noop{},
	}

	for _, option := range options {
		option(s)
	}

	if s.store == nil {
		return nil, fmt.Errorf("blob store is required")
	}

	return s, nil
}

func (s *service) StoreFile(ctx context.Context, reader io.Reader) (string, error) {
	key := s.keys.NewKey()

	if err := s.store.Upload(ctx, key, reader); err != nil {
		return "", &StorageError{Key: key, Op: "upload", Err: err}
	}

	s.metrics.IncStored()
	return key, nil
}

func (s *service) FetchFile(ctx context.Context, key string) (*StoredFile, error) {
	rc, err := s.store.Download(ctx, key)
	if err != nil {
		return nil, &StorageError{Key: key, Op: "download", Err: err}
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, &StorageError{Key: key, Op: "download", Err: err}
	}

	s.metrics.IncFetched()
	return &StoredFile{
		Key:         key,
		Data:        data,
		ContentType: sniff.Detect(data),
	}, nil
}

func (s *service) RemoveFile(ctx context.Context, key string) error {
	if err := s.store.Delete(ctx, key); err != nil {
		return &StorageError{Key: key, Op: "delete", Err: err}
	}

	s.metrics.IncRemoved()
	return nil
}

func (s *service) SweepExpired(ctx context.Context, maxAge time.Duration) (int, error) {
	objects, err := s.store.List(ctx)
	if err != nil {
		return 0, &StorageError{Op: "list", Err: err}
	}

	now := time.Now().UTC()
	deleted := 0
	for _, obj := range objects {
		if now.Sub(obj.UpdatedAt) <= maxAge {
			continue
		}

		if err := s.store.Delete(ctx, obj.Key); err != nil {
			// An object already deleted by a concurrent request is not a
			// failure of the sweep.
			if errors.Is(err, ErrObjectNotFound) {
				continue
			}
			slog.Warn("sweep: failed to delete expired object", "key", obj.Key, "err", err)
			s.metrics.IncSweepErrors()
			continue
		}
		deleted++
	}

	s.metrics.AddSwept(deleted)
	return deleted, nil
}
