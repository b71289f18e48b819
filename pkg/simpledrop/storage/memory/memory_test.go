package memory_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/simple-drop/pkg/simpledrop"
	memorystorage "github.com/tendant/simple-drop/pkg/simpledrop/storage/memory"
)

func TestMemoryBackend(t *testing.T) {
	backend := memorystorage.New()
	ctx := context.Background()
	testKey := "650b397e-9ab0-47f0-b313-11e53b2acbd5"
	testData := "Hello, World! This is test data."

	t.Run("Upload", func(t *testing.T) {
		err := backend.Upload(ctx, testKey, strings.NewReader(testData))
		assert.NoError(t, err)
	})

	t.Run("Download", func(t *testing.T) {
		reader, err := backend.Download(ctx, testKey)
		require.NoError(t, err)
		defer reader.Close()

		data, err := io.ReadAll(reader)
		assert.NoError(t, err)
		assert.Equal(t, testData, string(data))
	})

	t.Run("List", func(t *testing.T) {
		metas, err := backend.List(ctx)
		require.NoError(t, err)
		require.Len(t, metas, 1)
		assert.Equal(t, testKey, metas[0].Key)
		assert.Equal(t, int64(len(testData)), metas[0].Size)
		assert.WithinDuration(t, time.Now().UTC(), metas[0].UpdatedAt, time.Minute)
	})

	t.Run("Delete", func(t *testing.T) {
		err := backend.Delete(ctx, testKey)
		assert.NoError(t, err)

		_, err = backend.Download(ctx, testKey)
		assert.ErrorIs(t, err, simpledrop.ErrObjectNotFound)
	})

	t.Run("ErrorCases", func(t *testing.T) {
		nonExistentKey := "nonexistent-key"

		reader, err := backend.Download(ctx, nonExistentKey)
		assert.ErrorIs(t, err, simpledrop.ErrObjectNotFound)
		assert.Nil(t, reader)

		err = backend.Delete(ctx, nonExistentKey)
		assert.ErrorIs(t, err, simpledrop.ErrObjectNotFound)
	})
}

func TestMemoryBackend_SetUpdatedAt(t *testing.T) {
	backend := memorystorage.New()
	ctx := context.Background()

	require.NoError(t, backend.Upload(ctx, "stale", strings.NewReader("x")))
	backdated := time.Now().UTC().Add(-31 * 24 * time.Hour)
	backend.SetUpdatedAt("stale", backdated)

	metas, err := backend.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, backdated, metas[0].UpdatedAt)
}

func TestMemoryBackendConcurrency(t *testing.T) {
	backend := memorystorage.New()
	ctx := context.Background()

	const numGoroutines = 10
	const numOperations = 50

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(goroutineID int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				key := fmt.Sprintf("concurrent-%d-%d", goroutineID, j)
				data := fmt.Sprintf("data-%d-%d", goroutineID, j)

				if err := backend.Upload(ctx, key, strings.NewReader(data)); err != nil {
					t.Errorf("upload %s: %v", key, err)
					return
				}

				reader, err := backend.Download(ctx, key)
				if err != nil {
					t.Errorf("download %s: %v", key, err)
					return
				}
				got, err := io.ReadAll(reader)
				reader.Close()
				if err != nil || string(got) != data {
					t.Errorf("roundtrip %s: got %q err %v", key, got, err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	metas, err := backend.List(ctx)
	require.NoError(t, err)
	assert.Len(t, metas, numGoroutines*numOperations)
}
