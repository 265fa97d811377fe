package storage_test

import (
	"context"
	"testing"

	"eventboard/internal/model"
	"eventboard/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - starts with the initial collection", func(t *testing.T) {
		store := storage.NewMemoryStorage(storage.SeedEvents())

		loaded, err := store.Load(ctx)

		require.NoError(t, err)
		assert.Len(t, loaded, 5)
	})

	t.Run("Success - save replaces prior content", func(t *testing.T) {
		store := storage.NewMemoryStorage(storage.SeedEvents())

		require.NoError(t, store.Save(ctx, []model.Event{{ID: "9", Title: "Only one"}}))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "9", loaded[0].ID)
	})

	t.Run("Success - load returns a copy", func(t *testing.T) {
		store := storage.NewMemoryStorage(storage.SeedEvents())

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		loaded[0].Title = "mutated"

		again, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "React Conference 2024", again[0].Title)
	})
}
