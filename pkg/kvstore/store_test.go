package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the shared Store contract against one driver.
func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, found, err := store.Load(ctx, "classes")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save(ctx, "classes", `[{"id":"c1"}]`))
	value, found, err := store.Load(ctx, "classes")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"c1"}]`, value)

	require.NoError(t, store.Save(ctx, "classes", `[]`))
	value, _, err = store.Load(ctx, "classes")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value, "last write wins")

	require.NoError(t, store.Save(ctx, "theme", "dark"))
	value, _, err = store.Load(ctx, "classes")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value, "keys are independent")

	assert.ErrorIs(t, store.Save(ctx, "../escape", "x"), ErrInvalidKey)
	_, _, err = store.Load(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(nil)
	exerciseStore(t, store)
	assert.Equal(t, 3, store.Saves())
}

func TestMemoryStoreSeedIsCopied(t *testing.T) {
	seed := map[string]string{"tasks": "[]"}
	store := NewMemoryStore(seed)
	seed["tasks"] = "changed"

	value, found, err := store.Load(context.Background(), "tasks")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", value)
}
