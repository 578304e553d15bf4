package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/chronoquest/internal/repository/memory"
)

func TestKeyValueStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKeyValueStore()

	_, ok, err := store.Get(ctx, "chronoStreak")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "chronoStreak", "3"))
	require.NoError(t, store.Set(ctx, "chronoStreak", "4"))

	v, ok, err := store.Get(ctx, "chronoStreak")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "4", v)
}
