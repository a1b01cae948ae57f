package querystats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCountsAndRanks(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.IncrementQuery(ctx, "psi now", "PSI now?"))
	require.NoError(t, store.IncrementQuery(ctx, "psi now", "psi NOW"))
	require.NoError(t, store.IncrementQuery(ctx, "weather in jurong", "Weather in Jurong?"))

	top, err := store.TopQueries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	require.Equal(t, "PSI now?", top[0].Query)
	require.Equal(t, int64(2), top[0].Count)
	require.Equal(t, "Weather in Jurong?", top[1].Query)
}

func TestMemoryStoreLimit(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	for _, q := range []string{"a", "b", "c"} {
		require.NoError(t, store.IncrementQuery(ctx, q, q))
	}
	top, err := store.TopQueries(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
}

func TestMemoryStoreIgnoresEmptyCanonical(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.IncrementQuery(context.Background(), "", "???"))
	top, err := store.TopQueries(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, top)
}
