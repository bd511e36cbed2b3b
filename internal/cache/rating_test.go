package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (RatingStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRatingStore(rdb), mr
}

func TestConditionalAdd(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	added, err := store.ConditionalAdd(ctx, KindLike, 1, "b@example.com")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = store.ConditionalAdd(ctx, KindLike, 1, "b@example.com")
	require.NoError(t, err)
	assert.False(t, added)

	n, err := store.Cardinality(ctx, KindLike, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestKeysAreScopedPerKindAndPost(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	_, err := store.ConditionalAdd(ctx, KindLike, 7, "b@example.com")
	require.NoError(t, err)
	_, err = store.ConditionalAdd(ctx, KindDislike, 7, "c@example.com")
	require.NoError(t, err)

	assert.True(t, mr.Exists("likes:7:set"))
	assert.True(t, mr.Exists("dis:7:set"))

	n, err := store.Cardinality(ctx, KindLike, 7)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = store.Cardinality(ctx, KindDislike, 7)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestRemoveAndMembers(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	_, err := store.ConditionalAdd(ctx, KindLike, 2, "b@example.com")
	require.NoError(t, err)
	_, err = store.ConditionalAdd(ctx, KindLike, 2, "c@example.com")
	require.NoError(t, err)

	members, err := store.Members(ctx, KindLike, 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"b@example.com", "c@example.com"}, members)

	require.NoError(t, store.Remove(ctx, KindLike, 2, "b@example.com"))

	ok, err := store.IsMember(ctx, KindLike, 2, "b@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := store.Cardinality(ctx, KindLike, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestStoreUnavailable(t *testing.T) {
	store, mr := setupStore(t)
	mr.Close()
	ctx := context.Background()

	_, err := store.ConditionalAdd(ctx, KindLike, 1, "b@example.com")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	_, err = store.Cardinality(ctx, KindLike, 1)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestOpposite(t *testing.T) {
	assert.Equal(t, KindDislike, KindLike.Opposite())
	assert.Equal(t, KindLike, KindDislike.Opposite())
}
