package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonidsliusar/webtronics-social/internal/repository"
)

func TestOwnerCanEditOwnPost(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostService(repository.NewPostRepository(db))
	ctx := context.Background()
	owner := seedUser(t, db, "a@example.com", false)
	post := seedPost(t, db, owner)

	updated, err := posts.Update(ctx, owner, post.ID, UpdatePostInput{Title: "new title"})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "content", updated.Content)
	assert.Equal(t, owner.ID, updated.OwnerID)
	assert.Equal(t, owner.ID, updated.ModifierID)
}

func TestAdminEditKeepsOwnerSetsModifier(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostService(repository.NewPostRepository(db))
	ctx := context.Background()
	owner := seedUser(t, db, "a@example.com", false)
	admin := seedUser(t, db, "c@example.com", true)
	post := seedPost(t, db, owner)

	updated, err := posts.Update(ctx, admin, post.ID, UpdatePostInput{Content: "moderated"})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, updated.OwnerID)
	assert.Equal(t, admin.ID, updated.ModifierID)

	stored, err := posts.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "moderated", stored.Content)
	assert.Equal(t, admin.ID, stored.ModifierID)
}

func TestNonOwnerCannotEditOrDelete(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostService(repository.NewPostRepository(db))
	ctx := context.Background()
	owner := seedUser(t, db, "a@example.com", false)
	other := seedUser(t, db, "d@example.com", false)
	post := seedPost(t, db, owner)

	_, err := posts.Update(ctx, other, post.ID, UpdatePostInput{Title: "hijack"})
	assert.ErrorIs(t, err, ErrNotAuthorized)

	err = posts.Delete(ctx, other, post.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestGuardOnMissingPost(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostService(repository.NewPostRepository(db))
	ctx := context.Background()
	user := seedUser(t, db, "a@example.com", false)

	_, err := posts.Get(ctx, 404)
	assert.ErrorIs(t, err, ErrPostNotFound)
	_, err = posts.Update(ctx, user, 404, UpdatePostInput{Title: "t"})
	assert.ErrorIs(t, err, ErrPostNotFound)
	err = posts.Delete(ctx, user, 404)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestAdminCanDelete(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostService(repository.NewPostRepository(db))
	ctx := context.Background()
	owner := seedUser(t, db, "a@example.com", false)
	admin := seedUser(t, db, "c@example.com", true)
	post := seedPost(t, db, owner)

	require.NoError(t, posts.Delete(ctx, admin, post.ID))

	_, err := posts.Get(ctx, post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestListPagination(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostService(repository.NewPostRepository(db))
	ctx := context.Background()
	owner := seedUser(t, db, "a@example.com", false)
	for i := 0; i < 15; i++ {
		seedPost(t, db, owner)
	}

	page0, err := posts.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, page0, 10)

	page1, err := posts.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page1, 5)

	// out-of-range limits fall back to the default page size
	fallback, err := posts.List(ctx, 0, 1000)
	require.NoError(t, err)
	assert.Len(t, fallback, 10)
}
