package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	directory "github.com/tair/feedback-service/internal/directory/domain"
	"github.com/tair/feedback-service/internal/favorite/domain"
	"github.com/tair/feedback-service/internal/testutil"
)

func TestCreate_SetsIDAndCreatedAt(t *testing.T) {
	repo := NewGormFavoriteRepository(testutil.NewDB(t))
	ctx := context.Background()

	fav := &domain.Favorite{UserID: testutil.AliceID, ProductID: testutil.LampID}
	require.NoError(t, repo.Create(ctx, fav))

	assert.NotZero(t, fav.ID)
	assert.False(t, fav.CreatedAt.IsZero())

	stored, err := repo.FindByID(ctx, fav.ID)
	require.NoError(t, err)
	m := stored.ToMap()
	assert.Equal(t, testutil.AliceID, m["user_id"])
	assert.Equal(t, testutil.LampID, m["product_id"])
	assert.True(t, fav.CreatedAt.Equal(stored.CreatedAt))
}

func TestCreate_UnknownReference(t *testing.T) {
	repo := NewGormFavoriteRepository(testutil.NewDB(t))
	ctx := context.Background()

	err := repo.Create(ctx, &domain.Favorite{UserID: 999, ProductID: testutil.LampID})
	assert.ErrorIs(t, err, domain.ErrUnknownReference)

	err = repo.Create(ctx, &domain.Favorite{UserID: testutil.AliceID, ProductID: 999})
	assert.ErrorIs(t, err, domain.ErrUnknownReference)
}

func TestCreate_DuplicatesAllowedAtStorageLevel(t *testing.T) {
	repo := NewGormFavoriteRepository(testutil.NewDB(t))
	ctx := context.Background()

	first := &domain.Favorite{UserID: testutil.AliceID, ProductID: testutil.LampID}
	second := &domain.Favorite{UserID: testutil.AliceID, ProductID: testutil.LampID}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	found, err := repo.FindByUserAndProduct(ctx, testutil.AliceID, testutil.LampID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestFindByUserAndProduct_NotFound(t *testing.T) {
	repo := NewGormFavoriteRepository(testutil.NewDB(t))

	_, err := repo.FindByUserAndProduct(context.Background(), testutil.BobID, testutil.KettleID)
	assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)

	_, err = repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)
}

func TestFindByUserAndByProduct(t *testing.T) {
	repo := NewGormFavoriteRepository(testutil.NewDB(t))
	ctx := context.Background()

	for _, f := range []domain.Favorite{
		{UserID: testutil.AliceID, ProductID: testutil.LampID},
		{UserID: testutil.AliceID, ProductID: testutil.KettleID},
		{UserID: testutil.BobID, ProductID: testutil.LampID},
	} {
		f := f
		require.NoError(t, repo.Create(ctx, &f))
	}

	byAlice, err := repo.FindByUser(ctx, testutil.AliceID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, byAlice, 2)
	// Newest first.
	assert.Equal(t, testutil.KettleID, byAlice[0].ProductID)

	byLamp, err := repo.FindByProduct(ctx, testutil.LampID, 1, 0)
	require.NoError(t, err)
	require.Len(t, byLamp, 1)
	assert.Equal(t, testutil.BobID, byLamp[0].UserID)

	count, err := repo.CountByProduct(ctx, testutil.LampID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestDelete(t *testing.T) {
	repo := NewGormFavoriteRepository(testutil.NewDB(t))
	ctx := context.Background()

	fav := &domain.Favorite{UserID: testutil.BobID, ProductID: testutil.KettleID}
	require.NoError(t, repo.Create(ctx, fav))

	require.NoError(t, repo.Delete(ctx, fav.ID))
	assert.ErrorIs(t, repo.Delete(ctx, fav.ID), domain.ErrFavoriteNotFound)
}

func TestDeleteByUserAndProduct(t *testing.T) {
	repo := NewGormFavoriteRepository(testutil.NewDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Favorite{UserID: testutil.AliceID, ProductID: testutil.LampID}))
	require.NoError(t, repo.Create(ctx, &domain.Favorite{UserID: testutil.AliceID, ProductID: testutil.KettleID}))
	require.NoError(t, repo.Create(ctx, &domain.Favorite{UserID: testutil.BobID, ProductID: testutil.KettleID}))

	n, err := repo.DeleteByUser(ctx, testutil.AliceID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.DeleteByProduct(ctx, testutil.KettleID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCascadeOnUserDelete(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewGormFavoriteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Favorite{UserID: testutil.BobID, ProductID: testutil.LampID}))
	require.NoError(t, db.Delete(&directory.User{}, testutil.BobID).Error)

	favs, err := repo.FindByUser(ctx, testutil.BobID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestTracingRepository_Delegates(t *testing.T) {
	repo := NewTracingFavoriteRepository(NewGormFavoriteRepository(testutil.NewDB(t)))
	ctx := context.Background()

	fav := &domain.Favorite{UserID: testutil.AliceID, ProductID: testutil.LampID}
	require.NoError(t, repo.Create(ctx, fav))
	assert.NotZero(t, fav.ID)

	found, err := repo.FindByUserAndProduct(ctx, testutil.AliceID, testutil.LampID)
	require.NoError(t, err)
	assert.Equal(t, fav.ID, found.ID)

	err = repo.Create(ctx, &domain.Favorite{UserID: 77, ProductID: testutil.LampID})
	assert.ErrorIs(t, err, domain.ErrUnknownReference)
}
