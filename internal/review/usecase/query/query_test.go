package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/feedback-service/internal/review/domain"
	"github.com/tair/feedback-service/internal/review/repository"
	"github.com/tair/feedback-service/internal/testutil"
)

func seed(t *testing.T) domain.ReviewRepository {
	t.Helper()
	repo := repository.NewGormReviewRepository(testutil.NewDB(t))
	ctx := context.Background()

	for _, r := range []domain.Review{
		{UserID: testutil.AliceID, ProductID: testutil.LampID, Body: "Great light", Rating: 5},
		{UserID: testutil.BobID, ProductID: testutil.LampID, Body: "Too dim", Rating: 2},
		{UserID: testutil.AliceID, ProductID: testutil.KettleID, Body: "Fine", Rating: 3},
	} {
		review := r
		require.NoError(t, repo.Create(ctx, &review))
	}
	return repo
}

func TestGetReview(t *testing.T) {
	repo := seed(t)
	h := NewGetReviewHandler(repo)
	ctx := context.Background()

	view, err := h.Handle(ctx, GetReviewQuery{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, "alice", view.Username)
	assert.Equal(t, 5, view.Rating)

	_, err = h.Handle(ctx, GetReviewQuery{ID: 404})
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)

	_, err = h.Handle(ctx, GetReviewQuery{})
	assert.Error(t, err)
}

func TestListProductReviews(t *testing.T) {
	h := NewListProductReviewsHandler(seed(t))
	ctx := context.Background()

	page, err := h.Handle(ctx, ListProductReviewsQuery{ProductID: testutil.LampID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Reviews, 2)
	assert.Equal(t, "bob", page.Reviews[0].Username, "newest first")
	assert.Equal(t, "alice", page.Reviews[1].Username)

	page, err = h.Handle(ctx, ListProductReviewsQuery{ProductID: testutil.LampID, Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Reviews, 1)
	assert.Equal(t, "alice", page.Reviews[0].Username)

	_, err = h.Handle(ctx, ListProductReviewsQuery{})
	assert.Error(t, err)
}

func TestListUserReviews(t *testing.T) {
	h := NewListUserReviewsHandler(seed(t))
	ctx := context.Background()

	reviews, err := h.Handle(ctx, ListUserReviewsQuery{UserID: testutil.AliceID})
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, testutil.KettleID, reviews[0].ProductID)
	assert.Equal(t, testutil.LampID, reviews[1].ProductID)

	reviews, err = h.Handle(ctx, ListUserReviewsQuery{UserID: 999})
	require.NoError(t, err)
	assert.Empty(t, reviews)

	_, err = h.Handle(ctx, ListUserReviewsQuery{})
	assert.Error(t, err)
}

func TestGetRatingSummary(t *testing.T) {
	h := NewGetRatingSummaryHandler(seed(t))
	ctx := context.Background()

	summary, err := h.Handle(ctx, GetRatingSummaryQuery{ProductID: testutil.LampID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalCount)
	assert.InDelta(t, 3.5, summary.AverageRating, 1e-9)

	empty, err := h.Handle(ctx, GetRatingSummaryQuery{ProductID: 999})
	require.NoError(t, err)
	assert.Zero(t, empty.TotalCount)
	assert.Zero(t, empty.AverageRating)

	_, err = h.Handle(ctx, GetRatingSummaryQuery{})
	assert.Error(t, err)
}

func TestPageLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, PageLimit(0))
	assert.Equal(t, 20, PageLimit(20))
	assert.Equal(t, MaxLimit, PageLimit(1_000_000))
}

func TestQueries_RejectZeroIDs(t *testing.T) {
	repo := seed(t)
	ctx := context.Background()

	_, err := NewGetReviewHandler(repo).Handle(ctx, GetReviewQuery{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = NewListProductReviewsHandler(repo).Handle(ctx, ListProductReviewsQuery{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = NewListUserReviewsHandler(repo).Handle(ctx, ListUserReviewsQuery{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
