package command

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/feedback-service/internal/review/domain"
	"github.com/tair/feedback-service/internal/review/repository"
	"github.com/tair/feedback-service/internal/testutil"
)

type recordedEvent struct {
	eventType string
	review    domain.Review
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
	err    error
}

func (p *recordingPublisher) PublishReviewEvent(_ context.Context, eventType string, review *domain.Review) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{eventType: eventType, review: *review})
	return p.err
}

func newRepo(t *testing.T) domain.ReviewRepository {
	t.Helper()
	return repository.NewGormReviewRepository(testutil.NewDB(t))
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestCreateReview(t *testing.T) {
	repo := newRepo(t)
	events := &recordingPublisher{}
	h := NewCreateReviewHandler(repo, events)

	view, err := h.Handle(context.Background(), CreateReviewCommand{
		UserID:    testutil.AliceID,
		ProductID: testutil.LampID,
		Body:      "Bright and sturdy.",
		Rating:    5,
	})
	require.NoError(t, err)

	assert.NotZero(t, view.ID)
	assert.Equal(t, "alice", view.Username)
	assert.Equal(t, testutil.LampID, view.ProductID)
	assert.Equal(t, "Bright and sturdy.", view.Body)
	assert.Equal(t, 5, view.Rating)
	assert.False(t, view.CreatedAt.IsZero())
	assert.True(t, view.CreatedAt.Equal(view.UpdatedAt), "a new review has never been edited")

	require.Len(t, events.events, 1)
	assert.Equal(t, domain.EventReviewCreated, events.events[0].eventType)
	assert.Equal(t, view.ID, events.events[0].review.ID)
}

func TestCreateReview_Validation(t *testing.T) {
	h := NewCreateReviewHandler(newRepo(t), nil)
	ctx := context.Background()
	valid := CreateReviewCommand{UserID: testutil.BobID, ProductID: testutil.KettleID, Body: "ok", Rating: 3}

	tests := []struct {
		name   string
		mutate func(*CreateReviewCommand)
		target error
	}{
		{"rating too low", func(c *CreateReviewCommand) { c.Rating = 0 }, domain.ErrInvalidRating},
		{"rating too high", func(c *CreateReviewCommand) { c.Rating = 6 }, domain.ErrInvalidRating},
		{"blank body", func(c *CreateReviewCommand) { c.Body = "   " }, domain.ErrEmptyBody},
		{"unknown product", func(c *CreateReviewCommand) { c.ProductID = 999 }, domain.ErrUnknownReference},
		{"unknown user", func(c *CreateReviewCommand) { c.UserID = 999 }, domain.ErrUnknownReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := valid
			tt.mutate(&cmd)
			_, err := h.Handle(ctx, cmd)
			assert.ErrorIs(t, err, tt.target)
		})
	}

	_, err := h.Handle(ctx, CreateReviewCommand{ProductID: testutil.KettleID, Body: "x", Rating: 1})
	assert.Error(t, err)
	_, err = h.Handle(ctx, CreateReviewCommand{UserID: testutil.BobID, Body: "x", Rating: 1})
	assert.Error(t, err)
}

func TestCreateReview_PublishFailureIsNotFatal(t *testing.T) {
	events := &recordingPublisher{err: errors.New("broker down")}
	h := NewCreateReviewHandler(newRepo(t), events)

	view, err := h.Handle(context.Background(), CreateReviewCommand{
		UserID: testutil.BobID, ProductID: testutil.KettleID, Body: "Boils fast", Rating: 4,
	})
	require.NoError(t, err)
	assert.NotZero(t, view.ID)
	assert.Len(t, events.events, 1)
}

func seedReview(t *testing.T, repo domain.ReviewRepository) *domain.ReviewView {
	t.Helper()
	view, err := NewCreateReviewHandler(repo, nil).Handle(context.Background(), CreateReviewCommand{
		UserID: testutil.AliceID, ProductID: testutil.LampID, Body: "Good lamp", Rating: 4,
	})
	require.NoError(t, err)
	return view
}

func TestUpdateReview(t *testing.T) {
	repo := newRepo(t)
	original := seedReview(t, repo)
	events := &recordingPublisher{}
	h := NewUpdateReviewHandler(repo, events)
	ctx := context.Background()

	updated, err := h.Handle(ctx, UpdateReviewCommand{
		ID: original.ID, ActorID: testutil.AliceID, Rating: intPtr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)
	assert.Equal(t, "Good lamp", updated.Body, "unset fields keep their value")
	assert.True(t, updated.CreatedAt.Equal(original.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(original.UpdatedAt))

	again, err := h.Handle(ctx, UpdateReviewCommand{
		ID: original.ID, ActorID: testutil.AliceID, Body: strPtr("  Flickers now  "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Flickers now", again.Body)
	assert.Equal(t, 2, again.Rating)
	assert.True(t, again.UpdatedAt.After(updated.UpdatedAt))

	require.Len(t, events.events, 2)
	assert.Equal(t, domain.EventReviewUpdated, events.events[1].eventType)
}

func TestUpdateReview_Rejections(t *testing.T) {
	repo := newRepo(t)
	original := seedReview(t, repo)
	events := &recordingPublisher{}
	h := NewUpdateReviewHandler(repo, events)
	ctx := context.Background()

	_, err := h.Handle(ctx, UpdateReviewCommand{ID: original.ID, ActorID: testutil.BobID, Rating: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrNotAuthor)

	_, err = h.Handle(ctx, UpdateReviewCommand{ID: original.ID, ActorID: testutil.AliceID, Rating: intPtr(9)})
	assert.ErrorIs(t, err, domain.ErrInvalidRating)

	_, err = h.Handle(ctx, UpdateReviewCommand{ID: original.ID, ActorID: testutil.AliceID, Body: strPtr("")})
	assert.ErrorIs(t, err, domain.ErrEmptyBody)

	_, err = h.Handle(ctx, UpdateReviewCommand{ID: 999, ActorID: testutil.AliceID})
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)

	_, err = h.Handle(ctx, UpdateReviewCommand{ActorID: testutil.AliceID})
	assert.Error(t, err)

	assert.Empty(t, events.events)

	current, err := repo.FindByID(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, current.Rating)
}

func TestDeleteReview(t *testing.T) {
	repo := newRepo(t)
	original := seedReview(t, repo)
	events := &recordingPublisher{}
	h := NewDeleteReviewHandler(repo, events)
	ctx := context.Background()

	err := h.Handle(ctx, DeleteReviewCommand{ID: original.ID, ActorID: testutil.BobID})
	assert.ErrorIs(t, err, domain.ErrNotAuthor)

	require.NoError(t, h.Handle(ctx, DeleteReviewCommand{ID: original.ID, ActorID: testutil.AliceID}))
	_, err = repo.FindByID(ctx, original.ID)
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)

	require.Len(t, events.events, 1)
	assert.Equal(t, domain.EventReviewDeleted, events.events[0].eventType)
	assert.Equal(t, original.ID, events.events[0].review.ID)

	err = h.Handle(ctx, DeleteReviewCommand{ID: original.ID, ActorID: testutil.AliceID})
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
}

func TestPurgeReviews(t *testing.T) {
	repo := newRepo(t)
	create := NewCreateReviewHandler(repo, nil)
	ctx := context.Background()

	for _, cmd := range []CreateReviewCommand{
		{UserID: testutil.AliceID, ProductID: testutil.LampID, Body: "a", Rating: 5},
		{UserID: testutil.AliceID, ProductID: testutil.KettleID, Body: "b", Rating: 3},
		{UserID: testutil.BobID, ProductID: testutil.KettleID, Body: "c", Rating: 1},
	} {
		_, err := create.Handle(ctx, cmd)
		require.NoError(t, err)
	}

	h := NewPurgeReviewsHandler(repo)

	_, err := h.Handle(ctx, PurgeReviewsCommand{})
	assert.Error(t, err)
	_, err = h.Handle(ctx, PurgeReviewsCommand{UserID: testutil.AliceID, ProductID: testutil.LampID})
	assert.Error(t, err)

	removed, err := h.Handle(ctx, PurgeReviewsCommand{ProductID: testutil.KettleID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	removed, err = h.Handle(ctx, PurgeReviewsCommand{UserID: testutil.AliceID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestCreateReview_StorageErrorWrappedOnce(t *testing.T) {
	db := testutil.NewDB(t)
	h := NewCreateReviewHandler(repository.NewGormReviewRepository(db), nil)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = h.Handle(context.Background(), CreateReviewCommand{
		UserID:    testutil.AliceID,
		ProductID: testutil.LampID,
		Body:      "Bright",
		Rating:    4,
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 1, strings.Count(err.Error(), "failed to create review"), err.Error())
}

func TestCreateReview_InvalidInput(t *testing.T) {
	h := NewCreateReviewHandler(newRepo(t), nil)

	_, err := h.Handle(context.Background(), CreateReviewCommand{ProductID: testutil.LampID, Body: "x", Rating: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = h.Handle(context.Background(), CreateReviewCommand{UserID: testutil.AliceID, Body: "x", Rating: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
