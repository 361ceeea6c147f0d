package service

import (
	"context"
	"testing"
	"time"

	"github.com/eventease/eventease/internal/model"
	"github.com/eventease/eventease/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSocialFixture(t *testing.T) (*SocialService, *memStore) {
	t.Helper()
	store := newMemStore()
	svc := NewSocialService(likeStore{store}, reviewStore{store}, store)
	return svc, store
}

func socialEvent(store *memStore) *model.Event {
	return store.addEvent(model.Event{
		Name:          "Jazz Night",
		Category:      "music",
		Status:        model.EventApproved,
		TotalCapacity: 50,
		EventDate:     time.Now().AddDate(0, 1, 0),
	})
}

func TestToggleLikeRoundTrip(t *testing.T) {
	svc, store := newSocialFixture(t)
	event := socialEvent(store)
	actor := model.Actor{UserID: "user-1"}
	ctx := context.Background()

	first, err := svc.ToggleLike(ctx, actor, event.ID)
	require.NoError(t, err)
	assert.True(t, first.Liked)
	assert.Equal(t, 1, first.Likes)

	second, err := svc.ToggleLike(ctx, actor, event.ID)
	require.NoError(t, err)
	assert.False(t, second.Liked)
	assert.Equal(t, 0, second.Likes, "two toggles must return to the original state")
}

func TestToggleLikeCountsDistinctUsers(t *testing.T) {
	svc, store := newSocialFixture(t)
	event := socialEvent(store)
	ctx := context.Background()

	_, err := svc.ToggleLike(ctx, model.Actor{UserID: "a"}, event.ID)
	require.NoError(t, err)
	result, err := svc.ToggleLike(ctx, model.Actor{UserID: "b"}, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Likes)
}

func TestToggleLikeUnapprovedEvent(t *testing.T) {
	svc, store := newSocialFixture(t)
	event := socialEvent(store)
	store.events[event.ID].Status = model.EventPending

	_, err := svc.ToggleLike(context.Background(), model.Actor{UserID: "a"}, event.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSubmitReviewUpsertsInPlace(t *testing.T) {
	svc, store := newSocialFixture(t)
	event := socialEvent(store)
	actor := model.Actor{UserID: "user-1"}
	ctx := context.Background()

	first, err := svc.SubmitReview(ctx, actor, event.ID, model.ReviewRequest{Rating: 5, Comment: "great"})
	require.NoError(t, err)

	second, err := svc.SubmitReview(ctx, actor, event.ID, model.ReviewRequest{Rating: 2, Comment: "changed my mind"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "resubmitting must update the same row")
	assert.Equal(t, 2, second.Rating)
	assert.Equal(t, "changed my mind", second.Comment)

	reviews, err := svc.ListReviews(ctx, event.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestSubmitReviewRefreshesAverageRating(t *testing.T) {
	svc, store := newSocialFixture(t)
	event := socialEvent(store)
	ctx := context.Background()

	_, err := svc.SubmitReview(ctx, model.Actor{UserID: "a"}, event.ID, model.ReviewRequest{Rating: 5})
	require.NoError(t, err)
	_, err = svc.SubmitReview(ctx, model.Actor{UserID: "b"}, event.ID, model.ReviewRequest{Rating: 2})
	require.NoError(t, err)

	refreshed, err := store.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, refreshed.Rating, 0.001)
}

func TestSubmitReviewRejectsOutOfRangeRating(t *testing.T) {
	svc, store := newSocialFixture(t)
	event := socialEvent(store)
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.SubmitReview(ctx, model.Actor{UserID: "a"}, event.ID, model.ReviewRequest{Rating: rating})
		assert.Error(t, err, "rating %d must be rejected", rating)
	}
}
