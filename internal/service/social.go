package service

import (
	"context"

	"github.com/eventease/eventease/internal/model"
	"github.com/eventease/eventease/internal/repository"
)

// LikeStore persists the like relation.
type LikeStore interface {
	Toggle(ctx context.Context, eventID, userID string) (liked bool, err error)
}

// ReviewStore persists reviews.
type ReviewStore interface {
	Upsert(ctx context.Context, rev *model.Review) (*model.Review, error)
	ListByEvent(ctx context.Context, eventID string) ([]model.Review, error)
}

// CounterRefresher recomputes an event's denormalized social counters from
// the like and review tables. The counters are a derived view; this service
// never increments them directly.
type CounterRefresher interface {
	GetByID(ctx context.Context, id string) (*model.Event, error)
	RefreshSocialCounters(ctx context.Context, eventID string) error
}

// SocialService handles like toggling and review upserts.
type SocialService struct {
	likes   LikeStore
	reviews ReviewStore
	events  CounterRefresher
}

// NewSocialService constructs a SocialService.
func NewSocialService(likes LikeStore, reviews ReviewStore, events CounterRefresher) *SocialService {
	return &SocialService{likes: likes, reviews: reviews, events: events}
}

// LikeResult reports the state after a toggle.
type LikeResult struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

// ToggleLike flips the actor's like on an approved event and refreshes the
// event's likes counter from the like table.
func (s *SocialService) ToggleLike(ctx context.Context, actor model.Actor, eventID string) (*LikeResult, error) {
	event, err := s.visibleEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	liked, err := s.likes.Toggle(ctx, event.ID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.events.RefreshSocialCounters(ctx, event.ID); err != nil {
		return nil, err
	}

	refreshed, err := s.events.GetByID(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	return &LikeResult{Liked: liked, Likes: refreshed.Likes}, nil
}

// SubmitReview creates or updates the actor's review for an approved event
// and refreshes the event's average rating. A second submit for the same
// event updates the existing row in place.
func (s *SocialService) SubmitReview(ctx context.Context, actor model.Actor, eventID string, req model.ReviewRequest) (*model.Review, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	event, err := s.visibleEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	rev, err := s.reviews.Upsert(ctx, &model.Review{
		EventID: event.ID,
		UserID:  actor.UserID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return nil, err
	}
	if err := s.events.RefreshSocialCounters(ctx, event.ID); err != nil {
		return nil, err
	}
	return rev, nil
}

// ListReviews returns an event's reviews with reviewer names.
func (s *SocialService) ListReviews(ctx context.Context, eventID string) ([]model.Review, error) {
	if _, err := s.visibleEvent(ctx, eventID); err != nil {
		return nil, err
	}
	return s.reviews.ListByEvent(ctx, eventID)
}

func (s *SocialService) visibleEvent(ctx context.Context, eventID string) (*model.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != model.EventApproved {
		return nil, repository.ErrNotFound
	}
	return event, nil
}

var (
	_ LikeStore        = (*repository.LikeRepository)(nil)
	_ ReviewStore      = (*repository.ReviewRepository)(nil)
	_ CounterRefresher = (*repository.EventRepository)(nil)
)
