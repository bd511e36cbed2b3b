package service

import (
	"context"
	"errors"

	"github.com/leonidsliusar/webtronics-social/internal/cache"
	"github.com/leonidsliusar/webtronics-social/internal/model"
	"github.com/leonidsliusar/webtronics-social/internal/repository"
)

var (
	ErrSelfReaction    = errors.New("cannot rate own post")
	ErrAlreadyLiked    = errors.New("post already liked")
	ErrAlreadyDisliked = errors.New("post already disliked")
	ErrNotLikedYet     = errors.New("post not liked yet")
	ErrNotDislikedYet  = errors.New("post not disliked yet")
)

// RatingTotals is the public snapshot of both reaction sets of a post.
type RatingTotals struct {
	TotalLikes       int64    `json:"total_likes"`
	LikeReviewers    []string `json:"user_set_likes"`
	TotalDislikes    int64    `json:"total_dislikes"`
	DislikeReviewers []string `json:"user_set_dislikes"`
}

// RatingService enforces at most one active reaction per (user, post) and
// mutual exclusion between the like and dislike sets. Every mutation returns
// the new cardinality of the touched set.
type RatingService interface {
	AddLike(ctx context.Context, user *model.User, postID uint) (int64, error)
	RemoveLike(ctx context.Context, user *model.User, postID uint) (int64, error)
	AddDislike(ctx context.Context, user *model.User, postID uint) (int64, error)
	RemoveDislike(ctx context.Context, user *model.User, postID uint) (int64, error)
	Totals(ctx context.Context, postID uint) (*RatingTotals, error)
}

type ratingService struct {
	posts      repository.PostRepository
	store      cache.RatingStore
	replicator *ReactionReplicator
}

func NewRatingService(posts repository.PostRepository, store cache.RatingStore, replicator *ReactionReplicator) RatingService {
	return &ratingService{posts: posts, store: store, replicator: replicator}
}

func (s *ratingService) AddLike(ctx context.Context, user *model.User, postID uint) (int64, error) {
	return s.react(ctx, user, postID, cache.KindLike, ErrAlreadyLiked, ErrAlreadyDisliked)
}

func (s *ratingService) AddDislike(ctx context.Context, user *model.User, postID uint) (int64, error) {
	return s.react(ctx, user, postID, cache.KindDislike, ErrAlreadyDisliked, ErrAlreadyLiked)
}

func (s *ratingService) RemoveLike(ctx context.Context, user *model.User, postID uint) (int64, error) {
	return s.retract(ctx, user, postID, cache.KindLike, ErrNotLikedYet)
}

func (s *ratingService) RemoveDislike(ctx context.Context, user *model.User, postID uint) (int64, error) {
	return s.retract(ctx, user, postID, cache.KindDislike, ErrNotDislikedYet)
}

// react runs the pre-mutation sequence: post lookup, self-reaction ban,
// opposite-set exclusivity, then the conditional add. Only the add itself is
// atomic; the exclusivity check can race a concurrent opposite reaction from
// the same identity. The window is narrow (a user double-clicking both
// buttons) and self-correcting, so it is left best-effort.
func (s *ratingService) react(ctx context.Context, user *model.User, postID uint, kind cache.Kind, errSameSet, errOppositeSet error) (int64, error) {
	post, err := s.posts.Get(ctx, postID)
	if err != nil {
		return 0, err
	}
	if post == nil {
		return 0, ErrPostNotFound
	}
	if post.OwnerID == user.ID {
		return 0, ErrSelfReaction
	}
	inOpposite, err := s.store.IsMember(ctx, kind.Opposite(), postID, user.Email)
	if err != nil {
		return 0, err
	}
	if inOpposite {
		return 0, errOppositeSet
	}
	added, err := s.store.ConditionalAdd(ctx, kind, postID, user.Email)
	if err != nil {
		return 0, err
	}
	if !added {
		return 0, errSameSet
	}
	if s.replicator != nil {
		s.replicator.EnqueueAdd(postID, user.Email, string(kind))
	}
	return s.store.Cardinality(ctx, kind, postID)
}

func (s *ratingService) retract(ctx context.Context, user *model.User, postID uint, kind cache.Kind, errNotSet error) (int64, error) {
	post, err := s.posts.Get(ctx, postID)
	if err != nil {
		return 0, err
	}
	if post == nil {
		return 0, ErrPostNotFound
	}
	isMember, err := s.store.IsMember(ctx, kind, postID, user.Email)
	if err != nil {
		return 0, err
	}
	if !isMember {
		return 0, errNotSet
	}
	if err := s.store.Remove(ctx, kind, postID, user.Email); err != nil {
		return 0, err
	}
	if s.replicator != nil {
		s.replicator.EnqueueRemove(postID, user.Email, string(kind))
	}
	return s.store.Cardinality(ctx, kind, postID)
}

func (s *ratingService) Totals(ctx context.Context, postID uint) (*RatingTotals, error) {
	likes, err := s.store.Cardinality(ctx, cache.KindLike, postID)
	if err != nil {
		return nil, err
	}
	likeReviewers, err := s.store.Members(ctx, cache.KindLike, postID)
	if err != nil {
		return nil, err
	}
	dislikes, err := s.store.Cardinality(ctx, cache.KindDislike, postID)
	if err != nil {
		return nil, err
	}
	dislikeReviewers, err := s.store.Members(ctx, cache.KindDislike, postID)
	if err != nil {
		return nil, err
	}
	return &RatingTotals{
		TotalLikes:       likes,
		LikeReviewers:    likeReviewers,
		TotalDislikes:    dislikes,
		DislikeReviewers: dislikeReviewers,
	}, nil
}
