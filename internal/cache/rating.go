package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Kind selects one of the two reaction sets of a post.
type Kind string

const (
	KindLike    Kind = "likes"
	KindDislike Kind = "dis"
)

// Opposite returns the mutually exclusive counterpart set.
func (k Kind) Opposite() Kind {
	if k == KindLike {
		return KindDislike
	}
	return KindLike
}

// ErrStoreUnavailable wraps redis connectivity failures so the boundary can
// map them to a 502 without retrying.
var ErrStoreUnavailable = errors.New("rating store unavailable")

// RatingStore records which identities reacted to which post, one redis set
// per (kind, post). SADD's added-count is the only atomic guarantee callers
// may rely on.
type RatingStore interface {
	ConditionalAdd(ctx context.Context, kind Kind, postID uint, member string) (bool, error)
	Remove(ctx context.Context, kind Kind, postID uint, member string) error
	IsMember(ctx context.Context, kind Kind, postID uint, member string) (bool, error)
	Cardinality(ctx context.Context, kind Kind, postID uint) (int64, error)
	Members(ctx context.Context, kind Kind, postID uint) ([]string, error)
}

type ratingStore struct {
	rdb *redis.Client
}

func NewRatingStore(rdb *redis.Client) RatingStore { return &ratingStore{rdb: rdb} }

func key(kind Kind, postID uint) string {
	return fmt.Sprintf("%s:%d:set", kind, postID)
}

func (s *ratingStore) ConditionalAdd(ctx context.Context, kind Kind, postID uint, member string) (bool, error) {
	added, err := s.rdb.SAdd(ctx, key(kind, postID), member).Result()
	if err != nil {
		return false, fmt.Errorf("%w: sadd: %v", ErrStoreUnavailable, err)
	}
	return added == 1, nil
}

func (s *ratingStore) Remove(ctx context.Context, kind Kind, postID uint, member string) error {
	if err := s.rdb.SRem(ctx, key(kind, postID), member).Err(); err != nil {
		return fmt.Errorf("%w: srem: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *ratingStore) IsMember(ctx context.Context, kind Kind, postID uint, member string) (bool, error) {
	ok, err := s.rdb.SIsMember(ctx, key(kind, postID), member).Result()
	if err != nil {
		return false, fmt.Errorf("%w: sismember: %v", ErrStoreUnavailable, err)
	}
	return ok, nil
}

func (s *ratingStore) Cardinality(ctx context.Context, kind Kind, postID uint) (int64, error) {
	n, err := s.rdb.SCard(ctx, key(kind, postID)).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: scard: %v", ErrStoreUnavailable, err)
	}
	return n, nil
}

func (s *ratingStore) Members(ctx context.Context, kind Kind, postID uint) ([]string, error) {
	members, err := s.rdb.SMembers(ctx, key(kind, postID)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: smembers: %v", ErrStoreUnavailable, err)
	}
	return members, nil
}
