package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/leonidsliusar/webtronics-social/internal/model"
)

type ReactionRepository interface {
	Create(ctx context.Context, postID uint, reviewer, kind string) error
	Delete(ctx context.Context, postID uint, reviewer, kind string) error
	CountByPost(ctx context.Context, postID uint, kind string) (int64, error)
}

type reactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) ReactionRepository { return &reactionRepository{db: db} }

func (r *reactionRepository) Create(ctx context.Context, postID uint, reviewer, kind string) error {
	rec := &model.Reaction{ID: uuid.New().String(), PostID: postID, Reviewer: reviewer, Kind: kind}
	// idempotent: replaying a reaction that already landed is not an error
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rec).Error
}

func (r *reactionRepository) Delete(ctx context.Context, postID uint, reviewer, kind string) error {
	return r.db.WithContext(ctx).
		Where("post_id = ? AND reviewer = ? AND kind = ?", postID, reviewer, kind).
		Delete(&model.Reaction{}).Error
}

func (r *reactionRepository) CountByPost(ctx context.Context, postID uint, kind string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Reaction{}).
		Where("post_id = ? AND kind = ?", postID, kind).
		Count(&cnt).Error
	return cnt, err
}
