package model

import "time"

// Post is user content. OwnerID never changes after creation; ModifierID
// records who made the last edit (the owner or an admin).
type Post struct {
	ID         uint      `gorm:"primaryKey" json:"post_id"`
	Title      string    `gorm:"type:varchar(60);not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	OwnerID    string    `gorm:"type:varchar(36);index:idx_post_owner;not null" json:"owner_id"`
	ModifierID string    `gorm:"type:varchar(36)" json:"modify_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"update_at"`
}

func (Post) TableName() string { return "posts" }
