package model

import "time"

// Reaction is the relational redundancy of a redis set member, one row per
// (post, reviewer, kind). The redis sets stay authoritative for counts.
type Reaction struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	PostID    uint   `gorm:"index:idx_reaction_post;index:idx_reaction_member,unique;not null"`
	Reviewer  string `gorm:"type:varchar(255);not null;index:idx_reaction_member,unique"`
	Kind      string `gorm:"type:varchar(8);not null;index:idx_reaction_member,unique"`
	CreatedAt time.Time
}

func (Reaction) TableName() string { return "reactions" }
