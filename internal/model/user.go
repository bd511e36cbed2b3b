package model

import "time"

type User struct {
	ID        string `gorm:"primaryKey;type:varchar(36)" json:"user_id"`
	FirstName string `gorm:"type:varchar(35);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(35);not null" json:"last_name"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_email" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	IsAdmin   bool   `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (User) TableName() string { return "users" }
