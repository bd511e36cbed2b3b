package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/leonidsliusar/webtronics-social/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	// a single connection keeps every goroutine on the same in-memory DB
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Post{}, &model.Reaction{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, admin bool) *model.User {
	t.Helper()
	u := &model.User{
		ID:        uuid.New().String(),
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "hash",
		IsAdmin:   admin,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedPost(t *testing.T, db *gorm.DB, owner *model.User) *model.Post {
	t.Helper()
	p := &model.Post{Title: "title", Content: "content", OwnerID: owner.ID, ModifierID: owner.ID}
	require.NoError(t, db.Create(p).Error)
	return p
}
