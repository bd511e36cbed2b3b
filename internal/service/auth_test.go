package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/leonidsliusar/webtronics-social/internal/repository"
)

func TestRegisterHashesPassword(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	user, err := auth.Register(ctx, RegisterInput{
		FirstName: "Foo",
		LastName:  "Bar",
		Email:     "foo@example.com",
		Password:  "Password1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "Password1", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Password1")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	input := RegisterInput{FirstName: "Foo", LastName: "Bar", Email: "foo@example.com", Password: "Password1"}
	_, err := auth.Register(ctx, input)
	require.NoError(t, err)

	_, err = auth.Register(ctx, input)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	_, err := auth.Register(ctx, RegisterInput{
		FirstName: "Foo", LastName: "Bar", Email: "foo@example.com", Password: "Password1",
	})
	require.NoError(t, err)

	user, err := auth.Authenticate(ctx, "foo@example.com", "Password1")
	require.NoError(t, err)
	assert.Equal(t, "foo@example.com", user.Email)

	_, err = auth.Authenticate(ctx, "foo@example.com", "WrongPass1")
	assert.ErrorIs(t, err, ErrInvalidPassword)

	_, err = auth.Authenticate(ctx, "ghost@example.com", "Password1")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}
