package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cinebook/cinema-booking/internal/repository"
)

func TestUserCreate(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newMockUserStore(), bcrypt.MinCost)

	in := CreateUserInput{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password:  "correct horse",
	}
	u, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Ada Lovelace", u.FullName())

	// Stored hash must verify against the plain password and never equal it.
	assert.NotEqual(t, in.Password, u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)))

	_, err = svc.Create(ctx, in)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserGet(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newMockUserStore(), bcrypt.MinCost)

	u, err := svc.Create(ctx, CreateUserInput{
		Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", Password: "correct horse",
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	_, err = svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
