package service

import (
	"context"
	"errors"

	"github.com/cinebook/cinema-booking/internal/model"
	"github.com/cinebook/cinema-booking/internal/repository"
	"github.com/cinebook/cinema-booking/internal/utils"
)

// UserService implements account creation and lookup.  There is no login
// surface; the password is hashed at creation and never read back out.
type UserService struct {
	users      UserStore
	bcryptCost int
}

// NewUserService constructs a UserService with the given bcrypt cost.
func NewUserService(users UserStore, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// CreateUserInput is the validated payload for creating a user.
type CreateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// Create adds a user, rejecting duplicate emails.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}
	hash, err := utils.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	u := model.NewUser(in.Email, in.FirstName, in.LastName, hash)
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return u, nil
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}
