package user

import (
	"context"

	userRepo "tutormatch/database/repository/user"
	"tutormatch/models"
)

type UserService interface {
	// CreateUser validates and stores a new teacher or student.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// InitialCoins is the balance every new user starts with.
const InitialCoins = 1
