package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "tutormatch/database/repository/user"
	"tutormatch/models"
	"tutormatch/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetUserByID retrieves a user by its store identifier.
func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, utils.ValidationError("Missing teacher ID on request body")
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ValidationError(fmt.Sprintf("Invalid ID %q", id))
	}

	found, err := s.Repo.GetByID(ctx, oid)
	if errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, utils.NotFoundError("Teacher not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return found, nil
}

// GetUserByEmail retrieves a user by email.
func (s *DefaultUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, utils.ValidationError("Missing User email on request body")
	}

	found, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, utils.NotFoundError("User with this email not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return found, nil
}
