package search

import (
	"context"
	"fmt"
	"strings"

	userRepo "tutormatch/database/repository/user"
	"tutormatch/models"
	"tutormatch/utils"

	"go.uber.org/zap"
)

// SearchService looks teachers up by the courses they offer.
type SearchService interface {
	FindByCourse(ctx context.Context, course string) ([]models.User, error)
	FindByCoursePrefix(ctx context.Context, prefix string) ([]models.User, error)
}

type DefaultSearchService struct {
	Repo userRepo.UserRepository
}

// FindByCourse returns users whose courses contain exactly course.
func (s *DefaultSearchService) FindByCourse(ctx context.Context, course string) ([]models.User, error) {
	if strings.TrimSpace(course) == "" {
		return nil, utils.ValidationError("Missing course name on request body")
	}
	users, err := s.Repo.FindByCourse(ctx, course)
	if err != nil {
		utils.GetLogger().Error("FindByCourse failed", zap.String("course", course), zap.Error(err))
		return nil, fmt.Errorf("failed to search courses: %w", err)
	}
	return notEmpty(users)
}

// FindByCoursePrefix returns users with a course beginning with prefix, ignoring case.
func (s *DefaultSearchService) FindByCoursePrefix(ctx context.Context, prefix string) ([]models.User, error) {
	if strings.TrimSpace(prefix) == "" {
		return nil, utils.ValidationError("Missing course name on request body")
	}
	users, err := s.Repo.FindByCoursePrefix(ctx, prefix)
	if err != nil {
		utils.GetLogger().Error("FindByCoursePrefix failed", zap.String("prefix", prefix), zap.Error(err))
		return nil, fmt.Errorf("failed to search courses: %w", err)
	}
	return notEmpty(users)
}

func notEmpty(users []models.User) ([]models.User, error) {
	if len(users) == 0 {
		return nil, utils.NotFoundError("Course not found")
	}
	return users, nil
}
