package user

import (
	"context"
	"fmt"

	"tutormatch/models"
	"tutormatch/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CreateUser validates the request and persists a new user with the starting
// coin balance and no reviews or appointments.
func (s *DefaultUserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if field := firstMissingField(req.Name, req.Email, req.Cellphone); field != "" {
		return nil, utils.ValidationError("Missing body parameter: " + field)
	}

	if req.IsTeacher {
		switch {
		case len(req.Courses) == 0:
			return nil, utils.ValidationError("Missing body parameter: courses")
		case len(req.AvailableHours) == 0:
			return nil, utils.ValidationError("Missing body parameter: available_hours")
		case len(req.AvailableLocations) == 0:
			return nil, utils.ValidationError("Missing body parameter: available_locations")
		}
	}

	hours, err := normalizeAvailableHours(req.AvailableHours)
	if err != nil {
		return nil, utils.ValidationError(err.Error())
	}

	newUser := models.User{
		Name:               req.Name,
		Email:              req.Email,
		Cellphone:          req.Cellphone,
		IsTeacher:          req.IsTeacher,
		Coins:              InitialCoins,
		Courses:            req.Courses,
		AvailableHours:     hours,
		AvailableLocations: req.AvailableLocations,
		Reviews:            []bson.M{},
		Appointments:       []models.Appointment{},
	}
	newUser.Normalize()

	if err := s.Repo.Create(ctx, &newUser); err != nil {
		utils.GetLogger().Error("CreateUser: failed to create user", zap.String("email", req.Email), zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	utils.GetLogger().Debug("CreateUser success",
		zap.String("userID", newUser.HexID()),
		zap.Bool("teacher", newUser.IsTeacher))
	return &newUser, nil
}
