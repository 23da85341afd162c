package userRepo

import (
	"context"
	"errors"

	"tutormatch/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionName is the collection holding teachers and students.
const CollectionName = "users"

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// ErrPartialAppointment is returned when the teacher side of an appointment was
// written but the student side was not. Nothing is rolled back.
var ErrPartialAppointment = errors.New("appointment partially recorded")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create assigns an identifier and inserts the user.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its store identifier.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// FindByCourse returns users whose courses contain the exact value.
	FindByCourse(ctx context.Context, course string) ([]models.User, error)
	// FindByCoursePrefix returns users with a course starting with prefix, ignoring case.
	FindByCoursePrefix(ctx context.Context, prefix string) ([]models.User, error)
	// PushAndIncrement appends value to pushField and adds delta to incField in one update.
	PushAndIncrement(ctx context.Context, id primitive.ObjectID, pushField string, value any, incField string, delta int) error
	// RecordAppointment embeds appt in both users and moves one coin from student to teacher.
	RecordAppointment(ctx context.Context, teacherID, studentID primitive.ObjectID, appt models.Appointment) error
}
