package userRepo

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"tutormatch/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryUserRepo implements UserRepository in process memory. It backs
// STORE_DRIVER=memory and the service tests.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
	order []primitive.ObjectID
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[primitive.ObjectID]models.User)}
}

func (r *MemoryUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, exists := r.users[user.ID]; exists {
		return fmt.Errorf("failed to create user: duplicate id %s", user.ID.Hex())
	}
	user.Normalize()
	r.users[user.ID] = cloneUser(*user)
	r.order = append(r.order, user.ID)
	return nil
}

func (r *MemoryUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	out := cloneUser(u)
	return &out, nil
}

func (r *MemoryUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if u := r.users[id]; u.Email == email {
			out := cloneUser(u)
			return &out, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *MemoryUserRepo) FindByCourse(_ context.Context, course string) ([]models.User, error) {
	return r.filter(func(c string) bool { return c == course }), nil
}

func (r *MemoryUserRepo) FindByCoursePrefix(_ context.Context, prefix string) ([]models.User, error) {
	lower := strings.ToLower(prefix)
	return r.filter(func(c string) bool { return strings.HasPrefix(strings.ToLower(c), lower) }), nil
}

func (r *MemoryUserRepo) filter(match func(course string) bool) []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := []models.User{}
	for _, id := range r.order {
		u := r.users[id]
		if slices.ContainsFunc(u.Courses, match) {
			users = append(users, cloneUser(u))
		}
	}
	return users
}

// PushAndIncrement supports the fields the booking flow writes: appointments
// and coins.
func (r *MemoryUserRepo) PushAndIncrement(_ context.Context, id primitive.ObjectID, pushField string, value any, incField string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user with id %s: %w", id.Hex(), ErrUserNotFound)
	}

	switch pushField {
	case "appointments":
		appt, ok := value.(models.Appointment)
		if !ok {
			return fmt.Errorf("cannot push %T onto appointments", value)
		}
		u.Appointments = append(slices.Clone(u.Appointments), appt)
	case "reviews":
		review, ok := value.(bson.M)
		if !ok {
			return fmt.Errorf("cannot push %T onto reviews", value)
		}
		u.Reviews = append(slices.Clone(u.Reviews), review)
	default:
		return fmt.Errorf("unsupported push field %q", pushField)
	}

	if incField != "coins" {
		return fmt.Errorf("unsupported increment field %q", incField)
	}
	u.Coins += delta

	r.users[id] = u
	return nil
}

func (r *MemoryUserRepo) RecordAppointment(ctx context.Context, teacherID, studentID primitive.ObjectID, appt models.Appointment) error {
	return recordAppointment(ctx, r, teacherID, studentID, appt)
}

func cloneUser(u models.User) models.User {
	out := u
	out.Courses = slices.Clone(u.Courses)
	out.AvailableLocations = slices.Clone(u.AvailableLocations)
	out.Appointments = slices.Clone(u.Appointments)
	out.Reviews = slices.Clone(u.Reviews)
	if u.AvailableHours != nil {
		out.AvailableHours = make(map[string][]int, len(u.AvailableHours))
		for day, hours := range u.AvailableHours {
			out.AvailableHours[day] = slices.Clone(hours)
		}
	}
	return out
}
