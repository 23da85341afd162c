package userRepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"tutormatch/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll            *mongo.Collection
	useTransactions bool
}

// NewMongoUserRepo creates a repository over coll. When useTransactions is set,
// RecordAppointment runs both user updates in one transaction, which requires
// a replica set.
func NewMongoUserRepo(coll *mongo.Collection, useTransactions bool) *MongoUserRepo {
	return &MongoUserRepo{coll: coll, useTransactions: useTransactions}
}

// newContext derives a context with the given timeout from parent.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

// GetByID retrieves a user by its store identifier.
func (r *MongoUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetByEmail retrieves a user by its email address.
func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepo) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	user.Normalize()
	return &user, nil
}

// FindByCourse returns users whose courses contain course.
func (r *MongoUserRepo) FindByCourse(ctx context.Context, course string) ([]models.User, error) {
	return r.find(ctx, bson.M{"courses": course})
}

// FindByCoursePrefix returns users with at least one course starting with
// prefix, ignoring case.
func (r *MongoUserRepo) FindByCoursePrefix(ctx context.Context, prefix string) ([]models.User, error) {
	return r.find(ctx, coursePrefixFilter(prefix))
}

// coursePrefixFilter matches any element of courses. The prefix is escaped so
// user input is never interpreted as a pattern.
func coursePrefixFilter(prefix string) bson.M {
	return bson.M{
		"courses": bson.M{"$regex": "^" + regexp.QuoteMeta(prefix), "$options": "i"},
	}
}

func (r *MongoUserRepo) find(ctx context.Context, filter bson.M) ([]models.User, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		u.Normalize()
		users = append(users, u)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}
