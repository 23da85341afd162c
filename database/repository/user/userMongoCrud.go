// File: database/repository/user/userMongoCrud.go
package userRepo

import (
	"context"
	"fmt"
	"time"

	"tutormatch/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new user document.
func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.Normalize()

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// PushAndIncrement appends value to pushField and adds delta to incField.
func (r *MongoUserRepo) PushAndIncrement(ctx context.Context, id primitive.ObjectID, pushField string, value any, incField string, delta int) error {
	update := bson.M{
		"$push": bson.M{pushField: value},
		"$inc":  bson.M{incField: delta},
	}
	return r.updateWithOperators(ctx, id, update)
}

func (r *MongoUserRepo) updateWithOperators(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update user with id %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user with id %s: %w", id.Hex(), ErrUserNotFound)
	}
	return nil
}

// RecordAppointment pushes appt onto the teacher and then the student, moving
// one coin from the student to the teacher.
func (r *MongoUserRepo) RecordAppointment(ctx context.Context, teacherID, studentID primitive.ObjectID, appt models.Appointment) error {
	if !r.useTransactions {
		return recordAppointment(ctx, r, teacherID, studentID, appt)
	}

	sess, err := r.coll.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, applyAppointment(sc, r, teacherID, studentID, appt)
	})
	if err != nil {
		return fmt.Errorf("appointment transaction failed: %w", err)
	}
	return nil
}

// recordAppointment performs the dual write without a transaction. A failure
// on the student side leaves the teacher side applied.
func recordAppointment(ctx context.Context, repo UserRepository, teacherID, studentID primitive.ObjectID, appt models.Appointment) error {
	if err := repo.PushAndIncrement(ctx, teacherID, "appointments", appt, "coins", 1); err != nil {
		return fmt.Errorf("failed to record appointment for teacher: %w", err)
	}
	if err := repo.PushAndIncrement(ctx, studentID, "appointments", appt, "coins", -1); err != nil {
		return fmt.Errorf("%w: teacher %s updated, student %s not: %v",
			ErrPartialAppointment, teacherID.Hex(), studentID.Hex(), err)
	}
	return nil
}

func applyAppointment(ctx context.Context, repo UserRepository, teacherID, studentID primitive.ObjectID, appt models.Appointment) error {
	if err := repo.PushAndIncrement(ctx, teacherID, "appointments", appt, "coins", 1); err != nil {
		return fmt.Errorf("failed to record appointment for teacher: %w", err)
	}
	if err := repo.PushAndIncrement(ctx, studentID, "appointments", appt, "coins", -1); err != nil {
		return fmt.Errorf("failed to record appointment for student: %w", err)
	}
	return nil
}
