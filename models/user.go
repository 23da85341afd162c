package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is either a teacher or a student; IsTeacher selects the role.
type User struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name               string             `bson:"name" json:"name"`
	Email              string             `bson:"email" json:"email"`
	Cellphone          string             `bson:"cellphone" json:"cellphone"`
	IsTeacher          bool               `bson:"is_teacher" json:"is_teacher"`
	Coins              int                `bson:"coins" json:"coins"`
	Courses            []string           `bson:"courses" json:"courses"`
	AvailableHours     map[string][]int   `bson:"available_hours" json:"available_hours"`
	AvailableLocations []string           `bson:"available_locations" json:"available_locations"`
	Reviews            []bson.M           `bson:"reviews" json:"reviews"`
	Appointments       []Appointment      `bson:"appointments" json:"appointments"`
}

// Normalize replaces nil collections with empty ones so they are stored and
// rendered as [] and {} rather than null.
func (u *User) Normalize() {
	if u.Courses == nil {
		u.Courses = []string{}
	}
	if u.AvailableHours == nil {
		u.AvailableHours = map[string][]int{}
	}
	if u.AvailableLocations == nil {
		u.AvailableLocations = []string{}
	}
	if u.Reviews == nil {
		u.Reviews = []bson.M{}
	}
	if u.Appointments == nil {
		u.Appointments = []Appointment{}
	}
}

// HexID returns the store identifier as a hex string.
func (u *User) HexID() string {
	return u.ID.Hex()
}
