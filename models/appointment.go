package models

import "time"

// Appointment is a booked session. The same record is embedded in both the
// teacher's and the student's appointments.
type Appointment struct {
	Date            time.Time `bson:"date" json:"date"`
	TeacherName     string    `bson:"teacher_name" json:"teacher_name"`
	TeacherID       string    `bson:"teacher_id" json:"teacher_id"`
	StudentName     string    `bson:"student_name" json:"student_name"`
	StudentID       string    `bson:"student_id" json:"student_id"`
	Course          string    `bson:"course" json:"course"`
	Location        string    `bson:"location" json:"location"`
	AppointmentLink string    `bson:"appointment_link" json:"appointment_link"`
}
