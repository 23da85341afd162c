package booking

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"tutormatch/models"
)

// dateLayouts are tried in order; layouts without an offset are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			// The store keeps milliseconds.
			return t.UTC().Truncate(time.Millisecond), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}

// isPastDay compares year, month and day independently. A date earlier than
// today in any one component is rejected even when the whole date is later.
func isPastDay(date, today time.Time) bool {
	return date.Year() < today.Year() ||
		date.Month() < today.Month() ||
		date.Day() < today.Day()
}

// isAvailable reports whether the teacher offers the weekday and hour of local.
func isAvailable(teacher *models.User, local time.Time) bool {
	weekday := strings.ToLower(local.Weekday().String())
	return slices.Contains(teacher.AvailableHours[weekday], local.Hour())
}

func hasAppointmentAt(teacher *models.User, date time.Time) bool {
	return slices.ContainsFunc(teacher.Appointments, func(a models.Appointment) bool {
		return a.Date.Equal(date)
	})
}

// firstMissing returns the JSON name of the first empty required field.
func firstMissing(req models.AppointmentRequest) string {
	fields := []struct {
		name  string
		value string
	}{
		{"date", req.Date},
		{"teacher_name", req.TeacherName},
		{"teacher_id", req.TeacherID},
		{"student_name", req.StudentName},
		{"student_id", req.StudentID},
		{"course", req.Course},
		{"location", req.Location},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return f.name
		}
	}
	return ""
}
