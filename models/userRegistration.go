package models

// CreateUserRequest is the body of POST /user. Courses, AvailableHours and
// AvailableLocations are optional: nil means absent and is stored as empty.
type CreateUserRequest struct {
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Cellphone          string           `json:"cellphone"`
	IsTeacher          bool             `json:"is_teacher"`
	Courses            []string         `json:"courses,omitempty"`
	AvailableHours     map[string][]int `json:"available_hours,omitempty"`
	AvailableLocations []string         `json:"available_locations,omitempty"`
}
