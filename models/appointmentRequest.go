package models

// AppointmentRequest is the body of POST /appointment. Date is kept as the raw
// string so that parsing failures surface as validation errors.
type AppointmentRequest struct {
	Date        string `json:"date"`
	TeacherID   string `json:"teacher_id"`
	TeacherName string `json:"teacher_name"`
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	Course      string `json:"course"`
	Location    string `json:"location"`
	// AppointmentLink is optional and defaults to "".
	AppointmentLink *string `json:"appointment_link,omitempty"`
}

// Link returns the appointment link or "" when it was not supplied.
func (r AppointmentRequest) Link() string {
	if r.AppointmentLink == nil {
		return ""
	}
	return *r.AppointmentLink
}
