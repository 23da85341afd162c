package booking

import (
	"context"
	"time"

	userRepo "tutormatch/database/repository/user"
	"tutormatch/models"
	"tutormatch/services/notification"
)

// BookingService books appointments between a student and a teacher.
type BookingService interface {
	CreateAppointment(ctx context.Context, principal *models.Principal, req models.AppointmentRequest) (*models.Appointment, error)
}

// DefaultBookingService validates a request against both users' records and
// then writes the appointment to each of them.
type DefaultBookingService struct {
	Users  userRepo.UserRepository
	Events notification.Publisher
	// Now defaults to time.Now.
	Now func() time.Time
	// Location is the zone in which dates are compared to today and matched
	// against availability. Defaults to BookingZone(DefaultUTCOffsetHours).
	Location *time.Location
}

const DefaultUTCOffsetHours = -3

// BookingZone returns a fixed zone offsetHours away from UTC.
func BookingZone(offsetHours int) *time.Location {
	return time.FixedZone("booking", offsetHours*int(time.Hour/time.Second))
}

func NewBookingService(users userRepo.UserRepository, events notification.Publisher, offsetHours int) *DefaultBookingService {
	if events == nil {
		events = notification.NoopPublisher{}
	}
	return &DefaultBookingService{
		Users:    users,
		Events:   events,
		Now:      time.Now,
		Location: BookingZone(offsetHours),
	}
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *DefaultBookingService) location() *time.Location {
	if s.Location == nil {
		return BookingZone(DefaultUTCOffsetHours)
	}
	return s.Location
}
