package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "tutormatch/database/repository/user"
	"tutormatch/models"
	"tutormatch/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CreateAppointment runs the booking checks in order and stops at the first
// failure. On success the appointment is embedded in both users, one coin
// moves from the student to the teacher and an appointment.booked event is
// published.
func (s *DefaultBookingService) CreateAppointment(ctx context.Context, principal *models.Principal, req models.AppointmentRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()
	if principal == nil {
		return nil, utils.AuthenticationError("Please login first")
	}

	// 1. Required fields
	if field := firstMissing(req); field != "" {
		return nil, utils.ValidationError("Missing parameter on request body: " + field)
	}

	// 2. Identifiers
	teacherID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.TeacherID))
	if err != nil {
		return nil, utils.ValidationError(fmt.Sprintf("Invalid teacher_id %q", req.TeacherID))
	}
	studentID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.StudentID))
	if err != nil {
		return nil, utils.ValidationError(fmt.Sprintf("Invalid student_id %q", req.StudentID))
	}

	// 3. Date
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, utils.ValidationError(fmt.Sprintf("Invalid date %q", req.Date))
	}
	loc := s.location()
	local := date.In(loc)
	if isPastDay(local, s.now().In(loc)) {
		return nil, utils.ValidationError("You can't create an appointment in the past")
	}

	// 4-5. Both parties exist
	teacher, err := s.Users.GetByID(ctx, teacherID)
	if errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, utils.NotFoundError(fmt.Sprintf("Teacher %s with ID %s does not exist", req.TeacherName, req.TeacherID))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load teacher: %w", err)
	}
	student, err := s.Users.GetByID(ctx, studentID)
	if errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, utils.NotFoundError(fmt.Sprintf("Student %s with ID %s does not exist", req.StudentName, req.StudentID))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load student: %w", err)
	}

	// 6. Balance
	if student.Coins <= 0 {
		return nil, utils.InsufficientBalanceError(fmt.Sprintf("Student %s does not have enough coins", req.StudentName))
	}

	// 7. Availability, read in the booking zone
	if !isAvailable(teacher, local) {
		return nil, utils.AvailabilityError(fmt.Sprintf("Teacher %s is not available on %s at %d:00",
			req.TeacherName, strings.ToLower(local.Weekday().String()), local.Hour()))
	}

	// 8. Conflict
	if hasAppointmentAt(teacher, date) {
		return nil, utils.ConflictError(fmt.Sprintf("Teacher %s already has an appointment at %s",
			req.TeacherName, date.Format("2006-01-02T15:04:05Z07:00")))
	}

	appt := models.Appointment{
		Date:            date,
		TeacherName:     req.TeacherName,
		TeacherID:       teacherID.Hex(),
		StudentName:     req.StudentName,
		StudentID:       studentID.Hex(),
		Course:          req.Course,
		Location:        req.Location,
		AppointmentLink: req.Link(),
	}

	if err := s.Users.RecordAppointment(ctx, teacherID, studentID, appt); err != nil {
		logger.Error("CreateAppointment: failed to record appointment",
			zap.String("teacherID", appt.TeacherID),
			zap.String("studentID", appt.StudentID),
			zap.Bool("partial", errors.Is(err, userRepo.ErrPartialAppointment)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to record appointment: %w", err)
	}

	if s.Events != nil {
		if err := s.Events.PublishAppointmentBooked(ctx, appt); err != nil {
			logger.Warn("CreateAppointment: failed to publish event", zap.Error(err))
		}
	}

	logger.Info("Appointment booked",
		zap.String("teacherID", appt.TeacherID),
		zap.String("studentID", appt.StudentID),
		zap.Time("date", appt.Date),
		zap.String("bookedBy", principal.Email))
	return &appt, nil
}
