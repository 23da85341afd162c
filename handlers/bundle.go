package handlers

import (
	"tutormatch/services/booking"
	"tutormatch/services/search"
	"tutormatch/services/user"
	"tutormatch/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// User endpoints
	CreateUserHandler     gin.HandlerFunc
	GetUserByEmailHandler gin.HandlerFunc
	GetTeacherByIDHandler gin.HandlerFunc

	// Search endpoints
	SearchByCourseHandler       gin.HandlerFunc
	SearchByCoursePrefixHandler gin.HandlerFunc
	SearchPageHandler           gin.HandlerFunc

	// Booking endpoints
	CreateAppointmentHandler gin.HandlerFunc

	// Session endpoints
	SignOutHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// Services are the dependencies the handlers delegate to.
type Services struct {
	Users    user.UserService
	Search   search.SearchService
	Booking  booking.BookingService
	Sessions SessionRevoker
	Health   *utils.HealthMonitor
}

func NewHandlerBundle(s Services) *HandlerBundle {
	userHandler := &UserHandler{UserService: s.Users}
	searchHandler := &SearchHandler{SearchService: s.Search}
	appointmentHandler := &AppointmentHandler{BookingService: s.Booking}
	sessionHandler := &SessionHandler{Sessions: s.Sessions}
	healthHandler := &HealthHandler{Monitor: s.Health}

	return &HandlerBundle{
		CreateUserHandler:           userHandler.CreateUserHandler,
		GetUserByEmailHandler:       userHandler.GetUserByEmailHandler,
		GetTeacherByIDHandler:       userHandler.GetTeacherByIDHandler,
		SearchByCourseHandler:       searchHandler.SearchByCourseHandler,
		SearchByCoursePrefixHandler: searchHandler.SearchByCoursePrefixHandler,
		SearchPageHandler:           searchHandler.SearchPageHandler,
		CreateAppointmentHandler:    appointmentHandler.CreateAppointmentHandler,
		SignOutHandler:              sessionHandler.SignOutHandler,
		HealthHandler:               healthHandler.StatusHandler,
	}
}
