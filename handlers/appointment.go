package handlers

import (
	"net/http"

	"tutormatch/middleware"
	"tutormatch/models"
	"tutormatch/services/booking"
	"tutormatch/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AppointmentHandler struct {
	BookingService booking.BookingService
}

// CreateAppointmentHandler handles POST /appointment. The session is checked
// before the body so that anonymous callers always get a 401.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	logger := middleware.LoggerFrom(c)
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		utils.JSONError(c, utils.AuthenticationError("Please login first"))
		return
	}

	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug("Invalid appointment request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing parameter on request body"})
		return
	}

	appt, err := h.BookingService.CreateAppointment(c.Request.Context(), principal, req)
	if err != nil {
		logger.Info("CreateAppointment rejected",
			zap.String("teacherID", req.TeacherID),
			zap.String("studentID", req.StudentID),
			zap.String("kind", utils.KindOf(err).String()),
			zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}
