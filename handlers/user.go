package handlers

import (
	"net/http"

	"tutormatch/middleware"
	"tutormatch/models"
	"tutormatch/services/user"
	"tutormatch/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	UserService user.UserService
}

// CreateUserHandler handles POST /user.
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	logger := middleware.LoggerFrom(c)
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug("Invalid user request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing body parameter"})
		return
	}

	created, err := h.UserService.CreateUser(c.Request.Context(), req)
	if err != nil {
		logger.Info("CreateUser rejected", zap.String("email", req.Email), zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// GetUserByEmailHandler handles GET /user/:email.
func (h *UserHandler) GetUserByEmailHandler(c *gin.Context) {
	found, err := h.UserService.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// GetTeacherByIDHandler handles GET /teacher/:id.
func (h *UserHandler) GetTeacherByIDHandler(c *gin.Context) {
	found, err := h.UserService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}
