package handlers

import (
	"context"
	"net/http"

	"tutormatch/middleware"
	"tutormatch/services/session"
	"tutormatch/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionRevoker signs a token out.
type SessionRevoker interface {
	Revoke(ctx context.Context, token string) error
}

type SessionHandler struct {
	Sessions SessionRevoker
}

// SignOutHandler handles DELETE /session.
func (h *SessionHandler) SignOutHandler(c *gin.Context) {
	token := session.TokenFromRequest(c.Request)
	if token == "" || middleware.PrincipalFrom(c) == nil {
		utils.JSONError(c, utils.AuthenticationError("Please login first"))
		return
	}
	if err := h.Sessions.Revoke(c.Request.Context(), token); err != nil {
		middleware.LoggerFrom(c).Error("Sign-out failed", zap.Error(err))
		utils.JSONError(c, err)
		return
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
