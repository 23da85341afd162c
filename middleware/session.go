package middleware

import (
	"tutormatch/models"
	"tutormatch/services/session"
	"tutormatch/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const principalKey = "principal"

// SessionMiddleware resolves the caller once per request. Requests without a
// session continue with a nil principal; handlers decide whether one is needed.
func SessionMiddleware(provider session.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := provider.CurrentSession(c.Request)
		if err != nil {
			LoggerFrom(c).Error("Session lookup failed", zap.Error(err))
			utils.JSONError(c, err)
			return
		}
		if principal != nil {
			c.Set(principalKey, principal)
		}
		c.Next()
	}
}

// PrincipalFrom returns the caller resolved by SessionMiddleware, or nil.
func PrincipalFrom(c *gin.Context) *models.Principal {
	if p, exists := c.Get(principalKey); exists {
		if principal, ok := p.(*models.Principal); ok {
			return principal
		}
	}
	return nil
}
