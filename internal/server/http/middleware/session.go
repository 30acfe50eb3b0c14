package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ptanasia/potrack/internal/domain/model"
)

const (
	// CurrentUserContextKey is a gin context key for the signed-in user.
	CurrentUserContextKey = "currentUser"
)

// SessionGate resolves the active session user.
type SessionGate interface {
	CurrentUser(ctx context.Context) (*model.User, error)
}

// SessionRequired ensures a user is signed in before accessing handler.
func SessionRequired(gate SessionGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := gate.CurrentUser(c.Request.Context())
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(CurrentUserContextKey, *user)
		c.Next()
	}
}
