package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/session"
)

const (
	ContextSession      = "session"
	ContextUserID       = "userID"
	ContextBarbershopID = "barbershopID"
	ContextUserRole     = "userRole"
)

// SessionResolver turns a bearer token into a live session.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (session.Session, error)
}

func AuthMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Missing Authorization header.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Expected a Bearer token.")
			return
		}

		s, err := resolver.Resolve(c.Request.Context(), parts[1])
		switch {
		case errors.Is(err, session.ErrRevoked):
			httperr.Abort(c, http.StatusUnauthorized, "session_revoked", "Session has been signed out.")
			return
		case errors.Is(err, session.ErrInvalidToken):
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Invalid or expired token.")
			return
		case err != nil:
			log.Println("auth: resolve session:", err)
			httperr.Abort(c, http.StatusServiceUnavailable, "session_unavailable", "Could not verify the session.")
			return
		}

		c.Set(ContextSession, s)
		c.Set(ContextUserID, s.UserID)
		c.Set(ContextBarbershopID, s.OwnerID)
		c.Set(ContextUserRole, s.Role)

		c.Next()
	}
}

// SessionFrom reads the session stored by AuthMiddleware.
func SessionFrom(c *gin.Context) session.Session {
	s, _ := c.MustGet(ContextSession).(session.Session)
	return s
}
