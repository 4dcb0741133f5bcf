package middleware

import (
	"errors"
	"strings"
	"tinylunches/internal/auth"
	"tinylunches/internal/user"
	"tinylunches/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UserDirectory resolves a token claim to a live user record. The user
// service satisfies it.
type UserDirectory interface {
	GetByID(id int) (*user.User, error)
}

// RequireAuth gates a route group behind a bearer token. The pipeline is:
// extract token, verify signature and expiry, resolve the claim against the
// directory, then attach the identity to the context. Bad signatures,
// expired tokens and claims referencing deleted users all surface as the
// same 401 body; they are only told apart in the logs.
func RequireAuth(tokens *auth.TokenManager, users UserDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			web.Error(c, 401, "Missing bearer token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			web.Error(c, 401, "Missing bearer token")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				logrus.Debug("Rejected expired token")
			} else {
				logrus.Debug("Rejected token with invalid signature or payload")
			}
			web.Error(c, 401, "Unauthorized request")
			c.Abort()
			return
		}

		resolved, err := users.GetByID(claims.UserID)
		if err != nil || resolved.Username != claims.Subject {
			logrus.WithField("user_id", claims.UserID).Debug("Token claim does not match a live user")
			web.Error(c, 401, "Unauthorized request")
			c.Abort()
			return
		}

		c.Set(auth.UserIDKey, resolved.ID)
		c.Set(auth.UserKey, resolved)
		c.Next()
	}
}
