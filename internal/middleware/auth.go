package middleware

import (
	"strings"

	"github.com/addsmd/healthy-api/internal/services"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// Auth rejects requests without a valid bearer session token.
func Auth(jwtService *services.JWTService) drift.HandlerFunc {
	return func(c *drift.Context) {
		claims, ok := bearerClaims(c, jwtService)
		if !ok {
			c.Unauthorized("invalid or missing token")
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.Unauthorized("invalid or missing token")
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(UserEmailKey, claims.Email)

		c.Next()
	}
}

// OptionalAuth sets the caller's identity when a valid token is present and
// lets the request through anonymously otherwise. An invalid token is treated
// the same as no token.
func OptionalAuth(jwtService *services.JWTService) drift.HandlerFunc {
	return func(c *drift.Context) {
		if claims, ok := bearerClaims(c, jwtService); ok {
			if userID, err := claims.UserID(); err == nil {
				c.Set(UserIDKey, userID)
				c.Set(UserEmailKey, claims.Email)
			}
		}

		c.Next()
	}
}

func bearerClaims(c *drift.Context, jwtService *services.JWTService) (*services.SessionClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, false
	}

	claims, err := jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}

	return claims, true
}

func GetUserID(c *drift.Context) uuid.UUID {
	if id, ok := c.Get(UserIDKey); ok {
		if uid, ok := id.(uuid.UUID); ok {
			return uid
		}
	}
	return uuid.Nil
}

func GetUserEmail(c *drift.Context) string {
	if email, ok := c.Get(UserEmailKey); ok {
		if e, ok := email.(string); ok {
			return e
		}
	}
	return ""
}
