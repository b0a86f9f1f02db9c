package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "futsalcourt/internal/pkg/jwt"
	"futsalcourt/internal/session"
)

// RequireStudent gates booking routes behind a live session. The token must
// be a valid student JWT whose session has not been revoked by logout.
func RequireStudent(store *session.Store, jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		rollNo, state := store.Current(token)
		switch state {
		case session.StateUnknown:
			// Hydration has not finished; do not report "absent" yet.
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_READY",
					"message": "Session store is still starting up",
				},
			})
			return
		case session.StateAnonymous:
			abortUnauthorized(c, "Invalid or expired session")
			return
		}

		claims, err := jwt.ValidateToken(token)
		if err != nil || claims.Role != "student" {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set("roll_no", rollNo)
		c.Set("student_id", claims.StudentID)
		c.Set("session_token", token)

		c.Next()
	}
}

// RequireAdmin gates approval routes behind an admin-role token.
func RequireAdmin(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		claims, err := jwt.ValidateToken(token)
		if err != nil || claims.Role != "admin" {
			abortUnauthorized(c, "Admin access required")
			return
		}

		c.Set("admin_email", claims.Subject)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	h := c.GetHeader("Authorization")
	if h == "" {
		abortUnauthorized(c, "Missing Authorization header")
		return "", false
	}
	if !strings.HasPrefix(h, "Bearer ") {
		abortUnauthorized(c, "Invalid Authorization header")
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if token == "" {
		abortUnauthorized(c, "Empty token")
		return "", false
	}
	return token, true
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
