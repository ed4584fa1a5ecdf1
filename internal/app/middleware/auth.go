// internal/app/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "calculator-service/internal/common/errors"
)

// UserIDKey is the gin context key the authenticated user id is stored
// under.
const UserIDKey = "userId"

// userIDHeader carries the caller identity, injected by the API gateway
// after token verification. This service trusts it as-is.
const userIDHeader = "X-User-Id"

// RequireUser rejects requests without a caller identity. Handlers
// behind it may read UserID(c) unconditionally.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apperrors.NewUnauthorizedError("missing "+userIDHeader+" header"))
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireUser.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
