package middleware

import (
	"net/http"

	"go-hris-compliance/internal/shared/contextutil"
	"go-hris-compliance/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExtractUserID re-publishes the authenticated user as user_id_validated and
// scopes the request logger to it.
func ExtractUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User is not authenticated", nil)
			c.Abort()
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_USER_ID", "Invalid user_id format", nil)
			c.Abort()
			return
		}

		c.Set("user_id_validated", userIDStr)

		ctx := contextutil.WithUserID(c.Request.Context(), userIDStr)
		logger := contextutil.GetLogger(ctx, zap.L()).With(zap.String("user_id", userIDStr))
		ctx = contextutil.WithLogger(ctx, logger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
