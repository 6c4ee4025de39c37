package middleware

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pratapadwait/pratapliving/response"
	"github.com/pratapadwait/pratapliving/services"
)

// adminGateEnabled reports whether write endpoints require a token.
// The gate is opt-in: unset or anything other than "true" leaves the
// API open, matching the default deployment behind a trusted CMS.
func adminGateEnabled() bool {
	return strings.EqualFold(os.Getenv("ADMIN_AUTH"), "true")
}

// AdminRequired guards mutating routes when ADMIN_AUTH=true. With the
// gate off it is a pass-through.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !adminGateEnabled() {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := services.VerifyToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
