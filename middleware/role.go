package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole gates an endpoint to callers whose account carries one of the
// given roles. Must run after JWTAuthUserMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role := c.GetString(CtxUserRole)
		if !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "insufficient role"})
			return
		}
		c.Next()
	}
}
