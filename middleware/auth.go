package middleware

import (
	"net/http"
	"strings"

	userRepo "ridelink/database/repository/user"
	"ridelink/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxUserID    = "authUserID"
	CtxUserEmail = "authUserEmail"
	CtxUserRole  = "authUserRole"
)

// JWTAuthUserMiddleware validates the bearer token and loads the caller's
// identity into the context. The user must still exist.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing or malformed authorization header"})
			return
		}

		claims, err := utils.ExtractClaims(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid or expired token"})
			return
		}

		usr, err := repo.GetByID(claims.UserID)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unknown user"})
			return
		}

		c.Set(CtxUserID, usr.ID)
		c.Set(CtxUserEmail, usr.Email)
		c.Set(CtxUserRole, usr.Role)
		c.Next()
	}
}
