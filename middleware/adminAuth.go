package middleware

import (
	"net/http"
	"strings"

	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware guards the admin surface with tokens minted by the
// admin login endpoint.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || subject == "" || role != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set("adminSubject", subject)
		c.Next()
	}
}
