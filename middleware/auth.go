package middleware

import (
	"net/http"
	"strings"

	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// FirebaseAuthMiddleware verifies the caller's Firebase ID token and stores
// the resolved subject id under "userID". Every protected surface resolves
// its profile from that id.
func FirebaseAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		userID, err := utils.VerifyIDToken(c.Request.Context(), tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
