package middleware

import (
	"net/http"

	"barberbook/models"
	"barberbook/services/directory"

	"github.com/gin-gonic/gin"
)

// RequireProfile resolves the caller's profile (set by FirebaseAuthMiddleware)
// and stores it under "profile". Callers without a profile are rejected; they
// must register first.
func RequireProfile(dir directory.DirectoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		profile, err := dir.ResolveCaller(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve caller profile"})
			return
		}
		if profile == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "no profile registered for this account"})
			return
		}
		c.Set("profile", profile)
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Must run after
// RequireProfile.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		profile := CallerProfile(c)
		if profile == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if !allowed[profile.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// CallerProfile returns the profile stored by RequireProfile, or nil.
func CallerProfile(c *gin.Context) *models.Profile {
	val, ok := c.Get("profile")
	if !ok {
		return nil
	}
	profile, ok := val.(*models.Profile)
	if !ok {
		return nil
	}
	return profile
}
