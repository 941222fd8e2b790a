package handlers

import (
	"barberbook/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or creates a new one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	logger, _ := zap.NewProduction()
	return logger
}

// callerProfile returns the profile the auth middleware resolved, or nil.
func callerProfile(c *gin.Context) *models.Profile {
	val, exists := c.Get("profile")
	if !exists {
		return nil
	}
	profile, ok := val.(*models.Profile)
	if !ok {
		return nil
	}
	return profile
}
