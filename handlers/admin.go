package handlers

import (
	"net/http"
	"time"

	"barberbook/config"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

type adminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AdminLoginHandler exchanges the operator password for a short-lived admin
// token.
func AdminLoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	storedHash := config.AppConfig.AdminPasswordHash
	if storedHash == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin login not configured"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(req.Password)); err != nil {
		logger.Warn("Admin login rejected")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken("admin", "admin", adminTokenTTL)
	if err != nil {
		logger.Error("Failed to mint admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(adminTokenTTL.Seconds()),
	})
}
