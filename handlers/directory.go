package handlers

import (
	"errors"
	"net/http"

	"barberbook/models"
	"barberbook/services/directory"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DirectoryHandler exposes profile registration and the staff/client
// listings.
type DirectoryHandler struct {
	Dir directory.DirectoryService
}

type registerProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// MeHandler returns the caller's profile, or 404 when the identity has not
// registered yet so the client knows to show the registration form.
func (h *DirectoryHandler) MeHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.Dir.ResolveCaller(userID)
	if err != nil {
		logger.Error("Failed to resolve caller profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No profile registered for this account"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RegisterHandler creates the client profile on first sign-in. The role is
// always client here; staff profiles are provisioned through the management
// surface.
func (h *DirectoryHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req registerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile, err := h.Dir.RegisterProfile(models.Profile{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Role:   models.RoleClient,
	})
	if err != nil {
		logger.Error("Failed to register profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register profile"})
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// UpdateMeHandler updates the caller's own profile. Role and location are
// not client-editable; they are overwritten from the stored profile.
func (h *DirectoryHandler) UpdateMeHandler(c *gin.Context) {
	logger := getLogger(c)
	profile := callerProfile(c)
	if profile == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var update models.Profile
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	update.ID = profile.ID
	update.UserID = profile.UserID
	update.Role = profile.Role
	update.LocationID = profile.LocationID
	update.IsActive = profile.IsActive

	updated, err := h.Dir.UpdateProfile(update)
	if err != nil {
		logger.Error("Failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListClientsHandler returns the client profiles the caller is allowed to
// see. Barbers only see clients who share an appointment with them.
func (h *DirectoryHandler) ListClientsHandler(c *gin.Context) {
	logger := getLogger(c)
	caller := callerProfile(c)

	clients, err := h.Dir.ListClients(caller)
	if err != nil {
		if errors.Is(err, directory.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}
		logger.Error("Failed to list clients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list clients"})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// ListStaffHandler returns every staff profile.
func (h *DirectoryHandler) ListStaffHandler(c *gin.Context) {
	logger := getLogger(c)
	staff, err := h.Dir.ListStaff()
	if err != nil {
		logger.Error("Failed to list staff", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list staff"})
		return
	}
	c.JSON(http.StatusOK, staff)
}

// ListBarbersHandler returns bookable barbers, optionally filtered by
// location.
func (h *DirectoryHandler) ListBarbersHandler(c *gin.Context) {
	logger := getLogger(c)
	barbers, err := h.Dir.ListBarbers(c.Query("locationId"))
	if err != nil {
		logger.Error("Failed to list barbers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list barbers"})
		return
	}
	c.JSON(http.StatusOK, barbers)
}

// CreateStaffHandler provisions a staff profile. Admin surface only.
func (h *DirectoryHandler) CreateStaffHandler(c *gin.Context) {
	logger := getLogger(c)

	var p models.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if !p.IsStaff() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be a staff role"})
		return
	}

	created, err := h.Dir.RegisterProfile(p)
	if err != nil {
		logger.Error("Failed to create staff profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff profile"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeactivateProfileHandler retires a profile without deleting its history.
func (h *DirectoryHandler) DeactivateProfileHandler(c *gin.Context) {
	logger := getLogger(c)
	if err := h.Dir.DeactivateProfile(c.Param("id")); err != nil {
		logger.Error("Failed to deactivate profile",
			zap.String("profileId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}
