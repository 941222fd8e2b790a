package handlers

import (
	"net/http"

	"barberbook/models"
	"barberbook/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the public location and service listings and the
// admin CRUD behind them.
type CatalogHandler struct {
	Catalog catalog.CatalogService
}

func (h *CatalogHandler) ListLocationsHandler(c *gin.Context) {
	logger := getLogger(c)
	locations, err := h.Catalog.ListLocations()
	if err != nil {
		logger.Error("Failed to list locations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list locations"})
		return
	}
	c.JSON(http.StatusOK, locations)
}

func (h *CatalogHandler) GetLocationHandler(c *gin.Context) {
	location, err := h.Catalog.GetLocation(c.Param("id"))
	if err != nil || location == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}
	c.JSON(http.StatusOK, location)
}

func (h *CatalogHandler) CreateLocationHandler(c *gin.Context) {
	logger := getLogger(c)
	var l models.Location
	if err := c.ShouldBindJSON(&l); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	created, err := h.Catalog.CreateLocation(l)
	if err != nil {
		logger.Error("Failed to create location", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) UpdateLocationHandler(c *gin.Context) {
	logger := getLogger(c)
	var l models.Location
	if err := c.ShouldBindJSON(&l); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	l.ID = c.Param("id")
	updated, err := h.Catalog.UpdateLocation(l)
	if err != nil {
		logger.Error("Failed to update location",
			zap.String("locationId", l.ID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CatalogHandler) DeleteLocationHandler(c *gin.Context) {
	logger := getLogger(c)
	if err := h.Catalog.DeleteLocation(c.Param("id")); err != nil {
		logger.Error("Failed to delete location",
			zap.String("locationId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete location"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	logger := getLogger(c)
	services, err := h.Catalog.ListServices()
	if err != nil {
		logger.Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	service, err := h.Catalog.GetService(c.Param("id"))
	if err != nil || service == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	logger := getLogger(c)
	var s models.Service
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	created, err := h.Catalog.CreateService(s)
	if err != nil {
		logger.Error("Failed to create service", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	logger := getLogger(c)
	var s models.Service
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	s.ID = c.Param("id")
	updated, err := h.Catalog.UpdateService(s)
	if err != nil {
		logger.Error("Failed to update service",
			zap.String("serviceId", s.ID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	logger := getLogger(c)
	if err := h.Catalog.DeleteService(c.Param("id")); err != nil {
		logger.Error("Failed to delete service",
			zap.String("serviceId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// SeedCatalogHandler installs the flagship location and menu when the
// catalog is empty.
func (h *CatalogHandler) SeedCatalogHandler(c *gin.Context) {
	logger := getLogger(c)
	if err := h.Catalog.Seed(); err != nil {
		logger.Error("Failed to seed catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed catalog"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "seeded"})
}
