package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"barberbook/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler handles staff portrait and location photo uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// allowedBuckets defines permitted buckets for media uploads.
var allowedBuckets = map[string]bool{
	"portraits": true,
	"photos":    true,
}

// UploadMediaHandler accepts a multipart file and uploads it to the media
// store, returning the public id and a download URL.
func (h *StorageHandler) UploadMediaHandler(c *gin.Context) {
	logger := getLogger(c)

	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bucket; allowed values are 'portraits' and 'photos'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c.Request.Context(), tempFilePath, bucket)
	if err != nil {
		logger.Error("Failed to upload media", zap.String("bucket", bucket), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file"})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c.Request.Context(), publicID)
	if err != nil {
		logger.Error("Failed to build download URL", zap.String("publicId", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"publicId":    publicID,
		"downloadUrl": downloadURL,
	})
}

// DeleteMediaHandler removes an uploaded file.
func (h *StorageHandler) DeleteMediaHandler(c *gin.Context) {
	logger := getLogger(c)
	publicID := c.Param("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId required"})
		return
	}
	if err := h.StorageSvc.DeleteFile(c.Request.Context(), publicID); err != nil {
		logger.Error("Failed to delete media", zap.String("publicId", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
