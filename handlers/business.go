package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zyppr/models"
	"zyppr/services/business"
	"zyppr/services/storage"
	"zyppr/utils"
)

// ListBusinessesHandler lists the tenants visible to the authenticated
// customer. The customer's own zipcode drives the demo fallback.
func (h *HandlerBundle) ListBusinessesHandler(c *gin.Context) {
	zipcode := c.Query("zipcode")
	if zipcode == "" {
		u, err := h.Users.GetByID(c.Request.Context(), c.GetString("userID"))
		if err == nil {
			zipcode = u.Zipcode()
		}
	}

	businesses, err := h.Businesses.ListForCustomer(c.Request.Context(), zipcode)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list businesses", err.Error())
		return
	}
	c.JSON(http.StatusOK, businesses)
}

// GetBusinessHandler resolves one tenant, demo or persisted.
func (h *HandlerBundle) GetBusinessHandler(c *gin.Context) {
	b, err := h.Businesses.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// AddServiceHandler creates a service with a generated weekly schedule.
func (h *HandlerBundle) AddServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Businesses.AddService(c.Request.Context(), c.Param("id"), svc)
	if err != nil {
		if errors.Is(err, business.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UploadPhotoHandler stores a gallery image in Cloudinary and records its
// delivery URL on the business.
func (h *HandlerBundle) UploadPhotoHandler(c *gin.Context) {
	businessID := c.Param("id")

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing photo file"})
		return
	}
	defer file.Close()

	url, err := h.Storage.UploadPhoto(c.Request.Context(), file, businessID)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to upload photo", err.Error())
		return
	}

	photo, err := h.Businesses.AddPhoto(c.Request.Context(), businessID, url, c.PostForm("caption"))
	if err != nil {
		if errors.Is(err, business.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save photo", err.Error())
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// DeletePhotoHandler removes a gallery photo and releases the Cloudinary
// upload behind it. External stock URLs have no backing upload to release.
func (h *HandlerBundle) DeletePhotoHandler(c *gin.Context) {
	removed, err := h.Businesses.RemovePhoto(c.Request.Context(), c.Param("id"), c.Param("photoId"))
	if err != nil {
		switch {
		case errors.Is(err, business.ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		case errors.Is(err, business.ErrPhotoNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to remove photo", err.Error())
		}
		return
	}

	if publicID := storage.PublicIDFromURL(removed.URL); publicID != "" {
		// The record is already gone; a failed destroy leaves an orphaned asset.
		if err := h.Storage.DeletePhoto(c.Request.Context(), publicID); err != nil {
			getLogger(c).Warn("stored photo delete failed", zap.String("publicID", publicID), zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo removed"})
}

type announcementRequest struct {
	Message string `json:"message" binding:"required"`
}

// AddAnnouncementHandler prepends a broadcast message to the business page.
func (h *HandlerBundle) AddAnnouncementHandler(c *gin.Context) {
	var req announcementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ann, err := h.Businesses.AddAnnouncement(c.Request.Context(), c.Param("id"), req.Message)
	if err != nil {
		if errors.Is(err, business.ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add announcement", err.Error())
		return
	}
	c.JSON(http.StatusCreated, ann)
}
