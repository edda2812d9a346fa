package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zyppr/utils"
)

type marketingPostRequest struct {
	BusinessType string `json:"business_type" binding:"required"`
	Platform     string `json:"platform" binding:"required"`
	Tone         string `json:"tone"`
}

type descriptionRequest struct {
	ServiceName  string `json:"service_name" binding:"required"`
	BusinessType string `json:"business_type" binding:"required"`
}

// GenerateMarketingPostHandler produces a caption plus generated image for
// a social post. No retries; a generator failure surfaces as 502.
func (h *HandlerBundle) GenerateMarketingPostHandler(c *gin.Context) {
	var req marketingPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	post, err := h.Assistant.GenerateMarketingPost(c.Request.Context(), req.BusinessType, req.Platform, req.Tone)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to generate marketing post", err.Error())
		return
	}
	c.JSON(http.StatusOK, post)
}

// GenerateDescriptionHandler writes a short service description.
func (h *HandlerBundle) GenerateDescriptionHandler(c *gin.Context) {
	var req descriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	description, err := h.Assistant.GenerateDescription(c.Request.Context(), req.ServiceName, req.BusinessType)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Failed to generate description", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"description": description})
}
