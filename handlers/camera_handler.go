package handlers

import (
	"net/http"

	"camera-dashboard/be/services"

	"github.com/gin-gonic/gin"
)

type CameraHandler struct {
	presence *services.PresenceService
}

func NewCameraHandler(presence *services.PresenceService) *CameraHandler {
	return &CameraHandler{presence: presence}
}

type RegisterRequest struct {
	CameraNumber int    `json:"camera_number" binding:"required"`
	CameraName   string `json:"camera_name"`
}

type HeartbeatRequest struct {
	CameraNumber int `json:"camera_number" binding:"required"`
}

// Register marks a camera online. The source address is taken from the
// request, not the body, so a camera cannot claim somebody else's address.
func (h *CameraHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.presence.Register(req.CameraNumber, req.CameraName, c.ClientIP())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register camera"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": message,
	})
}

// Heartbeat refreshes a camera's last-seen timestamp. Unknown camera
// numbers are accepted and succeed without creating anything.
func (h *CameraHandler) Heartbeat(c *gin.Context) {
	var req HeartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.presence.Heartbeat(req.CameraNumber); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record heartbeat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// GetStatus returns number, name, status and last-seen for every camera.
func (h *CameraHandler) GetStatus(c *gin.Context) {
	statuses, err := h.presence.ListStatus()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cameras"})
		return
	}

	c.JSON(http.StatusOK, statuses)
}
