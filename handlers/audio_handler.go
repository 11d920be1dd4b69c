package handlers

import (
	"net/http"

	"camera-dashboard/be/services"

	"github.com/gin-gonic/gin"
)

type AudioHandler struct {
	audio *services.AudioService
}

func NewAudioHandler(audio *services.AudioService) *AudioHandler {
	return &AudioHandler{audio: audio}
}

type SendAudioRequest struct {
	CameraNumber int    `json:"camera_number" binding:"required"`
	Message      string `json:"message"`
}

// Send relays an operator message to a camera as an audio_message event.
// The target is not checked for existence or online status; delivery is
// fire-and-forget and the call always succeeds.
func (h *AudioHandler) Send(c *gin.Context) {
	var req SendAudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.audio.Send(req.CameraNumber, req.Message)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Audio sent",
	})
}
