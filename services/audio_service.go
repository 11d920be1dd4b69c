package services

import (
	"time"
)

// AudioService relays operator text messages to cameras through the hub.
// Delivery is fire-and-forget: the target does not need to exist or be
// online, and no confirmation comes back.
type AudioService struct {
	hub *HubService
}

func NewAudioService(hub *HubService) *AudioService {
	return &AudioService{hub: hub}
}

// Send broadcasts an audio_message event. The timestamp is time-of-day only.
func (s *AudioService) Send(cameraNumber int, message string) {
	s.hub.Broadcast("audio_message", AudioMessageEvent{
		CameraNumber: cameraNumber,
		Message:      message,
		Timestamp:    time.Now().Format("15:04:05"),
	})
}
