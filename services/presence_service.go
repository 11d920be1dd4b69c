package services

import (
	"fmt"
	"log"
	"time"

	"camera-dashboard/be/config"
	"camera-dashboard/be/models"

	"gorm.io/gorm"
)

// timestampLayout matches the wall-clock format used in camera_online and
// camera_offline events and the status listing.
const timestampLayout = "2006-01-02 15:04:05"

// PresenceService tracks camera online/offline state. Registration flips a
// camera online and logs the connection; heartbeats only refresh last-seen.
// A camera never goes back offline on its own unless the expiry sweep is
// enabled (Presence.OfflineAfter > 0).
type PresenceService struct {
	db        *gorm.DB
	hub       *HubService
	cfg       config.PresenceConfig
	stopSweep chan struct{}
}

// CameraStatus is one row of the status listing returned to the console.
type CameraStatus struct {
	Number   int     `json:"number"`
	Name     string  `json:"name"`
	Status   string  `json:"status"`
	LastSeen *string `json:"last_seen"`
}

func NewPresenceService(db *gorm.DB, hub *HubService, cfg config.PresenceConfig) *PresenceService {
	service := &PresenceService{
		db:        db,
		hub:       hub,
		cfg:       cfg,
		stopSweep: make(chan struct{}),
	}

	if cfg.OfflineAfter > 0 {
		go service.sweepLoop()
	}

	return service
}

// Register marks a camera online, records the caller's address, appends a
// connection-log row and broadcasts camera_online. The camera row is updated
// by number; registering an unknown number updates nothing but still logs
// and broadcasts, matching the permissive camera-facing contract.
func (s *PresenceService) Register(cameraNumber int, cameraName, ipAddress string) (string, error) {
	if cameraName == "" {
		cameraName = fmt.Sprintf("Camera %d", cameraNumber)
	}
	now := time.Now()

	if err := s.db.Model(&models.Camera{}).
		Where("camera_number = ?", cameraNumber).
		Updates(map[string]interface{}{
			"status":     "online",
			"ip_address": ipAddress,
			"last_seen":  now,
		}).Error; err != nil {
		return "", fmt.Errorf("failed to update camera %d: %w", cameraNumber, err)
	}

	connection := models.Connection{
		CameraNumber:   cameraNumber,
		ConnectionTime: now,
	}
	if err := s.db.Create(&connection).Error; err != nil {
		return "", fmt.Errorf("failed to log connection for camera %d: %w", cameraNumber, err)
	}

	s.hub.Broadcast("camera_online", CameraOnlineEvent{
		CameraNumber: cameraNumber,
		CameraName:   cameraName,
		IPAddress:    ipAddress,
		Timestamp:    now.Format(timestampLayout),
	})

	return fmt.Sprintf("Camera %d registered successfully", cameraNumber), nil
}

// Heartbeat refreshes a camera's last-seen timestamp. Status is untouched.
// Unknown camera numbers match zero rows and succeed silently.
func (s *PresenceService) Heartbeat(cameraNumber int) error {
	if err := s.db.Model(&models.Camera{}).
		Where("camera_number = ?", cameraNumber).
		Update("last_seen", time.Now()).Error; err != nil {
		return fmt.Errorf("failed to refresh camera %d: %w", cameraNumber, err)
	}
	return nil
}

// ListStatus returns number, name, status and last-seen for every camera.
func (s *PresenceService) ListStatus() ([]CameraStatus, error) {
	var cameras []models.Camera
	if err := s.db.Order("camera_number").Find(&cameras).Error; err != nil {
		return nil, fmt.Errorf("failed to list cameras: %w", err)
	}

	statuses := make([]CameraStatus, 0, len(cameras))
	for _, camera := range cameras {
		status := CameraStatus{
			Number: camera.CameraNumber,
			Name:   camera.CameraName,
			Status: camera.Status,
		}
		if camera.LastSeen != nil {
			formatted := camera.LastSeen.Format(timestampLayout)
			status.LastSeen = &formatted
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// Stop terminates the expiry sweep goroutine, if one is running.
func (s *PresenceService) Stop() {
	close(s.stopSweep)
}

func (s *PresenceService) sweepLoop() {
	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.sweepExpired(); err != nil {
				log.Printf("Presence sweep failed: %v", err)
			}
		case <-s.stopSweep:
			return
		}
	}
}

// sweepExpired marks cameras offline once they have been silent longer than
// OfflineAfter, broadcasting camera_offline for each one.
func (s *PresenceService) sweepExpired() error {
	cutoff := time.Now().Add(-s.cfg.OfflineAfter)

	var expired []models.Camera
	if err := s.db.
		Where("status = ? AND last_seen IS NOT NULL AND last_seen < ?", "online", cutoff).
		Find(&expired).Error; err != nil {
		return err
	}
	if len(expired) == 0 {
		return nil
	}

	now := time.Now()
	for _, camera := range expired {
		if err := s.db.Model(&models.Camera{}).
			Where("camera_number = ? AND status = ?", camera.CameraNumber, "online").
			Update("status", "offline").Error; err != nil {
			return err
		}

		s.hub.Broadcast("camera_offline", CameraOfflineEvent{
			CameraNumber: camera.CameraNumber,
			Timestamp:    now.Format(timestampLayout),
		})
		log.Printf("Camera %d marked offline after %s of silence", camera.CameraNumber, s.cfg.OfflineAfter)
	}

	return nil
}
