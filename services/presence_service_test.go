package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"camera-dashboard/be/config"
	"camera-dashboard/be/database"
	"camera-dashboard/be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestPresence(t *testing.T, cfg config.PresenceConfig) (*PresenceService, *gorm.DB) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := database.Initialize(config.DatabaseConfig{
		Path: fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	})
	require.NoError(t, err)

	service := NewPresenceService(db, NewHubService(), cfg)
	t.Cleanup(service.Stop)

	return service, db
}

func TestRegisterMarksCameraOnline(t *testing.T) {
	service, db := newTestPresence(t, config.PresenceConfig{})

	before := time.Now()
	message, err := service.Register(3, "", "192.168.1.50")
	require.NoError(t, err)
	assert.Equal(t, "Camera 3 registered successfully", message)

	var camera models.Camera
	require.NoError(t, db.Where("camera_number = ?", 3).First(&camera).Error)
	assert.Equal(t, "online", camera.Status)
	assert.Equal(t, "192.168.1.50", camera.IPAddress)
	require.NotNil(t, camera.LastSeen)
	assert.False(t, camera.LastSeen.Before(before.Truncate(time.Second)))

	var connection models.Connection
	require.NoError(t, db.Where("camera_number = ?", 3).First(&connection).Error)
	assert.False(t, connection.ConnectionTime.IsZero())
	assert.Nil(t, connection.DisconnectTime)
}

func TestHeartbeatRefreshesLastSeenOnly(t *testing.T) {
	service, db := newTestPresence(t, config.PresenceConfig{})

	_, err := service.Register(2, "Camera 2", "10.0.0.2")
	require.NoError(t, err)

	var before models.Camera
	require.NoError(t, db.Where("camera_number = ?", 2).First(&before).Error)

	require.NoError(t, service.Heartbeat(2))

	var after models.Camera
	require.NoError(t, db.Where("camera_number = ?", 2).First(&after).Error)
	assert.Equal(t, "online", after.Status)
	require.NotNil(t, after.LastSeen)
	assert.False(t, after.LastSeen.Before(*before.LastSeen))
}

func TestHeartbeatUnknownCameraIsNoOp(t *testing.T) {
	service, db := newTestPresence(t, config.PresenceConfig{})

	require.NoError(t, service.Heartbeat(99))

	var count int64
	require.NoError(t, db.Model(&models.Camera{}).Count(&count).Error)
	assert.EqualValues(t, database.DefaultCameraCount, count, "heartbeat must never create rows")

	require.NoError(t, db.Model(&models.Camera{}).Where("last_seen IS NOT NULL").Count(&count).Error)
	assert.Zero(t, count)
}

func TestListStatusCoversAllCameras(t *testing.T) {
	service, _ := newTestPresence(t, config.PresenceConfig{})

	statuses, err := service.ListStatus()
	require.NoError(t, err)
	require.Len(t, statuses, database.DefaultCameraCount)

	for i, status := range statuses {
		assert.Equal(t, i+1, status.Number)
		assert.Equal(t, "offline", status.Status)
		assert.Nil(t, status.LastSeen)
	}

	_, err = service.Register(3, "", "192.168.1.50")
	require.NoError(t, err)

	statuses, err = service.ListStatus()
	require.NoError(t, err)
	assert.Equal(t, "online", statuses[2].Status)
	require.NotNil(t, statuses[2].LastSeen)

	_, parseErr := time.Parse(timestampLayout, *statuses[2].LastSeen)
	assert.NoError(t, parseErr)
}

func TestStatusStaysStickyWithoutSweep(t *testing.T) {
	service, db := newTestPresence(t, config.PresenceConfig{})

	_, err := service.Register(1, "", "10.0.0.1")
	require.NoError(t, err)

	// Backdate last_seen far into the past; without a sweep nothing may
	// ever flip the camera back offline.
	stale := time.Now().Add(-24 * time.Hour)
	require.NoError(t, db.Model(&models.Camera{}).
		Where("camera_number = ?", 1).
		Update("last_seen", stale).Error)

	var camera models.Camera
	require.NoError(t, db.Where("camera_number = ?", 1).First(&camera).Error)
	assert.Equal(t, "online", camera.Status)
}

func TestSweepMarksSilentCamerasOffline(t *testing.T) {
	service, db := newTestPresence(t, config.PresenceConfig{
		OfflineAfter:  time.Minute,
		SweepInterval: time.Hour, // sweep triggered manually below
	})

	_, err := service.Register(1, "", "10.0.0.1")
	require.NoError(t, err)
	_, err = service.Register(2, "", "10.0.0.2")
	require.NoError(t, err)

	stale := time.Now().Add(-2 * time.Minute)
	require.NoError(t, db.Model(&models.Camera{}).
		Where("camera_number = ?", 1).
		Update("last_seen", stale).Error)

	require.NoError(t, service.sweepExpired())

	var camera models.Camera
	require.NoError(t, db.Where("camera_number = ?", 1).First(&camera).Error)
	assert.Equal(t, "offline", camera.Status)

	// Fresh struct: reusing `camera` would leak its primary key into the query.
	var camera2 models.Camera
	require.NoError(t, db.Where("camera_number = ?", 2).First(&camera2).Error)
	assert.Equal(t, "online", camera2.Status, "recently seen cameras stay online")
}
