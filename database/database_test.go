package database

import (
	"fmt"
	"strings"
	"testing"

	"camera-dashboard/be/config"
	"camera-dashboard/be/models"
	"camera-dashboard/be/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	return config.DatabaseConfig{
		Path: fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	}
}

func TestInitializeSeedsDefaults(t *testing.T) {
	db, err := Initialize(testConfig(t))
	require.NoError(t, err)

	var cameras []models.Camera
	require.NoError(t, db.Order("camera_number").Find(&cameras).Error)
	require.Len(t, cameras, DefaultCameraCount)

	for i, camera := range cameras {
		number := i + 1
		assert.Equal(t, number, camera.CameraNumber)
		assert.Equal(t, fmt.Sprintf("Camera %d", number), camera.CameraName)
		assert.Equal(t, fmt.Sprintf("Location %d", number), camera.Location)
		assert.Equal(t, "offline", camera.Status)
		assert.Nil(t, camera.LastSeen)
		assert.True(t, utils.CheckPassword(camera.Password, fmt.Sprintf("cam%dpass", number)))
	}

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, "admin", admin.Role)
	assert.True(t, utils.CheckPassword(admin.Password, "admin123"))
}

func TestInitializeIsIdempotent(t *testing.T) {
	cfg := testConfig(t)

	db, err := Initialize(cfg)
	require.NoError(t, err)

	// Mutate a seeded row, then re-run initialization against the same file
	require.NoError(t, db.Model(&models.Camera{}).
		Where("camera_number = ?", 1).
		Update("camera_name", "Front Gate").Error)

	_, err = Initialize(cfg)
	require.NoError(t, err)

	var camera models.Camera
	require.NoError(t, db.Where("camera_number = ?", 1).First(&camera).Error)
	assert.Equal(t, "Front Gate", camera.CameraName, "re-seeding must not overwrite existing rows")

	var count int64
	require.NoError(t, db.Model(&models.Camera{}).Count(&count).Error)
	assert.EqualValues(t, DefaultCameraCount, count)

	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
