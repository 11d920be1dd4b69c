package database

import (
	"fmt"
	"log"

	"camera-dashboard/be/config"
	"camera-dashboard/be/models"
	"camera-dashboard/be/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultCameraCount is how many camera rows Initialize seeds.
const DefaultCameraCount = 10

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&models.User{},
		&models.Camera{},
		&models.Connection{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seedDefaults(db); err != nil {
		return nil, fmt.Errorf("failed to seed defaults: %w", err)
	}

	log.Println("Database initialized successfully")
	return db, nil
}

// seedDefaults creates the default admin user and ten camera rows. Inserts
// are keyed on username / camera_number, so existing rows are never
// overwritten and the step is safe to repeat on every startup.
func seedDefaults(db *gorm.DB) error {
	adminPassword, err := utils.HashPassword("admin123")
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		Username: "admin",
		Password: adminPassword,
		Role:     "admin",
	}
	if err := db.Where(models.User{Username: "admin"}).
		Attrs(admin).
		FirstOrCreate(&models.User{}).Error; err != nil {
		return err
	}

	for i := 1; i <= DefaultCameraCount; i++ {
		cameraPassword, err := utils.HashPassword(fmt.Sprintf("cam%dpass", i))
		if err != nil {
			return fmt.Errorf("failed to hash camera %d password: %w", i, err)
		}

		camera := models.Camera{
			CameraNumber: i,
			CameraName:   fmt.Sprintf("Camera %d", i),
			Location:     fmt.Sprintf("Location %d", i),
			Status:       "offline",
			Password:     cameraPassword,
		}
		if err := db.Where(models.Camera{CameraNumber: i}).
			Attrs(camera).
			FirstOrCreate(&models.Camera{}).Error; err != nil {
			return err
		}
	}

	return nil
}
