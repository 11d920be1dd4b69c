package main

import (
	"fmt"
	"log"
	"os"

	"camera-dashboard/be/config"
	"camera-dashboard/be/database"
	"camera-dashboard/be/models"
	"camera-dashboard/be/utils"
)

// Resets the admin password in the local camera database. Usage:
//
//	go run scripts/reset_password.go <new-password>
func main() {
	if len(os.Args) != 2 {
		log.Fatalf("Usage: %s <new-password>", os.Args[0])
	}
	newPassword := os.Args[1]

	cfg := config.Load()
	db, err := database.Initialize(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	result := db.Model(&models.User{}).
		Where("username = ? AND role = ?", "admin", "admin").
		Update("password", hashed)
	if result.Error != nil {
		log.Fatalf("Failed to update password: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		log.Fatal("No admin user found")
	}

	fmt.Println("Admin password updated")
}
