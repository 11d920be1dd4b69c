package models

import (
	"time"
)

type Camera struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	CameraNumber int        `json:"camera_number" gorm:"uniqueIndex;not null"`
	CameraName   string     `json:"camera_name" gorm:"not null"`
	Location     string     `json:"location" gorm:"not null"`
	IPAddress    string     `json:"ip_address"`
	Status       string     `json:"status" gorm:"default:offline"` // online, offline
	LastSeen     *time.Time `json:"last_seen,omitempty"`
	Password     string     `json:"-" gorm:"not null"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
