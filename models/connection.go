package models

import (
	"time"
)

// Connection is one row of the camera connection log. DisconnectTime is
// nullable and currently never written: nothing in the system observes a
// camera going away, so only the connect side of the log is populated.
type Connection struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	CameraNumber   int        `json:"camera_number" gorm:"index;not null"`
	ConnectionTime time.Time  `json:"connection_time"`
	DisconnectTime *time.Time `json:"disconnect_time,omitempty"`
}
