package models

import (
	"time"

	"gorm.io/gorm"
)

// LoginCode is a short-lived six digit code mailed to the user at login.
// Expired rows are purged by the cleanup scheduler.
type LoginCode struct {
	gorm.Model
	Email     string `gorm:"not null;index"`
	Code      string `gorm:"not null"`
	ExpiresAt time.Time
	Used      bool `gorm:"default:false"`
}
