package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"crm/database"
	"crm/models"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[CLEANUP-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeExpiredLoginCodes hard-deletes login codes that expired or were used.
func purgeExpiredLoginCodes() {
	db := database.Database.Db
	now := time.Now()

	result := db.Unscoped().
		Where("expires_at < ? OR used = ?", now, true).
		Delete(&models.LoginCode{})
	if result.Error != nil {
		logScheduler("Error purging login codes: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Purged expired login codes")
	}
}

// InitializeCleanupScheduler starts the background cleanup jobs.
func InitializeCleanupScheduler() *cron.Cron {
	c := cron.New()

	// Every 10 minutes
	if _, err := c.AddFunc("*/10 * * * *", purgeExpiredLoginCodes); err != nil {
		log.Fatalf("Failed to register cleanup job: %v", err)
	}

	c.Start()
	logScheduler("Cleanup scheduler started")
	return c
}
