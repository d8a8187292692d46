package services_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/greenloop/ewastedb/internal/models"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Auto-migrate models
	err = db.AutoMigrate(
		&models.Device{},
		&models.Pickup{},
		&models.Donation{},
		&models.Activity{},
		&models.Profile{},
		&models.EventSignup{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// countActivities counts timeline entries of one type for a user
func countActivities(t *testing.T, db *gorm.DB, userID, activityType string) int64 {
	var n int64
	err := db.Model(&models.Activity{}).
		Where("user_id = ? AND activity_type = ?", userID, activityType).
		Count(&n).Error
	if err != nil {
		t.Fatalf("Failed to count activities: %v", err)
	}
	return n
}

// deviceStatus reads the current status of one device row
func deviceStatus(t *testing.T, db *gorm.DB, deviceID string) string {
	var device models.Device
	if err := db.First(&device, "id = ?", deviceID).Error; err != nil {
		t.Fatalf("Failed to load device %s: %v", deviceID, err)
	}
	return device.Status
}
