package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/greenloop/ewastedb/internal/models"
	"github.com/greenloop/ewastedb/internal/types"
	"gorm.io/gorm"
)

const (
	defaultActivityLimit = 10
	maxActivityLimit     = 100
)

// AppendActivity inserts one timeline entry. Callers inside a transaction pass
// the transaction handle so the entry commits or rolls back with the mutation
// it records.
func AppendActivity(db *gorm.DB, userID, activityType, title, description, relatedID, status string) error {
	if strings.TrimSpace(title) == "" {
		return types.ValidationError("activity title is required")
	}

	entry := models.Activity{
		ID:           uuid.NewString(),
		UserID:       userID,
		ActivityType: activityType,
		Title:        title,
		Description:  description,
		RelatedID:    relatedID,
		Status:       status,
	}
	if err := db.Create(&entry).Error; err != nil {
		return types.FetchError(err)
	}
	return nil
}

// RecentActivities returns the newest entries for a user, newest first.
// A non-positive limit falls back to the default; the cap bounds the feed.
func RecentActivities(db *gorm.DB, userID string, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	var entries []models.Activity
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, types.FetchError(err)
	}
	return entries, nil
}
