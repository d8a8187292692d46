package services

import (
	"errors"
	"strings"
	"time"

	"github.com/greenloop/ewastedb/internal/models"
	"github.com/greenloop/ewastedb/internal/types"
	"gorm.io/gorm"
)

// JoinEvent records that the user is attending a community event. Joining an
// event twice is a validation error; the unique index backs that up.
func JoinEvent(db *gorm.DB, userID string, eventID int64, title string, date time.Time) (*models.EventSignup, error) {
	if strings.TrimSpace(title) == "" {
		return nil, types.ValidationError("event title is required")
	}

	var existing models.EventSignup
	err := db.Where("user_id = ? AND event_id = ?", userID, eventID).First(&existing).Error
	if err == nil {
		return nil, types.ValidationError("already joined event %d", eventID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, types.FetchError(err)
	}

	signup := &models.EventSignup{
		UserID:     userID,
		EventID:    eventID,
		EventTitle: title,
		EventDate:  date,
	}
	if err := db.Create(signup).Error; err != nil {
		return nil, types.FetchError(err)
	}
	return signup, nil
}

// LeaveEvent removes the user's signup for an event.
func LeaveEvent(db *gorm.DB, userID string, eventID int64) error {
	result := db.Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&models.EventSignup{})
	if result.Error != nil {
		return types.FetchError(result.Error)
	}
	if result.RowsAffected == 0 {
		return types.NotFoundError("no signup for event %d", eventID)
	}
	return nil
}

// ListEventSignups returns the user's event signups, soonest event first.
func ListEventSignups(db *gorm.DB, userID string) ([]models.EventSignup, error) {
	var signups []models.EventSignup
	err := db.Where("user_id = ?", userID).
		Order("event_date ASC").
		Find(&signups).Error
	if err != nil {
		return nil, types.FetchError(err)
	}
	return signups, nil
}
