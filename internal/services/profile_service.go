package services

import (
	"errors"

	"github.com/greenloop/ewastedb/internal/models"
	"github.com/greenloop/ewastedb/internal/types"
	"gorm.io/gorm"
)

// GetProfile returns the user's profile, or an empty profile when none has
// been saved yet. The dashboard shell treats both the same way.
func GetProfile(db *gorm.DB, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Profile{UserID: userID}, nil
		}
		return nil, types.FetchError(err)
	}
	return &profile, nil
}

// UpsertProfile creates or updates the user's profile row. Assign takes a
// map so empty strings clear stored values instead of being skipped as
// zero-valued struct fields.
func UpsertProfile(db *gorm.DB, userID, username, fullName string) (*models.Profile, error) {
	profile := models.Profile{UserID: userID}
	err := db.Where("user_id = ?", userID).
		Assign(map[string]interface{}{
			"username":  username,
			"full_name": fullName,
		}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, types.FetchError(err)
	}
	return &profile, nil
}
