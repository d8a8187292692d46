package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/greenloop/ewastedb/internal/models"
	"github.com/greenloop/ewastedb/internal/types"
	"gorm.io/gorm"
)

// DonateDevice records a one-time donation of a single pending device to a
// named recipient organization. The donation row, the device transition to
// donated and the device_donated activity commit in one transaction.
func DonateDevice(db *gorm.DB, userID, recipient string, date time.Time, deviceID string) (*models.Donation, error) {
	if strings.TrimSpace(recipient) == "" {
		return nil, types.ValidationError("recipient organization is required")
	}
	if err := validateWindow(date, donationWindowMonths, "donation"); err != nil {
		return nil, err
	}
	if deviceID == "" {
		return nil, types.ValidationError("a device is required")
	}

	donation := &models.Donation{
		ID:           uuid.NewString(),
		UserID:       userID,
		Recipient:    recipient,
		DonationDate: date,
		DeviceID:     deviceID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		devices, err := loadPendingDevices(tx, userID, []string{deviceID})
		if err != nil {
			return err
		}

		if err := tx.Create(donation).Error; err != nil {
			return types.FetchError(err)
		}

		if err := tx.Model(&models.Device{}).
			Where("id = ?", devices[0].ID).
			Update("status", models.DeviceStatusDonated).Error; err != nil {
			return types.FetchError(err)
		}

		return AppendActivity(tx, userID,
			models.ActivityDeviceDonated,
			"Device Donated",
			fmt.Sprintf("Donated to %s", recipient),
			donation.ID,
			models.ActivityStatusCompleted)
	})
	if err != nil {
		return nil, err
	}
	return donation, nil
}

// ListDonations returns all donations for a user, most recent first.
func ListDonations(db *gorm.DB, userID string) ([]models.Donation, error) {
	var donations []models.Donation
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&donations).Error
	if err != nil {
		return nil, types.FetchError(err)
	}
	return donations, nil
}
