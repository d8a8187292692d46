package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/greenloop/ewastedb/internal/models"
	"github.com/greenloop/ewastedb/internal/types"
	"gorm.io/gorm"
)

// Booking windows, measured from the moment of creation. Dates earlier today
// are accepted; the SPA's date pickers send midnight-of-day values.
const (
	pickupWindowMonths   = 3
	donationWindowMonths = 1
)

// startOfToday returns midnight of the current day in UTC.
func startOfToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// validateWindow checks that date falls within [start of today, now + months].
func validateWindow(date time.Time, months int, what string) error {
	if date.IsZero() {
		return types.ValidationError("%s date is required", what)
	}
	if date.Before(startOfToday()) {
		return types.ValidationError("%s date cannot be in the past", what)
	}
	if date.After(time.Now().UTC().AddDate(0, months, 0)) {
		return types.ValidationError("%s date cannot be more than %d months out", what, months)
	}
	return nil
}

// dedupe preserves order while dropping repeated ids. The caller's slice is
// left untouched.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// SchedulePickup creates one pickup covering deviceIDs, flips every device to
// scheduled and appends one pickup_scheduled activity. All three writes
// happen in a single transaction; a failure anywhere leaves no rows behind.
func SchedulePickup(db *gorm.DB, userID, address string, date time.Time, deviceIDs []string) (*models.Pickup, error) {
	if strings.TrimSpace(address) == "" {
		return nil, types.ValidationError("pickup address is required")
	}
	if err := validateWindow(date, pickupWindowMonths, "pickup"); err != nil {
		return nil, err
	}
	deviceIDs = dedupe(deviceIDs)
	if len(deviceIDs) == 0 {
		return nil, types.ValidationError("at least one device is required")
	}

	pickup := &models.Pickup{
		ID:         uuid.NewString(),
		UserID:     userID,
		PickupDate: date,
		Address:    address,
		Devices:    models.NewDeviceIDList(deviceIDs),
		Status:     models.PickupStatusScheduled,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		devices, err := loadPendingDevices(tx, userID, deviceIDs)
		if err != nil {
			return err
		}

		if err := tx.Create(pickup).Error; err != nil {
			return types.FetchError(err)
		}

		for _, d := range devices {
			if err := tx.Model(&models.Device{}).
				Where("id = ?", d.ID).
				Update("status", models.DeviceStatusScheduled).Error; err != nil {
				return types.FetchError(err)
			}
		}

		return AppendActivity(tx, userID,
			models.ActivityPickupScheduled,
			"Pickup Scheduled",
			fmt.Sprintf("Scheduled for %s", date.Format("January 2, 2006")),
			pickup.ID,
			models.ActivityStatusPending)
	})
	if err != nil {
		return nil, err
	}
	return pickup, nil
}

// ListPickups returns all pickups for a user, most recent first.
func ListPickups(db *gorm.DB, userID string) ([]models.Pickup, error) {
	var pickups []models.Pickup
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&pickups).Error
	if err != nil {
		return nil, types.FetchError(err)
	}
	return pickups, nil
}

// loadScheduledPickup locks one scheduled pickup owned by userID.
func loadScheduledPickup(tx *gorm.DB, userID, pickupID string) (*models.Pickup, error) {
	var pickup models.Pickup
	err := lockForUpdate(tx).
		Where("id = ? AND user_id = ?", pickupID, userID).
		First(&pickup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFoundError("pickup %s not found", pickupID)
		}
		return nil, types.FetchError(err)
	}
	if pickup.Status != models.PickupStatusScheduled {
		return nil, types.ValidationError("pickup %s is already %s", pickupID, pickup.Status)
	}
	return &pickup, nil
}

// CompletePickup marks a scheduled pickup completed, resolves its devices
// from scheduled to recycled and appends one device_recycled activity.
func CompletePickup(db *gorm.DB, userID, pickupID string) (*models.Pickup, error) {
	var pickup *models.Pickup
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		pickup, err = loadScheduledPickup(tx, userID, pickupID)
		if err != nil {
			return err
		}

		ids := pickup.Devices.Strings()
		if len(ids) > 0 {
			if err := tx.Model(&models.Device{}).
				Where("user_id = ? AND status = ? AND id IN ?", userID, models.DeviceStatusScheduled, ids).
				Update("status", models.DeviceStatusRecycled).Error; err != nil {
				return types.FetchError(err)
			}
		}

		pickup.Status = models.PickupStatusCompleted
		if err := tx.Model(pickup).Update("status", models.PickupStatusCompleted).Error; err != nil {
			return types.FetchError(err)
		}

		return AppendActivity(tx, userID,
			models.ActivityDeviceRecycled,
			"Devices Recycled",
			fmt.Sprintf("%d device(s) collected and recycled", len(ids)),
			pickup.ID,
			models.ActivityStatusCompleted)
	})
	if err != nil {
		return nil, err
	}
	return pickup, nil
}

// CancelPickup marks a scheduled pickup cancelled and returns its devices to
// the pending pool. No activity entry is written; the devices are back where
// they started.
func CancelPickup(db *gorm.DB, userID, pickupID string) (*models.Pickup, error) {
	var pickup *models.Pickup
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		pickup, err = loadScheduledPickup(tx, userID, pickupID)
		if err != nil {
			return err
		}

		ids := pickup.Devices.Strings()
		if len(ids) > 0 {
			if err := tx.Model(&models.Device{}).
				Where("user_id = ? AND status = ? AND id IN ?", userID, models.DeviceStatusScheduled, ids).
				Update("status", models.DeviceStatusPending).Error; err != nil {
				return types.FetchError(err)
			}
		}

		pickup.Status = models.PickupStatusCancelled
		if err := tx.Model(pickup).Update("status", models.PickupStatusCancelled).Error; err != nil {
			return types.FetchError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pickup, nil
}
