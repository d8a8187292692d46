package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/greenloop/ewastedb/internal/models"
	"github.com/greenloop/ewastedb/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate adds a row lock where the dialect supports one. SQLite has no
// row locks; its writes are serialized by the engine.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// AddDevice registers a new device with status pending and records a
// device_added activity in the same transaction.
func AddDevice(db *gorm.DB, userID, name string, deviceType models.DeviceType, description string) (*models.Device, error) {
	if strings.TrimSpace(name) == "" {
		return nil, types.ValidationError("device name is required")
	}
	if !models.ValidDeviceType(deviceType) {
		return nil, types.ValidationError("unknown device type %q", deviceType)
	}

	device := &models.Device{
		ID:          uuid.NewString(),
		UserID:      userID,
		DeviceName:  name,
		DeviceType:  deviceType,
		Description: description,
		Status:      models.DeviceStatusPending,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(device).Error; err != nil {
			return types.FetchError(err)
		}
		return AppendActivity(tx, userID,
			models.ActivityDeviceAdded,
			"Device Added",
			fmt.Sprintf("Added %s (%s)", name, deviceType),
			device.ID,
			models.ActivityStatusCompleted)
	})
	if err != nil {
		return nil, err
	}
	return device, nil
}

// ListDevices returns all devices for a user, most recent first.
func ListDevices(db *gorm.DB, userID string) ([]models.Device, error) {
	var devices []models.Device
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&devices).Error
	if err != nil {
		return nil, types.FetchError(err)
	}
	return devices, nil
}

// ListAvailableDevices returns the user's devices still in the pending pool,
// the candidates for a pickup or donation.
func ListAvailableDevices(db *gorm.DB, userID string) ([]models.Device, error) {
	var devices []models.Device
	err := db.Where("user_id = ? AND status = ?", userID, models.DeviceStatusPending).
		Order("created_at DESC").
		Find(&devices).Error
	if err != nil {
		return nil, types.FetchError(err)
	}
	return devices, nil
}

// DeleteDevice removes one device and records a device_removed activity.
// A device referenced by an active pickup (status scheduled) cannot be
// deleted; cancel or complete the pickup first. Historical pickup, donation
// and activity rows for deleted devices are kept as audit history.
func DeleteDevice(db *gorm.DB, userID, deviceID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var device models.Device
		err := lockForUpdate(tx).
			Where("id = ? AND user_id = ?", deviceID, userID).
			First(&device).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.NotFoundError("device %s not found", deviceID)
			}
			return types.FetchError(err)
		}

		if device.Status == models.DeviceStatusScheduled {
			return types.ValidationError("device %s is part of an active pickup", deviceID)
		}

		if err := tx.Delete(&device).Error; err != nil {
			return types.FetchError(err)
		}
		return AppendActivity(tx, userID,
			models.ActivityDeviceRemoved,
			"Device Removed",
			"Device has been removed from your inventory",
			device.ID,
			models.ActivityStatusCompleted)
	})
}

// loadPendingDevices resolves device ids to rows owned by userID with status
// pending, locking them for the surrounding disposition transaction. Any id
// that does not resolve fails the whole set.
func loadPendingDevices(tx *gorm.DB, userID string, deviceIDs []string) ([]models.Device, error) {
	var devices []models.Device
	err := lockForUpdate(tx).
		Where("user_id = ? AND status = ? AND id IN ?", userID, models.DeviceStatusPending, deviceIDs).
		Find(&devices).Error
	if err != nil {
		return nil, types.FetchError(err)
	}

	if len(devices) != len(deviceIDs) {
		found := make(map[string]bool, len(devices))
		for _, d := range devices {
			found[d.ID] = true
		}
		for _, id := range deviceIDs {
			if !found[id] {
				return nil, types.NotFoundError("device %s not found or not pending", id)
			}
		}
	}
	return devices, nil
}
