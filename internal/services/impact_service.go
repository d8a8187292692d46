package services

import (
	"github.com/greenloop/ewastedb/internal/models"
	"github.com/greenloop/ewastedb/internal/types"
	"gorm.io/gorm"
)

// ImpactSnapshot is the derived environmental-impact summary for one user.
// Computed on demand, never persisted.
type ImpactSnapshot struct {
	TotalDevices     int64   `json:"totalDevices"`
	RecycledDevices  int64   `json:"recycledDevices"`
	DonatedDevices   int64   `json:"donatedDevices"`
	ScheduledPickups int64   `json:"scheduledPickups"`
	CO2SavedKg       float64 `json:"co2SavedKg"`
	MaterialsSavedKg float64 `json:"materialsSavedKg"`
	BadgeTier        string  `json:"badgeTier,omitempty"`
}

// ComputeImpact recomputes the snapshot from the current device and pickup
// rows. Only recycled and donated devices count toward the CO2/material
// totals; everything else contributes to the device count alone. The result
// is a pure function of the stored rows, so recomputing on unchanged data
// always yields identical totals.
func ComputeImpact(db *gorm.DB, userID string) (*ImpactSnapshot, error) {
	var devices []models.Device
	if err := db.Where("user_id = ?", userID).Find(&devices).Error; err != nil {
		return nil, types.FetchError(err)
	}

	var scheduledPickups int64
	err := db.Model(&models.Pickup{}).
		Where("user_id = ? AND status = ?", userID, models.PickupStatusScheduled).
		Count(&scheduledPickups).Error
	if err != nil {
		return nil, types.FetchError(err)
	}

	snapshot := &ImpactSnapshot{
		TotalDevices:     int64(len(devices)),
		ScheduledPickups: scheduledPickups,
	}

	for _, d := range devices {
		switch d.Status {
		case models.DeviceStatusRecycled:
			snapshot.RecycledDevices++
		case models.DeviceStatusDonated:
			snapshot.DonatedDevices++
		default:
			continue
		}
		factor := models.FactorFor(d.DeviceType)
		snapshot.CO2SavedKg += factor.CO2Kg
		snapshot.MaterialsSavedKg += factor.MaterialsKg
	}

	snapshot.BadgeTier = models.BadgeFor(snapshot.RecycledDevices + snapshot.DonatedDevices)
	return snapshot, nil
}
