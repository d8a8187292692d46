package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Pickup statuses. scheduled is initial; completed and cancelled are terminal.
const (
	PickupStatusScheduled = "scheduled"
	PickupStatusCompleted = "completed"
	PickupStatusCancelled = "cancelled"
)

// DeviceIDList stores an ordered list of device ids as a JSON column,
// wrapping gorm.io/datatypes.JSON for custom data type mapping.
type DeviceIDList struct {
	datatypes.JSON
}

// NewDeviceIDList builds a DeviceIDList from device ids.
func NewDeviceIDList(ids []string) DeviceIDList {
	raw, _ := json.Marshal(ids)
	return DeviceIDList{JSON: datatypes.JSON(raw)}
}

// Strings decodes the list back to a slice of device ids.
func (l DeviceIDList) Strings() []string {
	var ids []string
	if err := json.Unmarshal(l.JSON, &ids); err != nil {
		return nil
	}
	return ids
}

// Value promotes the embedded JSON's Value method
func (l DeviceIDList) Value() (driver.Value, error) {
	return l.JSON.Value()
}

// Scan promotes the embedded JSON's Scan method
func (l *DeviceIDList) Scan(value interface{}) error {
	return l.JSON.Scan(value)
}

// MarshalJSON renders the list as a plain JSON array.
func (l DeviceIDList) MarshalJSON() ([]byte, error) {
	if len(l.JSON) == 0 {
		return []byte("[]"), nil
	}
	return l.JSON.MarshalJSON()
}

// UnmarshalJSON accepts a plain JSON array of device ids.
func (l *DeviceIDList) UnmarshalJSON(data []byte) error {
	return l.JSON.UnmarshalJSON(data)
}

// GormDBDataType ensures the correct data type is used for each database driver.
// This resolves the issue where MSSQL does not support the 'json' data type.
func (DeviceIDList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}

// Pickup represents a scheduled collection event for one or more devices.
// Immutable once created except for status.
type Pickup struct {
	ID         string       `gorm:"type:char(36);primaryKey" json:"id"`
	UserID     string       `gorm:"type:char(36);not null;index" json:"userId"`
	PickupDate time.Time    `gorm:"not null" json:"pickupDate"`
	Address    string       `gorm:"type:text;not null" json:"address"`
	Devices    DeviceIDList `json:"devices"`
	Status     string       `gorm:"size:20;not null;default:'scheduled';index" json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// TableName overrides the table name for Pickup
func (Pickup) TableName() string {
	return "pickups"
}
