package models

import "time"

// DeviceType is one entry of the fixed device catalog.
type DeviceType string

const (
	DeviceSmartphone  DeviceType = "Smartphone"
	DeviceLaptop      DeviceType = "Laptop"
	DeviceDesktop     DeviceType = "Desktop Computer"
	DeviceTablet      DeviceType = "Tablet"
	DeviceMonitor     DeviceType = "Monitor"
	DevicePrinter     DeviceType = "Printer"
	DeviceKeyboard    DeviceType = "Keyboard"
	DeviceMouse       DeviceType = "Mouse"
	DeviceSpeaker     DeviceType = "Speaker"
	DeviceHeadphone   DeviceType = "Headphone"
	DeviceCamera      DeviceType = "Camera"
	DeviceGameConsole DeviceType = "Game Console"
	DeviceTV          DeviceType = "TV"
	DeviceOther       DeviceType = "Other"
)

// DeviceCatalog lists every registrable device type, in display order.
var DeviceCatalog = []DeviceType{
	DeviceSmartphone,
	DeviceLaptop,
	DeviceDesktop,
	DeviceTablet,
	DeviceMonitor,
	DevicePrinter,
	DeviceKeyboard,
	DeviceMouse,
	DeviceSpeaker,
	DeviceHeadphone,
	DeviceCamera,
	DeviceGameConsole,
	DeviceTV,
	DeviceOther,
}

// ValidDeviceType reports whether t is a member of the catalog.
func ValidDeviceType(t DeviceType) bool {
	for _, c := range DeviceCatalog {
		if t == c {
			return true
		}
	}
	return false
}

// Device lifecycle statuses. pending is initial; recycled and donated are
// terminal; scheduled is reachable only through a pickup and resolves to
// recycled on completion or back to pending on cancellation.
const (
	DeviceStatusPending   = "pending"
	DeviceStatusScheduled = "scheduled"
	DeviceStatusRecycled  = "recycled"
	DeviceStatusDonated   = "donated"
)

// Device represents one physical electronic item registered by a user.
type Device struct {
	ID          string     `gorm:"type:char(36);primaryKey" json:"id"`
	UserID      string     `gorm:"type:char(36);not null;index" json:"userId"`
	DeviceName  string     `gorm:"size:255;not null" json:"deviceName"`
	DeviceType  DeviceType `gorm:"size:64;not null" json:"deviceType"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Status      string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TableName overrides the table name for Device
func (Device) TableName() string {
	return "devices"
}
