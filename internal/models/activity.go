package models

import "time"

// Activity types written by the domain operations.
const (
	ActivityDeviceAdded         = "device_added"
	ActivityDeviceRemoved       = "device_removed"
	ActivityPickupScheduled     = "pickup_scheduled"
	ActivityDeviceDonated       = "device_donated"
	ActivityDeviceRecycled      = "device_recycled"
	ActivityCertificationEarned = "certification_earned"
)

// Activity display statuses.
const (
	ActivityStatusPending   = "pending"
	ActivityStatusCompleted = "completed"
	ActivityStatusAchieved  = "achieved"
)

// Activity is one append-only timeline entry. Rows are never updated or
// deleted; the feed reads them newest first.
type Activity struct {
	ID           string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID       string    `gorm:"type:char(36);not null;index:idx_activities_user_created" json:"userId"`
	ActivityType string    `gorm:"size:40;not null" json:"activityType"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	RelatedID    string    `gorm:"type:char(36)" json:"relatedId,omitempty"`
	Status       string    `gorm:"size:20;not null" json:"status"`
	CreatedAt    time.Time `gorm:"index:idx_activities_user_created" json:"createdAt"`
}

// TableName overrides the table name for Activity
func (Activity) TableName() string {
	return "activities"
}
