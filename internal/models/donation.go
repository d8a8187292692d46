package models

import "time"

// Donation represents a one-time donation of exactly one device to a named
// recipient organization. Immutable after creation.
type Donation struct {
	ID           string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID       string    `gorm:"type:char(36);not null;index" json:"userId"`
	Recipient    string    `gorm:"size:255;not null" json:"recipient"`
	DonationDate time.Time `gorm:"not null" json:"donationDate"`
	DeviceID     string    `gorm:"type:char(36);not null;index" json:"deviceId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName overrides the table name for Donation
func (Donation) TableName() string {
	return "donations"
}
