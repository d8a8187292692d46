package models

import "time"

// Profile holds the display identity for a user, keyed by the hosted auth
// provider's user id. Read by the dashboard shell.
type Profile struct {
	UserID    string    `gorm:"type:char(36);primaryKey" json:"userId"`
	Username  string    `gorm:"size:255" json:"username"`
	FullName  string    `gorm:"size:255" json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
