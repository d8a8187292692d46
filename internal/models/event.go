package models

import "time"

// EventSignup records that a user joined a community event. The event catalog
// itself is presentation-layer content; only the signup is persisted.
type EventSignup struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     string    `gorm:"type:char(36);not null;index:idx_user_event,unique" json:"userId"`
	EventID    int64     `gorm:"not null;index:idx_user_event,unique" json:"eventId"`
	EventTitle string    `gorm:"size:255;not null" json:"eventTitle"`
	EventDate  time.Time `json:"eventDate"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TableName overrides the table name for EventSignup
func (EventSignup) TableName() string {
	return "user_events"
}
