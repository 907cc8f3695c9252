package models

import "time"

// EventVolunteer links a user to an event they registered for. The composite
// unique index is the source of truth for the at-most-one-registration
// invariant; resolver-level pre-checks only exist for friendlier errors.
type EventVolunteer struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	EventID uint `gorm:"not null;uniqueIndex:idx_event_user" json:"event_id"`
	UserID  uint `gorm:"not null;uniqueIndex:idx_event_user" json:"user_id"`

	// Relationships
	Event Event `gorm:"foreignKey:EventID" json:"-"`
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
