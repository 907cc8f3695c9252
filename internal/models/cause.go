package models

import "time"

type Cause struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`

	// Relationships
	Notifications []Notification `gorm:"foreignKey:CauseID" json:"-"`
}
