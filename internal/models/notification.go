package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID  uint           `gorm:"not null;index" json:"user_id"`
	CauseID uint           `gorm:"not null;index" json:"cause_id"`
	Message string         `gorm:"not null" json:"message"`
	Meta    datatypes.JSON `gorm:"type:jsonb" json:"meta,omitempty"`

	// Relationships
	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Cause Cause `gorm:"foreignKey:CauseID" json:"cause,omitempty"`
}
