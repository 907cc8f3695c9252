package models

import "time"

type Donation struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID  uint    `gorm:"not null;index" json:"user_id"`
	NGOID   uint    `gorm:"not null;index" json:"ngo_id"`
	Amount  float64 `gorm:"not null" json:"amount"`
	Message string  `json:"message"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
	NGO  NGO  `gorm:"foreignKey:NGOID" json:"ngo,omitempty"`
}
