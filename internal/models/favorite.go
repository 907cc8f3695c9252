package models

import "time"

// Favorite bookmarks an NGO for a user, at most once per pair.
type Favorite struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"not null;uniqueIndex:idx_user_ngo" json:"user_id"`
	NGOID  uint `gorm:"not null;uniqueIndex:idx_user_ngo" json:"ngo_id"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
	NGO  NGO  `gorm:"foreignKey:NGOID" json:"ngo,omitempty"`
}
