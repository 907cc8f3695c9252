package models

import "time"

type NGO struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name         string `gorm:"not null;index" json:"name"`
	Cause        string `gorm:"not null" json:"cause"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	ContactInfo  string `json:"contact_info"`
	DonationLink string `json:"donation_link"`
	NGOPicture   string `json:"ngo_picture"`
	CreatedBy    uint   `gorm:"not null;index" json:"created_by"`

	// Relationships
	Owner     User       `gorm:"foreignKey:CreatedBy" json:"-"`
	Events    []Event    `gorm:"foreignKey:NGOID" json:"events,omitempty"`
	Donations []Donation `gorm:"foreignKey:NGOID" json:"donations,omitempty"`
	Favorites []Favorite `gorm:"foreignKey:NGOID" json:"favorites,omitempty"`
}
