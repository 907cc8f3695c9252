package models

import "time"

type Event struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	NGOID            uint      `gorm:"not null;index" json:"ngo_id"`
	Title            string    `gorm:"not null" json:"title"`
	Description      string    `json:"description"`
	EventDate        time.Time `gorm:"not null" json:"event_date"`
	Location         string    `json:"location"`
	VolunteersNeeded int       `gorm:"not null;default:0" json:"volunteers_needed"`

	// Relationships
	NGO        NGO              `gorm:"foreignKey:NGOID" json:"-"`
	Volunteers []EventVolunteer `gorm:"foreignKey:EventID" json:"volunteers,omitempty"`
}
