package models

import "time"

// Role is the closed set of account roles. Authorization is expressed
// through the capability methods rather than string comparisons scattered
// across resolvers.
type Role string

const (
	RoleUser      Role = "user"
	RoleOrganizer Role = "organizer"
)

// CanManageNGOs reports whether the role is allowed to create NGOs and
// manage their events and causes.
func (r Role) CanManageNGOs() bool {
	return r == RoleOrganizer
}

// CanListUsers reports whether the role may read other users' accounts.
func (r Role) CanListUsers() bool {
	return r == RoleOrganizer
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleOrganizer
}

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string `gorm:"not null" json:"-"`
	FullName       string `gorm:"not null" json:"full_name"`
	Role           Role   `gorm:"type:varchar(16);not null;default:user" json:"role"`
	ProfilePicture string `json:"profile_picture"`
	Phone          string `json:"phone"`
	Description    string `json:"description"`

	// Relationships
	NGOs          []NGO            `gorm:"foreignKey:CreatedBy" json:"ngos,omitempty"`
	Donations     []Donation       `gorm:"foreignKey:UserID" json:"donations,omitempty"`
	Favorites     []Favorite       `gorm:"foreignKey:UserID" json:"favorites,omitempty"`
	Registrations []EventVolunteer `gorm:"foreignKey:UserID" json:"registrations,omitempty"`
	Notifications []Notification   `gorm:"foreignKey:UserID" json:"notifications,omitempty"`
}
