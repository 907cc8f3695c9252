package store

import (
	"github.com/causeconnect-dev/causeconnect/internal/models"
	"gorm.io/gorm"
)

// VolunteerStore defines persistence operations for event registrations.
type VolunteerStore interface {
	Register(volunteer *models.EventVolunteer) error
	Exists(eventID, userID uint) (bool, error)
	// Remove deletes the registration and reports whether a row existed.
	Remove(eventID, userID uint) (bool, error)
}

type PostgresVolunteerStore struct {
	db *gorm.DB
}

func NewPostgresVolunteerStore(db *gorm.DB) *PostgresVolunteerStore {
	return &PostgresVolunteerStore{db: db}
}

func (s *PostgresVolunteerStore) Register(volunteer *models.EventVolunteer) error {
	return s.db.Create(volunteer).Error
}

func (s *PostgresVolunteerStore) Exists(eventID, userID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.EventVolunteer{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error
	return count > 0, err
}

func (s *PostgresVolunteerStore) Remove(eventID, userID uint) (bool, error) {
	res := s.db.Where("event_id = ? AND user_id = ?", eventID, userID).Delete(&models.EventVolunteer{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
