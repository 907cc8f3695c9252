package store

import (
	"github.com/causeconnect-dev/causeconnect/internal/models"
	"gorm.io/gorm"
)

// EventStore defines persistence operations for events.
type EventStore interface {
	Create(event *models.Event) error
	GetByID(id uint) (*models.Event, error)
	List() ([]models.Event, error)
	ListByOrganizer(organizerID uint) ([]models.Event, error)
	Update(id uint, updates map[string]interface{}) (*models.Event, error)
	// Delete removes the event's volunteer rows first, then the event.
	Delete(id uint) error
}

type PostgresEventStore struct {
	db *gorm.DB
}

func NewPostgresEventStore(db *gorm.DB) *PostgresEventStore {
	return &PostgresEventStore{db: db}
}

func (s *PostgresEventStore) Create(event *models.Event) error {
	return s.db.Create(event).Error
}

func (s *PostgresEventStore) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := s.db.Preload("Volunteers.User").First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *PostgresEventStore) List() ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Preload("Volunteers").Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *PostgresEventStore) ListByOrganizer(organizerID uint) ([]models.Event, error) {
	var events []models.Event

	err := s.db.
		Preload("Volunteers").
		Joins("JOIN ngos ON ngos.id = events.ngo_id").
		Where("ngos.created_by = ?", organizerID).
		Order("events.created_at DESC").
		Find(&events).Error

	if err != nil {
		return nil, err
	}

	return events, nil
}

func (s *PostgresEventStore) Update(id uint, updates map[string]interface{}) (*models.Event, error) {
	var event models.Event

	if err := s.db.First(&event, id).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.Model(&event).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.First(&event, id).Error; err != nil {
		return nil, err
	}

	return &event, nil
}

func (s *PostgresEventStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.EventVolunteer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, id).Error
	})
}
