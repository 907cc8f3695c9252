package store

import (
	"github.com/causeconnect-dev/causeconnect/internal/models"
	"gorm.io/gorm"
)

// NGOStore defines persistence operations for NGOs.
type NGOStore interface {
	Create(ngo *models.NGO) error
	// GetByID loads the NGO with its events (and their volunteer rows),
	// donations, and favorites.
	GetByID(id uint) (*models.NGO, error)
	List() ([]models.NGO, error)
	Update(id uint, updates map[string]interface{}) (*models.NGO, error)
	// Delete removes the NGO's donations, events (with their volunteer rows),
	// and favorites before the NGO row itself, in a single transaction.
	Delete(id uint) error
}

type PostgresNGOStore struct {
	db *gorm.DB
}

func NewPostgresNGOStore(db *gorm.DB) *PostgresNGOStore {
	return &PostgresNGOStore{db: db}
}

func (s *PostgresNGOStore) Create(ngo *models.NGO) error {
	return s.db.Create(ngo).Error
}

func (s *PostgresNGOStore) GetByID(id uint) (*models.NGO, error) {
	var ngo models.NGO

	err := s.db.
		Preload("Events.Volunteers.User").
		Preload("Donations").
		Preload("Favorites").
		First(&ngo, id).Error

	if err != nil {
		return nil, err
	}

	return &ngo, nil
}

func (s *PostgresNGOStore) List() ([]models.NGO, error) {
	var ngos []models.NGO
	if err := s.db.Order("created_at DESC").Find(&ngos).Error; err != nil {
		return nil, err
	}
	return ngos, nil
}

func (s *PostgresNGOStore) Update(id uint, updates map[string]interface{}) (*models.NGO, error) {
	var ngo models.NGO

	if err := s.db.First(&ngo, id).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.Model(&ngo).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.First(&ngo, id).Error; err != nil {
		return nil, err
	}

	return &ngo, nil
}

func (s *PostgresNGOStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return deleteNGOTx(tx, id)
	})
}

// deleteNGOTx performs the child-before-parent cascade inside an open
// transaction. Shared with the user cascade, which removes owned NGOs.
func deleteNGOTx(tx *gorm.DB, ngoID uint) error {
	var eventIDs []uint
	if err := tx.Model(&models.Event{}).Where("ngo_id = ?", ngoID).Pluck("id", &eventIDs).Error; err != nil {
		return err
	}

	if len(eventIDs) > 0 {
		if err := tx.Where("event_id IN ?", eventIDs).Delete(&models.EventVolunteer{}).Error; err != nil {
			return err
		}
	}

	if err := tx.Where("ngo_id = ?", ngoID).Delete(&models.Event{}).Error; err != nil {
		return err
	}

	if err := tx.Where("ngo_id = ?", ngoID).Delete(&models.Donation{}).Error; err != nil {
		return err
	}

	if err := tx.Where("ngo_id = ?", ngoID).Delete(&models.Favorite{}).Error; err != nil {
		return err
	}

	return tx.Delete(&models.NGO{}, ngoID).Error
}
