package store

import (
	"github.com/causeconnect-dev/causeconnect/internal/models"
	"gorm.io/gorm"
)

// DonationStore defines persistence operations for donations.
type DonationStore interface {
	Create(donation *models.Donation) error
	ListByUser(userID uint) ([]models.Donation, error)
}

type PostgresDonationStore struct {
	db *gorm.DB
}

func NewPostgresDonationStore(db *gorm.DB) *PostgresDonationStore {
	return &PostgresDonationStore{db: db}
}

func (s *PostgresDonationStore) Create(donation *models.Donation) error {
	return s.db.Create(donation).Error
}

func (s *PostgresDonationStore) ListByUser(userID uint) ([]models.Donation, error) {
	var donations []models.Donation
	err := s.db.Preload("NGO").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}
