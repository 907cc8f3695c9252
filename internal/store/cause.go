package store

import (
	"github.com/causeconnect-dev/causeconnect/internal/models"
	"gorm.io/gorm"
)

// CauseStore defines persistence operations for causes.
type CauseStore interface {
	Create(cause *models.Cause) error
	GetByID(id uint) (*models.Cause, error)
	List() ([]models.Cause, error)
}

type PostgresCauseStore struct {
	db *gorm.DB
}

func NewPostgresCauseStore(db *gorm.DB) *PostgresCauseStore {
	return &PostgresCauseStore{db: db}
}

func (s *PostgresCauseStore) Create(cause *models.Cause) error {
	return s.db.Create(cause).Error
}

func (s *PostgresCauseStore) GetByID(id uint) (*models.Cause, error) {
	var cause models.Cause
	if err := s.db.First(&cause, id).Error; err != nil {
		return nil, err
	}
	return &cause, nil
}

func (s *PostgresCauseStore) List() ([]models.Cause, error) {
	var causes []models.Cause
	if err := s.db.Order("created_at DESC").Find(&causes).Error; err != nil {
		return nil, err
	}
	return causes, nil
}
