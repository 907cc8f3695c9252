package store

import (
	"github.com/causeconnect-dev/causeconnect/internal/models"
	"gorm.io/gorm"
)

// FavoriteStore defines persistence operations for bookmarked NGOs.
type FavoriteStore interface {
	Add(favorite *models.Favorite) error
	Exists(userID, ngoID uint) (bool, error)
	// Remove deletes the favorite and reports whether a row existed. Removal
	// is idempotent at the API level, so a missing row is not an error.
	Remove(userID, ngoID uint) (bool, error)
	ListByUser(userID uint) ([]models.Favorite, error)
}

type PostgresFavoriteStore struct {
	db *gorm.DB
}

func NewPostgresFavoriteStore(db *gorm.DB) *PostgresFavoriteStore {
	return &PostgresFavoriteStore{db: db}
}

func (s *PostgresFavoriteStore) Add(favorite *models.Favorite) error {
	return s.db.Create(favorite).Error
}

func (s *PostgresFavoriteStore) Exists(userID, ngoID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Favorite{}).
		Where("user_id = ? AND ngo_id = ?", userID, ngoID).
		Count(&count).Error
	return count > 0, err
}

func (s *PostgresFavoriteStore) Remove(userID, ngoID uint) (bool, error) {
	res := s.db.Where("user_id = ? AND ngo_id = ?", userID, ngoID).Delete(&models.Favorite{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *PostgresFavoriteStore) ListByUser(userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := s.db.Preload("NGO").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
