package store

import (
	"github.com/causeconnect-dev/causeconnect/internal/models"
	"gorm.io/gorm"
)

// UserStore defines persistence operations for user accounts.
type UserStore interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List() ([]models.User, error)
	Update(id uint, updates map[string]interface{}) (*models.User, error)
	// Delete removes the user and everything they own: donations, favorites,
	// volunteer registrations, notifications, and each of their NGOs with the
	// full NGO cascade. The whole removal is one transaction.
	Delete(id uint) error
}

type PostgresUserStore struct {
	db *gorm.DB
}

func NewPostgresUserStore(db *gorm.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *PostgresUserStore) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *PostgresUserStore) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *PostgresUserStore) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *PostgresUserStore) Update(id uint, updates map[string]interface{}) (*models.User, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *PostgresUserStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var ngoIDs []uint
		if err := tx.Model(&models.NGO{}).Where("created_by = ?", id).Pluck("id", &ngoIDs).Error; err != nil {
			return err
		}

		for _, ngoID := range ngoIDs {
			if err := deleteNGOTx(tx, ngoID); err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Donation{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.EventVolunteer{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Notification{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.User{}, id).Error
	})
}
