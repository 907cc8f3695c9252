package store

import (
	"github.com/causeconnect-dev/causeconnect/internal/models"
	"gorm.io/gorm"
)

// NotificationStore defines persistence operations for notifications.
type NotificationStore interface {
	Create(notification *models.Notification) error
	ListByUser(userID uint) ([]models.Notification, error)
}

type PostgresNotificationStore struct {
	db *gorm.DB
}

func NewPostgresNotificationStore(db *gorm.DB) *PostgresNotificationStore {
	return &PostgresNotificationStore{db: db}
}

func (s *PostgresNotificationStore) Create(notification *models.Notification) error {
	return s.db.Create(notification).Error
}

func (s *PostgresNotificationStore) ListByUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.Preload("Cause").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}
