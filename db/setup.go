package db

import (
	"github.com/causeconnect-dev/causeconnect/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase opens the shared gorm handle. TranslateError is enabled so
// unique-index violations surface as gorm.ErrDuplicatedKey and can be mapped
// to domain errors instead of raw driver errors.
func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.Cause{},
		&models.NGO{},
		&models.Event{},
		&models.EventVolunteer{},
		&models.Donation{},
		&models.Favorite{},
		&models.Notification{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
