package database

import (
	"northgate/internal/models"

	"gorm.io/gorm"
)

// RegisteredModels lists every model included in automatic migration.
// Keep this in sync when adding new entities.
func RegisteredModels() []any {
	return []any{
		&models.Contact{},
		&models.JobApplication{},
		&models.GetStartedRequest{},
		&models.ResumeUpload{},
		&models.NewsletterSubscriber{},
		&models.BlogPost{},
		&models.JobPosting{},
	}
}

// Migrate runs AutoMigrate for every registered model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(RegisteredModels()...)
}
