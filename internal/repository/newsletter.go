package repository

import (
	"context"
	"strings"

	"northgate/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewsletterRepository defines persistence operations for newsletter subscribers.
type NewsletterRepository interface {
	// Subscribe upserts by email: re-subscribing an existing address succeeds
	// and reactivates it rather than erroring.
	Subscribe(ctx context.Context, email string) (*models.NewsletterSubscriber, error)
	List(ctx context.Context) ([]models.NewsletterSubscriber, error)
}

type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository returns a new NewsletterRepository implementation.
func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Subscribe(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	sub := models.NewsletterSubscriber{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		IsActive: true,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.Assignments(map[string]any{"is_active": true}),
		}).
		Create(&sub).Error
	if err != nil && !isUniqueConstraintError(err) {
		return nil, models.NewInternalError(err)
	}

	// Re-read so the caller sees the stored row (id, subscribed_at) after an upsert.
	if err := r.db.WithContext(ctx).Where("email = ?", sub.Email).First(&sub).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if !sub.IsActive {
		sub.IsActive = true
		if err := r.db.WithContext(ctx).Model(&sub).Update("is_active", true).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
	}
	return &sub, nil
}

func (r *newsletterRepository) List(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	var subs []models.NewsletterSubscriber
	if err := r.db.WithContext(ctx).Order("subscribed_at DESC").Find(&subs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return subs, nil
}
