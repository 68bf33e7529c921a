package repository

import (
	"context"
	"errors"

	"northgate/internal/models"

	"gorm.io/gorm"
)

// ApplicationRepository defines persistence operations for job applications.
// Status is the only mutable field after creation.
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.JobApplication) error
	List(ctx context.Context) ([]models.JobApplication, error)
	UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) (*models.JobApplication, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository returns a new ApplicationRepository implementation.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *models.JobApplication) error {
	if app.Status == "" {
		app.Status = models.ApplicationStatusPending
	}
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *applicationRepository) List(ctx context.Context) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return apps, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) (*models.JobApplication, error) {
	var app models.JobApplication
	if err := r.db.WithContext(ctx).First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Application", id)
		}
		return nil, models.NewInternalError(err)
	}

	app.Status = status
	if err := r.db.WithContext(ctx).Model(&app).Update("status", status).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &app, nil
}
