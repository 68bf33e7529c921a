package repository

import (
	"context"

	"northgate/internal/models"

	"gorm.io/gorm"
)

// ResumeRepository defines persistence operations for general resume submissions.
type ResumeRepository interface {
	Create(ctx context.Context, upload *models.ResumeUpload) error
	List(ctx context.Context) ([]models.ResumeUpload, error)
}

type resumeRepository struct {
	db *gorm.DB
}

// NewResumeRepository returns a new ResumeRepository implementation.
func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Create(ctx context.Context, upload *models.ResumeUpload) error {
	if err := r.db.WithContext(ctx).Create(upload).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *resumeRepository) List(ctx context.Context) ([]models.ResumeUpload, error) {
	var uploads []models.ResumeUpload
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&uploads).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return uploads, nil
}
