package repository

import (
	"context"

	"northgate/internal/models"

	"gorm.io/gorm"
)

// GetStartedRepository defines persistence operations for get-started inquiries.
type GetStartedRepository interface {
	Create(ctx context.Context, req *models.GetStartedRequest) error
	List(ctx context.Context) ([]models.GetStartedRequest, error)
}

type getStartedRepository struct {
	db *gorm.DB
}

// NewGetStartedRepository returns a new GetStartedRepository implementation.
func NewGetStartedRepository(db *gorm.DB) GetStartedRepository {
	return &getStartedRepository{db: db}
}

func (r *getStartedRepository) Create(ctx context.Context, req *models.GetStartedRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *getStartedRepository) List(ctx context.Context) ([]models.GetStartedRequest, error) {
	var reqs []models.GetStartedRequest
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&reqs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reqs, nil
}
