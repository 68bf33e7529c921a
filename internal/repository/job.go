package repository

import (
	"context"
	"errors"

	"northgate/internal/cache"
	"northgate/internal/models"

	"gorm.io/gorm"
)

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *models.JobPosting) error
	GetByID(ctx context.Context, id uint) (*models.JobPosting, error)
	List(ctx context.Context, activeOnly bool) ([]models.JobPosting, error)
	Update(ctx context.Context, job *models.JobPosting) error
	UpdateStatus(ctx context.Context, id uint, status models.JobStatus) (*models.JobPosting, error)
	Delete(ctx context.Context, id uint) error
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository returns a new JobRepository implementation.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *models.JobPosting) error {
	if job.Status == "" {
		job.Status = models.JobStatusActive
	}
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateJobs(ctx)
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id uint) (*models.JobPosting, error) {
	var job models.JobPosting
	if err := r.db.WithContext(ctx).First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Job posting", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &job, nil
}

func (r *jobRepository) List(ctx context.Context, activeOnly bool) ([]models.JobPosting, error) {
	var jobs []models.JobPosting

	fetch := func() error {
		q := r.db.WithContext(ctx).Order("created_at DESC")
		if activeOnly {
			q = q.Where("status = ?", models.JobStatusActive)
		}
		if err := q.Find(&jobs).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	}

	// Only the public active list is cached; the admin view reads through.
	if activeOnly {
		if err := cache.Aside(ctx, cache.JobListKey, &jobs, cache.JobListTTL, fetch); err != nil {
			return nil, err
		}
		return jobs, nil
	}

	if err := fetch(); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) Update(ctx context.Context, job *models.JobPosting) error {
	if err := r.db.WithContext(ctx).Save(job).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateJobs(ctx)
	return nil
}

func (r *jobRepository) UpdateStatus(ctx context.Context, id uint, status models.JobStatus) (*models.JobPosting, error) {
	job, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	job.Status = status
	if err := r.db.WithContext(ctx).Model(job).Update("status", status).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	cache.InvalidateJobs(ctx)
	return job, nil
}

func (r *jobRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.JobPosting{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Job posting", id)
	}
	cache.InvalidateJobs(ctx)
	return nil
}
