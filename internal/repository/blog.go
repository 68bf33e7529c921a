package repository

import (
	"context"
	"errors"

	"northgate/internal/cache"
	"northgate/internal/models"

	"gorm.io/gorm"
)

// BlogRepository defines persistence operations for blog posts.
type BlogRepository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	GetByID(ctx context.Context, id uint) (*models.BlogPost, error)
	List(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error)
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id uint) error
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository returns a new BlogRepository implementation.
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, post *models.BlogPost) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateBlogs(ctx, post.ID)
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	key := cache.BlogPostKey(id)

	err := cache.Aside(ctx, key, &post, cache.BlogPostTTL, func() error {
		if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Blog post", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) List(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error) {
	var posts []models.BlogPost

	fetch := func() error {
		q := r.db.WithContext(ctx).Order("created_at DESC")
		if publishedOnly {
			q = q.Where("published = ?", true)
		}
		if err := q.Find(&posts).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	}

	// Only the public published list is cached; the admin view reads through.
	if publishedOnly {
		if err := cache.Aside(ctx, cache.BlogListKey, &posts, cache.BlogListTTL, fetch); err != nil {
			return nil, err
		}
		return posts, nil
	}

	if err := fetch(); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *blogRepository) Update(ctx context.Context, post *models.BlogPost) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateBlogs(ctx, post.ID)
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.BlogPost{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Blog post", id)
	}
	cache.InvalidateBlogs(ctx, id)
	return nil
}
