package demo

import (
	"context"
	"sort"
	"strings"

	"northgate/internal/models"
	"northgate/internal/repository"
)

// Compile-time checks that the demo repositories satisfy the real contracts.
var (
	_ repository.ContactRepository     = (*ContactRepo)(nil)
	_ repository.ApplicationRepository = (*ApplicationRepo)(nil)
	_ repository.GetStartedRepository  = (*GetStartedRepo)(nil)
	_ repository.ResumeRepository      = (*ResumeRepo)(nil)
	_ repository.NewsletterRepository  = (*NewsletterRepo)(nil)
	_ repository.BlogRepository        = (*BlogRepo)(nil)
	_ repository.JobRepository         = (*JobRepo)(nil)
)

// ContactRepo is the demo-mode ContactRepository.
type ContactRepo struct{ store *Store }

// NewContactRepo returns a ContactRepository backed by the demo store.
func NewContactRepo(store *Store) *ContactRepo {
	return &ContactRepo{store: store}
}

func (r *ContactRepo) Create(_ context.Context, contact *models.Contact) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	contact.ID = s.nextIDLocked()
	contact.CreatedAt = s.now()
	s.contacts = append(s.contacts, *contact)
	return nil
}

func (r *ContactRepo) List(_ context.Context) ([]models.Contact, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Contact, len(s.contacts))
	copy(out, s.contacts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ApplicationRepo is the demo-mode ApplicationRepository.
type ApplicationRepo struct{ store *Store }

// NewApplicationRepo returns an ApplicationRepository backed by the demo store.
func NewApplicationRepo(store *Store) *ApplicationRepo {
	return &ApplicationRepo{store: store}
}

func (r *ApplicationRepo) Create(_ context.Context, app *models.JobApplication) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if app.Status == "" {
		app.Status = models.ApplicationStatusPending
	}
	app.ID = s.nextIDLocked()
	app.CreatedAt = s.now()
	s.applications = append(s.applications, *app)
	return nil
}

func (r *ApplicationRepo) List(_ context.Context) ([]models.JobApplication, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.JobApplication, len(s.applications))
	copy(out, s.applications)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ApplicationRepo) UpdateStatus(_ context.Context, id uint, status models.ApplicationStatus) (*models.JobApplication, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.applications {
		if s.applications[i].ID == id {
			s.applications[i].Status = status
			updated := s.applications[i]
			return &updated, nil
		}
	}
	return nil, models.NewNotFoundError("Application", id)
}

// GetStartedRepo is the demo-mode GetStartedRepository.
type GetStartedRepo struct{ store *Store }

// NewGetStartedRepo returns a GetStartedRepository backed by the demo store.
func NewGetStartedRepo(store *Store) *GetStartedRepo {
	return &GetStartedRepo{store: store}
}

func (r *GetStartedRepo) Create(_ context.Context, req *models.GetStartedRequest) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	req.ID = s.nextIDLocked()
	req.CreatedAt = s.now()
	s.getStarted = append(s.getStarted, *req)
	return nil
}

func (r *GetStartedRepo) List(_ context.Context) ([]models.GetStartedRequest, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.GetStartedRequest, len(s.getStarted))
	copy(out, s.getStarted)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ResumeRepo is the demo-mode ResumeRepository.
type ResumeRepo struct{ store *Store }

// NewResumeRepo returns a ResumeRepository backed by the demo store.
func NewResumeRepo(store *Store) *ResumeRepo {
	return &ResumeRepo{store: store}
}

func (r *ResumeRepo) Create(_ context.Context, upload *models.ResumeUpload) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	upload.ID = s.nextIDLocked()
	upload.CreatedAt = s.now()
	s.resumes = append(s.resumes, *upload)
	return nil
}

func (r *ResumeRepo) List(_ context.Context) ([]models.ResumeUpload, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ResumeUpload, len(s.resumes))
	copy(out, s.resumes)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// NewsletterRepo is the demo-mode NewsletterRepository.
type NewsletterRepo struct{ store *Store }

// NewNewsletterRepo returns a NewsletterRepository backed by the demo store.
func NewNewsletterRepo(store *Store) *NewsletterRepo {
	return &NewsletterRepo{store: store}
}

func (r *NewsletterRepo) Subscribe(_ context.Context, email string) (*models.NewsletterSubscriber, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := strings.ToLower(strings.TrimSpace(email))
	for i := range s.newsletter {
		if s.newsletter[i].Email == normalized {
			s.newsletter[i].IsActive = true
			existing := s.newsletter[i]
			return &existing, nil
		}
	}

	sub := models.NewsletterSubscriber{
		ID:           s.nextIDLocked(),
		Email:        normalized,
		SubscribedAt: s.now(),
		IsActive:     true,
	}
	s.newsletter = append(s.newsletter, sub)
	return &sub, nil
}

func (r *NewsletterRepo) List(_ context.Context) ([]models.NewsletterSubscriber, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.NewsletterSubscriber, len(s.newsletter))
	copy(out, s.newsletter)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SubscribedAt.After(out[j].SubscribedAt) })
	return out, nil
}

// BlogRepo is the demo-mode BlogRepository.
type BlogRepo struct{ store *Store }

// NewBlogRepo returns a BlogRepository backed by the demo store.
func NewBlogRepo(store *Store) *BlogRepo {
	return &BlogRepo{store: store}
}

func (r *BlogRepo) Create(_ context.Context, post *models.BlogPost) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	post.ID = s.nextIDLocked()
	post.CreatedAt = s.now()
	post.UpdatedAt = post.CreatedAt
	s.blogs = append(s.blogs, *post)
	return nil
}

func (r *BlogRepo) GetByID(_ context.Context, id uint) (*models.BlogPost, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.blogs {
		if s.blogs[i].ID == id {
			post := s.blogs[i]
			return &post, nil
		}
	}
	return nil, models.NewNotFoundError("Blog post", id)
}

func (r *BlogRepo) List(_ context.Context, publishedOnly bool) ([]models.BlogPost, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.BlogPost, 0, len(s.blogs))
	for _, post := range s.blogs {
		if publishedOnly && !post.Published {
			continue
		}
		out = append(out, post)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *BlogRepo) Update(_ context.Context, post *models.BlogPost) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.blogs {
		if s.blogs[i].ID == post.ID {
			post.CreatedAt = s.blogs[i].CreatedAt
			post.UpdatedAt = s.now()
			s.blogs[i] = *post
			return nil
		}
	}
	return models.NewNotFoundError("Blog post", post.ID)
}

func (r *BlogRepo) Delete(_ context.Context, id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.blogs {
		if s.blogs[i].ID == id {
			s.blogs = append(s.blogs[:i], s.blogs[i+1:]...)
			return nil
		}
	}
	return models.NewNotFoundError("Blog post", id)
}

// JobRepo is the demo-mode JobRepository.
type JobRepo struct{ store *Store }

// NewJobRepo returns a JobRepository backed by the demo store.
func NewJobRepo(store *Store) *JobRepo {
	return &JobRepo{store: store}
}

func (r *JobRepo) Create(_ context.Context, job *models.JobPosting) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if job.Status == "" {
		job.Status = models.JobStatusActive
	}
	job.ID = s.nextIDLocked()
	job.CreatedAt = s.now()
	job.UpdatedAt = job.CreatedAt
	s.jobs = append(s.jobs, *job)
	return nil
}

func (r *JobRepo) GetByID(_ context.Context, id uint) (*models.JobPosting, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			job := s.jobs[i]
			return &job, nil
		}
	}
	return nil, models.NewNotFoundError("Job posting", id)
}

func (r *JobRepo) List(_ context.Context, activeOnly bool) ([]models.JobPosting, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.JobPosting, 0, len(s.jobs))
	for _, job := range s.jobs {
		if activeOnly && job.Status != models.JobStatusActive {
			continue
		}
		out = append(out, job)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *JobRepo) Update(_ context.Context, job *models.JobPosting) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.jobs {
		if s.jobs[i].ID == job.ID {
			job.CreatedAt = s.jobs[i].CreatedAt
			job.UpdatedAt = s.now()
			s.jobs[i] = *job
			return nil
		}
	}
	return models.NewNotFoundError("Job posting", job.ID)
}

func (r *JobRepo) UpdateStatus(_ context.Context, id uint, status models.JobStatus) (*models.JobPosting, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			s.jobs[i].Status = status
			s.jobs[i].UpdatedAt = s.now()
			updated := s.jobs[i]
			return &updated, nil
		}
	}
	return nil, models.NewNotFoundError("Job posting", id)
}

func (r *JobRepo) Delete(_ context.Context, id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			return nil
		}
	}
	return models.NewNotFoundError("Job posting", id)
}
