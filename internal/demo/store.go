// Package demo provides the in-memory backend used when no database is
// configured. It mirrors the repository contracts of the real data layer so
// the rest of the application cannot tell the two apart. Records live for the
// lifetime of the process and are lost on restart.
package demo

import (
	"log/slog"
	"sync"
	"time"

	"northgate/internal/middleware"
	"northgate/internal/models"
)

// Store holds every demo-mode collection behind a single mutex. It is
// constructed explicitly (no package-level state) so tests get isolated
// instances and can tear them down by dropping the reference.
type Store struct {
	mu     sync.Mutex
	nextID uint
	now    func() time.Time

	contacts     []models.Contact
	applications []models.JobApplication
	getStarted   []models.GetStartedRequest
	resumes      []models.ResumeUpload
	newsletter   []models.NewsletterSubscriber
	blogs        []models.BlogPost
	jobs         []models.JobPosting
}

// NewStore returns an empty demo store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// SetClock overrides the store's clock. Intended for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) nextIDLocked() uint {
	s.nextID++
	return s.nextID
}

// InsertUnknown accepts a record for a collection the demo store does not
// persist. The original system silently dropped these; we keep the
// success-shaped response but make the data loss an explicit, logged decision.
func (s *Store) InsertUnknown(collection string, record map[string]any) map[string]any {
	s.mu.Lock()
	id := s.nextIDLocked()
	now := s.now()
	s.mu.Unlock()

	middleware.Logger.Warn("demo store: insert into unknown collection dropped",
		slog.String("collection", collection),
		slog.Any("id", id),
	)

	echoed := make(map[string]any, len(record)+2)
	for k, v := range record {
		echoed[k] = v
	}
	echoed["id"] = id
	echoed["created_at"] = now
	return echoed
}

// Counts returns per-collection record counts, for the admin overview.
func (s *Store) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]int{
		"contacts":               len(s.contacts),
		"job_applications":       len(s.applications),
		"get_started_requests":   len(s.getStarted),
		"resume_uploads":         len(s.resumes),
		"newsletter_subscribers": len(s.newsletter),
		"blog_posts":             len(s.blogs),
		"job_postings":           len(s.jobs),
	}
}
