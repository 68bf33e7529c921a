package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"northgate/internal/models"
)

// SyncStatus handles GET /api/admin/sync/status and GET /api/sync/status.
func (s *Server) SyncStatus(c *fiber.Ctx) error {
	return respondData(c, fiber.StatusOK, fiber.Map{
		"configured":     s.sheets.Configured(),
		"spreadsheet_id": s.sheets.SpreadsheetID(),
	})
}

// The /api/sync/* POST endpoints back the dashboard's "test sync" action:
// each pushes a labeled test record through the real sync path. Failures
// are swallowed like any sync, so the response only confirms dispatch;
// the admin checks the spreadsheet (or the failure metric) for the result.

// SyncTestContact handles POST /api/sync/contact
func (s *Server) SyncTestContact(c *fiber.Ctx) error {
	s.sheets.SyncContact(c.Context(), models.Contact{
		Name:      "Sync Test",
		Email:     "sync-test@example.com",
		Message:   "Test record from the admin dashboard",
		CreatedAt: time.Now(),
	})
	return s.testSyncResponse(c)
}

// SyncTestApplication handles POST /api/sync/job-application
func (s *Server) SyncTestApplication(c *fiber.Ctx) error {
	s.sheets.SyncJobApplication(c.Context(), models.JobApplication{
		FullName:   "Sync Test",
		Email:      "sync-test@example.com",
		Phone:      "000-000-0000",
		Position:   "Test Position",
		Experience: "n/a",
		Status:     models.ApplicationStatusPending,
		CreatedAt:  time.Now(),
	})
	return s.testSyncResponse(c)
}

// SyncTestGetStarted handles POST /api/sync/get-started
func (s *Server) SyncTestGetStarted(c *fiber.Ctx) error {
	s.sheets.SyncGetStartedRequest(c.Context(), models.GetStartedRequest{
		FirstName: "Sync",
		LastName:  "Test",
		Email:     "sync-test@example.com",
		CreatedAt: time.Now(),
	})
	return s.testSyncResponse(c)
}

// SyncTestResume handles POST /api/sync/resume-upload
func (s *Server) SyncTestResume(c *fiber.Ctx) error {
	s.sheets.SyncResumeUpload(c.Context(), models.ResumeUpload{
		FullName:  "Sync Test",
		Email:     "sync-test@example.com",
		CreatedAt: time.Now(),
	})
	return s.testSyncResponse(c)
}

// SyncTestNewsletter handles POST /api/sync/newsletter
func (s *Server) SyncTestNewsletter(c *fiber.Ctx) error {
	s.sheets.SyncNewsletterSubscription(c.Context(), models.NewsletterSubscriber{
		Email:        "sync-test@example.com",
		SubscribedAt: time.Now(),
		IsActive:     true,
	})
	return s.testSyncResponse(c)
}

func (s *Server) testSyncResponse(c *fiber.Ctx) error {
	return respondData(c, fiber.StatusOK, fiber.Map{
		"dispatched": true,
		"configured": s.sheets.Configured(),
	})
}
