package server

import (
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"northgate/internal/middleware"
	"northgate/internal/models"
)

// AdminLoginRequest is the dashboard login payload.
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminLogin handles POST /api/admin/login. The shared password is a
// deterrent for a marketing-site dashboard, not a security boundary; the
// issued token just keeps the check server-side.
func (s *Server) AdminLogin(c *fiber.Ctx) error {
	var req AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.config.AdminPassword)) != 1 {
		middleware.Logger.WarnContext(c.Context(), "Admin login rejected", "ip", c.IP())
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid password"))
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss": jwtIssuer,
		"aud": jwtAudience,
		"sub": "admin",
		"iat": now.Unix(),
		"exp": now.Add(adminTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(c.Context(), "Admin login succeeded", "ip", c.IP())

	return respondData(c, fiber.StatusOK, fiber.Map{
		"token":      signed,
		"expires_at": now.Add(adminTokenTTL),
	})
}

// AdminListContacts handles GET /api/admin/contacts?search=
func (s *Server) AdminListContacts(c *fiber.Ctx) error {
	contacts, err := s.contactRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	contacts = s.filterContacts(contacts, c.Query("search"))
	return respondData(c, fiber.StatusOK, contacts)
}

// AdminListApplications handles GET /api/admin/applications?search=&status=
func (s *Server) AdminListApplications(c *fiber.Ctx) error {
	apps, err := s.applicationRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	status := c.Query("status")
	if status != "" && !models.ApplicationStatus(status).Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Status must be one of: pending, reviewing, approved, rejected"))
	}

	apps = s.filterApplications(apps, c.Query("search"), models.ApplicationStatus(status))
	return respondData(c, fiber.StatusOK, apps)
}

// AdminListGetStarted handles GET /api/admin/get-started?search=
func (s *Server) AdminListGetStarted(c *fiber.Ctx) error {
	reqs, err := s.getStartedRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	reqs = s.filterGetStarted(reqs, c.Query("search"))
	return respondData(c, fiber.StatusOK, reqs)
}

// AdminListResumes handles GET /api/admin/resumes?search=
func (s *Server) AdminListResumes(c *fiber.Ctx) error {
	uploads, err := s.resumeRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	uploads = s.filterResumes(uploads, c.Query("search"))
	return respondData(c, fiber.StatusOK, uploads)
}

// AdminListNewsletter handles GET /api/admin/newsletter?search=
func (s *Server) AdminListNewsletter(c *fiber.Ctx) error {
	subs, err := s.newsletterRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	subs = s.filterNewsletter(subs, c.Query("search"))
	return respondData(c, fiber.StatusOK, subs)
}

// UpdateApplicationStatus handles PATCH /api/admin/applications/:id/status.
// This is the only post-creation mutation on any form submission.
func (s *Server) UpdateApplicationStatus(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := paramID(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	status := models.ApplicationStatus(req.Status)
	if !status.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Status must be one of: pending, reviewing, approved, rejected"))
	}

	app, err := s.applicationRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}

	return respondData(c, fiber.StatusOK, app)
}

// Listings are small for a marketing site, so search filters in memory
// rather than pushing ILIKE clauses into each repository.

func (s *Server) filterContacts(contacts []models.Contact, q string) []models.Contact {
	if q == "" {
		return contacts
	}
	out := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if matchesSearch(q, c.Name, c.Email, c.Phone, c.Company, c.Message) {
			out = append(out, c)
		}
	}
	return out
}

func (s *Server) filterApplications(apps []models.JobApplication, q string, status models.ApplicationStatus) []models.JobApplication {
	out := make([]models.JobApplication, 0, len(apps))
	for _, a := range apps {
		if status != "" && a.Status != status {
			continue
		}
		if !matchesSearch(q, a.FullName, a.Email, a.Phone, a.Position, a.Experience, a.CoverLetter) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (s *Server) filterGetStarted(reqs []models.GetStartedRequest, q string) []models.GetStartedRequest {
	if q == "" {
		return reqs
	}
	out := make([]models.GetStartedRequest, 0, len(reqs))
	for _, r := range reqs {
		if matchesSearch(q, r.FirstName, r.LastName, r.Email, r.Company, r.Phone, r.JobTitle, r.Message) {
			out = append(out, r)
		}
	}
	return out
}

func (s *Server) filterResumes(uploads []models.ResumeUpload, q string) []models.ResumeUpload {
	if q == "" {
		return uploads
	}
	out := make([]models.ResumeUpload, 0, len(uploads))
	for _, u := range uploads {
		if matchesSearch(q, u.FullName, u.Email, u.Phone, u.Location, u.PositionInterested, u.Skills) {
			out = append(out, u)
		}
	}
	return out
}

func (s *Server) filterNewsletter(subs []models.NewsletterSubscriber, q string) []models.NewsletterSubscriber {
	if q == "" {
		return subs
	}
	out := make([]models.NewsletterSubscriber, 0, len(subs))
	for _, sub := range subs {
		if matchesSearch(q, sub.Email) {
			out = append(out, sub)
		}
	}
	return out
}
