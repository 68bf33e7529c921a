package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"northgate/internal/models"
	"northgate/internal/validation"
)

// syncTimeout bounds the background sheet sync launched after a submission.
const syncTimeout = 30 * time.Second

// ContactRequest is the contact form payload.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Phone   string `json:"phone" validate:"omitempty,phone"`
	Company string `json:"company" validate:"omitempty,max=120"`
	Message string `json:"message" validate:"required"`
}

// SubmitContact handles POST /api/contacts
func (s *Server) SubmitContact(c *fiber.Ctx) error {
	ctx := c.Context()

	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	go func(record models.Contact) {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()
		s.sheets.SyncContact(ctx, record)
	}(*contact)

	return respondData(c, fiber.StatusCreated, contact)
}

// ApplicationRequest is the job application payload.
type ApplicationRequest struct {
	FullName    string `json:"full_name" validate:"required,max=120"`
	Email       string `json:"email" validate:"required,email,max=254"`
	Phone       string `json:"phone" validate:"required,phone"`
	Position    string `json:"position" validate:"required,max=120"`
	Experience  string `json:"experience" validate:"required,max=60"`
	CoverLetter string `json:"cover_letter" validate:"omitempty"`
	ResumeURL   string `json:"resume_url" validate:"omitempty,url,max=500"`
}

// SubmitApplication handles POST /api/applications
func (s *Server) SubmitApplication(c *fiber.Ctx) error {
	ctx := c.Context()

	var req ApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	app := &models.JobApplication{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Position:    req.Position,
		Experience:  req.Experience,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
		Status:      models.ApplicationStatusPending,
	}
	if err := s.applicationRepo.Create(ctx, app); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	go func(record models.JobApplication) {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()
		s.sheets.SyncJobApplication(ctx, record)
	}(*app)

	return respondData(c, fiber.StatusCreated, app)
}

// GetStartedRequestBody is the get-started inquiry payload.
type GetStartedRequestBody struct {
	FirstName string `json:"first_name" validate:"required,max=80"`
	LastName  string `json:"last_name" validate:"required,max=80"`
	Email     string `json:"email" validate:"required,email,max=254"`
	Company   string `json:"company" validate:"omitempty,max=120"`
	Phone     string `json:"phone" validate:"omitempty,phone"`
	JobTitle  string `json:"job_title" validate:"omitempty,max=120"`
	Message   string `json:"message" validate:"omitempty"`
}

// SubmitGetStarted handles POST /api/get-started
func (s *Server) SubmitGetStarted(c *fiber.Ctx) error {
	ctx := c.Context()

	var req GetStartedRequestBody
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	record := &models.GetStartedRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Company:   req.Company,
		Phone:     req.Phone,
		JobTitle:  req.JobTitle,
		Message:   req.Message,
	}
	if err := s.getStartedRepo.Create(ctx, record); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	go func(record models.GetStartedRequest) {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()
		s.sheets.SyncGetStartedRequest(ctx, record)
	}(*record)

	return respondData(c, fiber.StatusCreated, record)
}

// ResumeRequest is the general resume submission payload.
type ResumeRequest struct {
	FullName           string `json:"full_name" validate:"required,max=120"`
	Email              string `json:"email" validate:"required,email,max=254"`
	Phone              string `json:"phone" validate:"omitempty,phone"`
	Location           string `json:"location" validate:"omitempty,max=120"`
	PositionInterested string `json:"position_interested" validate:"omitempty,max=120"`
	ExperienceLevel    string `json:"experience_level" validate:"omitempty,max=60"`
	Skills             string `json:"skills" validate:"omitempty"`
	CoverLetter        string `json:"cover_letter" validate:"omitempty"`
	LinkedinURL        string `json:"linkedin_url" validate:"omitempty,url,max=500"`
	PortfolioURL       string `json:"portfolio_url" validate:"omitempty,url,max=500"`
	ResumeURL          string `json:"resume_url" validate:"omitempty,url,max=500"`
}

// SubmitResume handles POST /api/resumes
func (s *Server) SubmitResume(c *fiber.Ctx) error {
	ctx := c.Context()

	var req ResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	upload := &models.ResumeUpload{
		FullName:           req.FullName,
		Email:              req.Email,
		Phone:              req.Phone,
		Location:           req.Location,
		PositionInterested: req.PositionInterested,
		ExperienceLevel:    req.ExperienceLevel,
		Skills:             req.Skills,
		CoverLetter:        req.CoverLetter,
		LinkedinURL:        req.LinkedinURL,
		PortfolioURL:       req.PortfolioURL,
		ResumeURL:          req.ResumeURL,
	}
	if err := s.resumeRepo.Create(ctx, upload); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	go func(record models.ResumeUpload) {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()
		s.sheets.SyncResumeUpload(ctx, record)
	}(*upload)

	return respondData(c, fiber.StatusCreated, upload)
}

// NewsletterRequest is the newsletter signup payload.
type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

// SubscribeNewsletter handles POST /api/newsletter
func (s *Server) SubscribeNewsletter(c *fiber.Ctx) error {
	ctx := c.Context()

	var req NewsletterRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	sub, err := s.newsletterRepo.Subscribe(ctx, req.Email)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	go func(record models.NewsletterSubscriber) {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()
		s.sheets.SyncNewsletterSubscription(ctx, record)
	}(*sub)

	return respondData(c, fiber.StatusCreated, sub)
}
