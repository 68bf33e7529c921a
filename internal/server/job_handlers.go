package server

import (
	"github.com/gofiber/fiber/v2"

	"northgate/internal/models"
	"northgate/internal/validation"
)

// JobRequest is the create/update payload for a job posting.
type JobRequest struct {
	Title               string   `json:"title" validate:"required,max=200"`
	Department          string   `json:"department" validate:"omitempty,max=120"`
	Location            string   `json:"location" validate:"omitempty,max=120"`
	Type                string   `json:"type" validate:"omitempty,max=60"`
	Description         string   `json:"description" validate:"required"`
	Requirements        string   `json:"requirements" validate:"omitempty"`
	Responsibilities    string   `json:"responsibilities" validate:"omitempty"`
	Benefits            string   `json:"benefits" validate:"omitempty"`
	SalaryRange         string   `json:"salary_range" validate:"omitempty,max=120"`
	ExperienceLevel     string   `json:"experience_level" validate:"omitempty,max=60"`
	SkillsRequired      []string `json:"skills_required" validate:"omitempty,dive,max=60"`
	Status              string   `json:"status" validate:"omitempty,oneof=active inactive closed"`
	PostedDate          string   `json:"posted_date" validate:"omitempty,max=40"`
	ApplicationDeadline string   `json:"application_deadline" validate:"omitempty,max=40"`
}

// GetJobs handles GET /api/jobs?status=active
func (s *Server) GetJobs(c *fiber.Ctx) error {
	ctx := c.Context()
	activeOnly := c.Query("status") == string(models.JobStatusActive)

	jobs, err := s.jobRepo.List(ctx, activeOnly)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return respondData(c, fiber.StatusOK, jobs)
}

// GetJob handles GET /api/jobs/:id
func (s *Server) GetJob(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := paramID(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}

	return respondData(c, fiber.StatusOK, job)
}

// CreateJob handles POST /api/jobs
func (s *Server) CreateJob(c *fiber.Ctx) error {
	ctx := c.Context()

	var req JobRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	status := models.JobStatus(req.Status)
	if req.Status == "" {
		status = models.JobStatusActive
	}

	job := &models.JobPosting{
		Title:               req.Title,
		Department:          req.Department,
		Location:            req.Location,
		Type:                req.Type,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Responsibilities:    req.Responsibilities,
		Benefits:            req.Benefits,
		SalaryRange:         req.SalaryRange,
		ExperienceLevel:     req.ExperienceLevel,
		SkillsRequired:      models.StringList(req.SkillsRequired),
		Status:              status,
		PostedDate:          req.PostedDate,
		ApplicationDeadline: req.ApplicationDeadline,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return respondData(c, fiber.StatusCreated, job)
}

// UpdateJob handles PUT /api/jobs/:id
func (s *Server) UpdateJob(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := paramID(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	var req JobRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.Struct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}

	job.Title = req.Title
	job.Department = req.Department
	job.Location = req.Location
	job.Type = req.Type
	job.Description = req.Description
	job.Requirements = req.Requirements
	job.Responsibilities = req.Responsibilities
	job.Benefits = req.Benefits
	job.SalaryRange = req.SalaryRange
	job.ExperienceLevel = req.ExperienceLevel
	job.SkillsRequired = models.StringList(req.SkillsRequired)
	job.PostedDate = req.PostedDate
	job.ApplicationDeadline = req.ApplicationDeadline
	if req.Status != "" {
		job.Status = models.JobStatus(req.Status)
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return respondData(c, fiber.StatusOK, job)
}

// UpdateJobStatus handles PATCH /api/jobs/:id/status
func (s *Server) UpdateJobStatus(c *fiber.Ctx) error {
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

	status := models.JobStatus(req.Status)
	if !status.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Status must be one of: active, inactive, closed"))
	}

	job, err := s.jobRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}

	return respondData(c, fiber.StatusOK, job)
}

// DeleteJob handles DELETE /api/jobs/:id
func (s *Server) DeleteJob(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := paramID(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return models.RespondWithError(c, fiber.StatusNotFound, err)
	}

	return respondData(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
