package server

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"northgate/internal/export"
	"northgate/internal/models"
)

// adminTabs are the exportable dashboard tab names, in workbook order.
var adminTabs = []string{"contacts", "applications", "get-started", "resumes", "newsletter"}

// ExportCSV handles GET /api/admin/export/:tab.csv
func (s *Server) ExportCSV(c *fiber.Ctx) error {
	tab := c.Params("tab")
	dataset, err := s.tabDataset(c, tab)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	if dataset.Empty() {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("export data", tab))
	}

	var buf bytes.Buffer
	if err := dataset.WriteCSV(&buf); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", export.Filename(tab, "csv")))
	return c.Send(buf.Bytes())
}

// ExportExcel handles GET /api/admin/export/:tab.xlsx
func (s *Server) ExportExcel(c *fiber.Ctx) error {
	tab := c.Params("tab")
	dataset, err := s.tabDataset(c, tab)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}
	if dataset.Empty() {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("export data", tab))
	}

	var buf bytes.Buffer
	if err := dataset.WriteExcel(&buf); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return sendExcel(c, export.Filename(tab, "xlsx"), buf.Bytes())
}

// ExportAllExcel handles GET /api/admin/export/all.xlsx: one workbook with a
// sheet per non-empty tab.
func (s *Server) ExportAllExcel(c *fiber.Ctx) error {
	datasets := make([]export.Dataset, 0, len(adminTabs))
	for _, tab := range adminTabs {
		dataset, err := s.tabDataset(c, tab)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		datasets = append(datasets, dataset)
	}

	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, datasets); err != nil {
		if errors.Is(err, export.ErrNoData) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("export data", "all"))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return sendExcel(c, export.Filename("All_Forms", "xlsx"), buf.Bytes())
}

func sendExcel(c *fiber.Ctx, filename string, content []byte) error {
	c.Set(fiber.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(content)
}

// tabDataset builds the dataset for one dashboard tab, applying the same
// search and status filters the listing endpoints use so an export matches
// the admin's current view.
func (s *Server) tabDataset(c *fiber.Ctx, tab string) (export.Dataset, error) {
	ctx := c.Context()
	q := c.Query("search")

	switch tab {
	case "contacts":
		contacts, err := s.contactRepo.List(ctx)
		if err != nil {
			return export.Dataset{}, err
		}
		return export.ContactsDataset(s.filterContacts(contacts, q)), nil

	case "applications":
		apps, err := s.applicationRepo.List(ctx)
		if err != nil {
			return export.Dataset{}, err
		}
		status := models.ApplicationStatus(c.Query("status"))
		if status != "" && !status.Valid() {
			return export.Dataset{}, models.NewValidationError(
				"Status must be one of: pending, reviewing, approved, rejected")
		}
		return export.ApplicationsDataset(s.filterApplications(apps, q, status)), nil

	case "get-started":
		reqs, err := s.getStartedRepo.List(ctx)
		if err != nil {
			return export.Dataset{}, err
		}
		return export.GetStartedDataset(s.filterGetStarted(reqs, q)), nil

	case "resumes":
		uploads, err := s.resumeRepo.List(ctx)
		if err != nil {
			return export.Dataset{}, err
		}
		return export.ResumesDataset(s.filterResumes(uploads, q)), nil

	case "newsletter":
		subs, err := s.newsletterRepo.List(ctx)
		if err != nil {
			return export.Dataset{}, err
		}
		return export.NewsletterDataset(s.filterNewsletter(subs, q)), nil

	default:
		return export.Dataset{}, models.NewValidationError("Unknown export tab: " + tab)
	}
}
