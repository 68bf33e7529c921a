package export

import (
	"strconv"
	"time"

	"northgate/internal/models"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// ContactsDataset flattens contact submissions for export.
func ContactsDataset(contacts []models.Contact) Dataset {
	d := Dataset{
		Name:    "Contacts",
		Columns: []string{"id", "name", "email", "phone", "company", "message", "created_at"},
	}
	for _, c := range contacts {
		d.Rows = append(d.Rows, map[string]string{
			"id":         formatID(c.ID),
			"name":       c.Name,
			"email":      c.Email,
			"phone":      c.Phone,
			"company":    c.Company,
			"message":    c.Message,
			"created_at": formatTime(c.CreatedAt),
		})
	}
	return d
}

// ApplicationsDataset flattens job applications for export.
func ApplicationsDataset(apps []models.JobApplication) Dataset {
	d := Dataset{
		Name: "Applications",
		Columns: []string{
			"id", "full_name", "email", "phone", "position", "experience",
			"cover_letter", "resume_url", "status", "created_at",
		},
	}
	for _, a := range apps {
		d.Rows = append(d.Rows, map[string]string{
			"id":           formatID(a.ID),
			"full_name":    a.FullName,
			"email":        a.Email,
			"phone":        a.Phone,
			"position":     a.Position,
			"experience":   a.Experience,
			"cover_letter": a.CoverLetter,
			"resume_url":   a.ResumeURL,
			"status":       string(a.Status),
			"created_at":   formatTime(a.CreatedAt),
		})
	}
	return d
}

// GetStartedDataset flattens get-started inquiries for export.
func GetStartedDataset(reqs []models.GetStartedRequest) Dataset {
	d := Dataset{
		Name: "Get Started",
		Columns: []string{
			"id", "first_name", "last_name", "email", "company", "phone",
			"job_title", "message", "created_at",
		},
	}
	for _, r := range reqs {
		d.Rows = append(d.Rows, map[string]string{
			"id":         formatID(r.ID),
			"first_name": r.FirstName,
			"last_name":  r.LastName,
			"email":      r.Email,
			"company":    r.Company,
			"phone":      r.Phone,
			"job_title":  r.JobTitle,
			"message":    r.Message,
			"created_at": formatTime(r.CreatedAt),
		})
	}
	return d
}

// ResumesDataset flattens resume submissions for export.
func ResumesDataset(uploads []models.ResumeUpload) Dataset {
	d := Dataset{
		Name: "Resumes",
		Columns: []string{
			"id", "full_name", "email", "phone", "location", "position_interested",
			"experience_level", "skills", "cover_letter", "linkedin_url",
			"portfolio_url", "resume_url", "created_at",
		},
	}
	for _, u := range uploads {
		d.Rows = append(d.Rows, map[string]string{
			"id":                  formatID(u.ID),
			"full_name":           u.FullName,
			"email":               u.Email,
			"phone":               u.Phone,
			"location":            u.Location,
			"position_interested": u.PositionInterested,
			"experience_level":    u.ExperienceLevel,
			"skills":              u.Skills,
			"cover_letter":        u.CoverLetter,
			"linkedin_url":        u.LinkedinURL,
			"portfolio_url":       u.PortfolioURL,
			"resume_url":          u.ResumeURL,
			"created_at":          formatTime(u.CreatedAt),
		})
	}
	return d
}

// NewsletterDataset flattens subscribers for export.
func NewsletterDataset(subs []models.NewsletterSubscriber) Dataset {
	d := Dataset{
		Name:    "Newsletter",
		Columns: []string{"id", "email", "subscribed_at", "is_active"},
	}
	for _, s := range subs {
		d.Rows = append(d.Rows, map[string]string{
			"id":            formatID(s.ID),
			"email":         s.Email,
			"subscribed_at": formatTime(s.SubscribedAt),
			"is_active":     strconv.FormatBool(s.IsActive),
		})
	}
	return d
}
