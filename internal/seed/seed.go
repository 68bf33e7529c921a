// Package seed fills a fresh demo store with sample content so the site
// has something to render before anyone touches the admin dashboard.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"northgate/internal/middleware"
	"northgate/internal/models"
	"northgate/internal/repository"
)

var blogPosts = []models.BlogPost{
	{
		Title: "Scaling Infrastructure Without Scaling Headcount",
		Excerpt: "How mid-sized teams keep pace with enterprise workloads through automation.",
		Author: "Engineering Team",
		ReadTime: "6 min read",
		Tags: models.StringList{"infrastructure", "automation"},
		Featured: true,
		Published: true,
	},
	{
		Title: "A Practical Guide to Cloud Cost Reviews",
		Excerpt: "The quarterly checklist we run with every client to keep spend predictable.",
		Author: "Advisory Group",
		ReadTime: "4 min read",
		Tags: models.StringList{"cloud", "finops"},
		Published: true,
	},
	{
		Title: "What We Learned Migrating Legacy ETL to Streaming",
		Excerpt: "Lessons from a year-long data platform overhaul.",
		Author: "Data Practice",
		ReadTime: "8 min read",
		Tags: models.StringList{"data", "streaming", "migration"},
		Published: true,
	},
	{
		Title: "Draft: 2026 Platform Roadmap Notes",
		Excerpt: "Internal planning notes, not yet ready for the blog.",
		Author: "Engineering Team",
		ReadTime: "3 min read",
		Tags: models.StringList{"roadmap"},
		Published: false,
	},
}

var jobPostings = []models.JobPosting{
	{
		Title: "Senior Backend Engineer",
		Department: "Engineering",
		Location: "Remote (US)",
		Type: "Full-time",
		Description: "Design and operate the services behind our client platforms.",
		Requirements: "5+ years building production services; strong SQL; experience with Go or a comparable language.",
		Responsibilities: "Own services end to end, from design through on-call.",
		Benefits: "Health coverage, 401(k) match, home office stipend.",
		ExperienceLevel: "Senior",
		SkillsRequired: models.StringList{"Go", "PostgreSQL", "Kubernetes"},
		Status: models.JobStatusActive,
	},
	{
		Title: "Solutions Consultant",
		Department: "Client Services",
		Location: "Chicago, IL",
		Type: "Full-time",
		Description: "Work with client teams to scope and deliver platform engagements.",
		Requirements: "3+ years in consulting or solutions engineering.",
		Responsibilities: "Run discovery workshops, write proposals, guide delivery.",
		Benefits: "Health coverage, 401(k) match, travel budget.",
		ExperienceLevel: "Mid",
		SkillsRequired: models.StringList{"Consulting", "Cloud Architecture"},
		Status: models.JobStatusActive,
	},
	{
		Title: "Data Engineering Intern",
		Department: "Data Practice",
		Location: "Remote (US)",
		Type: "Internship",
		Description: "Support the data practice on pipeline tooling and internal reporting.",
		Requirements: "Coursework in computer science or a related field.",
		Responsibilities: "Pair with senior engineers on well-scoped pipeline tasks.",
		Benefits: "Paid internship with mentorship program.",
		ExperienceLevel: "Entry",
		SkillsRequired: models.StringList{"Python", "SQL"},
		Status: models.JobStatusInactive,
	},
}

// DemoContent seeds sample blog posts and job postings through the given
// repositories. A few fabricated form submissions are added so the admin
// dashboard is not empty on first open.
func DemoContent(ctx context.Context, blogs repository.BlogRepository, jobs repository.JobRepository, contacts repository.ContactRepository) error {
	now := time.Now()

	for i := range blogPosts {
		post := blogPosts[i]
		post.Content = gofakeit.Paragraph(4, 5, 12, "\n\n")
		post.PublishDate = now.AddDate(0, 0, -7*(i+1)).Format("January 2, 2006")
		if err := blogs.Create(ctx, &post); err != nil {
			return fmt.Errorf("seed blog post %q: %w", post.Title, err)
		}
	}

	for i := range jobPostings {
		job := jobPostings[i]
		job.PostedDate = now.AddDate(0, 0, -3*(i+1)).Format("January 2, 2006")
		if err := jobs.Create(ctx, &job); err != nil {
			return fmt.Errorf("seed job posting %q: %w", job.Title, err)
		}
	}

	for i := 0; i < 3; i++ {
		contact := models.Contact{
			Name:    gofakeit.Name(),
			Email:   gofakeit.Email(),
			Phone:   gofakeit.Phone(),
			Company: gofakeit.Company(),
			Message: gofakeit.Sentence(12),
		}
		if err := contacts.Create(ctx, &contact); err != nil {
			return fmt.Errorf("seed contact: %w", err)
		}
	}

	middleware.Logger.InfoContext(ctx, "Demo content seeded",
		"blog_posts", len(blogPosts),
		"job_postings", len(jobPostings))
	return nil
}
