package models

import "time"

// JobStatus defines the lifecycle state of a job posting.
type JobStatus string

const (
	// JobStatusActive indicates a posting is open and listed publicly.
	JobStatusActive JobStatus = "active"
	// JobStatusInactive indicates a posting is temporarily unlisted.
	JobStatusInactive JobStatus = "inactive"
	// JobStatusClosed indicates a posting no longer accepts applications.
	JobStatusClosed JobStatus = "closed"
)

// Valid reports whether s is one of the known job statuses.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusActive, JobStatusInactive, JobStatusClosed:
		return true
	}
	return false
}

// JobPosting represents an open position managed through the admin content editor.
type JobPosting struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	Title               string     `gorm:"size:200;not null" json:"title"`
	Department          string     `gorm:"size:120" json:"department"`
	Location            string     `gorm:"size:120" json:"location"`
	Type                string     `gorm:"size:60" json:"type"`
	Description         string     `gorm:"type:text;not null" json:"description"`
	Requirements        string     `gorm:"type:text" json:"requirements"`
	Responsibilities    string     `gorm:"type:text" json:"responsibilities"`
	Benefits            string     `gorm:"type:text" json:"benefits"`
	SalaryRange         string     `gorm:"size:120" json:"salary_range,omitempty"`
	ExperienceLevel     string     `gorm:"size:60" json:"experience_level"`
	SkillsRequired      StringList `gorm:"serializer:json" json:"skills_required"`
	Status              JobStatus  `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	PostedDate          string     `gorm:"size:40" json:"posted_date"`
	ApplicationDeadline string     `gorm:"size:40" json:"application_deadline,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (JobPosting) TableName() string {
	return "job_postings"
}
