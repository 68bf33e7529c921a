package models

import "time"

// ApplicationStatus defines the review state of a job application.
type ApplicationStatus string

const (
	// ApplicationStatusPending indicates an application has not been reviewed yet.
	ApplicationStatusPending ApplicationStatus = "pending"
	// ApplicationStatusReviewing indicates an application is under review.
	ApplicationStatusReviewing ApplicationStatus = "reviewing"
	// ApplicationStatusApproved indicates an application was approved.
	ApplicationStatusApproved ApplicationStatus = "approved"
	// ApplicationStatusRejected indicates an application was declined.
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Valid reports whether s is one of the known application statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewing,
		ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// JobApplication represents a submitted job application.
// Status is the only field mutable after creation, and only by admins.
type JobApplication struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	FullName    string            `gorm:"size:120;not null" json:"full_name"`
	Email       string            `gorm:"size:254;not null;index" json:"email"`
	Phone       string            `gorm:"size:40;not null" json:"phone"`
	Position    string            `gorm:"size:120;not null" json:"position"`
	Experience  string            `gorm:"size:60;not null" json:"experience"`
	CoverLetter string            `gorm:"type:text" json:"cover_letter,omitempty"`
	ResumeURL   string            `gorm:"size:500" json:"resume_url,omitempty"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (JobApplication) TableName() string {
	return "job_applications"
}
