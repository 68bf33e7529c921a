package models

import "time"

// ResumeUpload represents a general resume submission outside a specific job posting.
type ResumeUpload struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	FullName           string    `gorm:"size:120;not null" json:"full_name"`
	Email              string    `gorm:"size:254;not null;index" json:"email"`
	Phone              string    `gorm:"size:40" json:"phone,omitempty"`
	Location           string    `gorm:"size:120" json:"location,omitempty"`
	PositionInterested string    `gorm:"size:120" json:"position_interested,omitempty"`
	ExperienceLevel    string    `gorm:"size:60" json:"experience_level,omitempty"`
	Skills             string    `gorm:"type:text" json:"skills,omitempty"`
	CoverLetter        string    `gorm:"type:text" json:"cover_letter,omitempty"`
	LinkedinURL        string    `gorm:"size:500" json:"linkedin_url,omitempty"`
	PortfolioURL       string    `gorm:"size:500" json:"portfolio_url,omitempty"`
	ResumeURL          string    `gorm:"size:500" json:"resume_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (ResumeUpload) TableName() string {
	return "resume_uploads"
}
