package models

import "time"

// GetStartedRequest represents a "get started" inquiry from the marketing site.
type GetStartedRequest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:80;not null" json:"first_name"`
	LastName  string    `gorm:"size:80;not null" json:"last_name"`
	Email     string    `gorm:"size:254;not null;index" json:"email"`
	Company   string    `gorm:"size:120" json:"company,omitempty"`
	Phone     string    `gorm:"size:40" json:"phone,omitempty"`
	JobTitle  string    `gorm:"size:120" json:"job_title,omitempty"`
	Message   string    `gorm:"type:text" json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (GetStartedRequest) TableName() string {
	return "get_started_requests"
}
