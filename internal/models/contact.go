// Package models contains data structures for the application's domain models.
package models

import "time"

// Contact represents a contact form submission.
type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Email     string    `gorm:"size:254;not null;index" json:"email"`
	Phone     string    `gorm:"size:40" json:"phone,omitempty"`
	Company   string    `gorm:"size:120" json:"company,omitempty"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Contact) TableName() string {
	return "contacts"
}
