package models

import "time"

// NewsletterSubscriber represents a newsletter signup.
// Email uniqueness is enforced by the database, not by callers.
type NewsletterSubscriber struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:254;not null;uniqueIndex" json:"email"`
	SubscribedAt time.Time `gorm:"autoCreateTime" json:"subscribed_at"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
}

// TableName specifies the table name for GORM.
func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}
