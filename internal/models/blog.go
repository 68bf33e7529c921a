package models

import "time"

// StringList is a JSON-serialized string slice column.
type StringList []string

// BlogPost represents an article managed through the admin content editor.
type BlogPost struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Excerpt     string     `gorm:"type:text" json:"excerpt"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Author      string     `gorm:"size:120" json:"author"`
	PublishDate string     `gorm:"size:40" json:"publish_date"`
	ReadTime    string     `gorm:"size:40" json:"read_time"`
	Image       string     `gorm:"size:500" json:"image"`
	Tags        StringList `gorm:"serializer:json" json:"tags"`
	Featured    bool       `gorm:"not null;default:false" json:"featured"`
	Published   bool       `gorm:"not null;default:false" json:"published"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (BlogPost) TableName() string {
	return "blog_posts"
}
