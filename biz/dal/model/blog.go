package model

import "time"

// Blog is a blog post. Slug is caller-supplied and not checked for
// uniqueness here; IsActive is toggled, never set directly.
type Blog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"column:title" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Slug        string    `gorm:"column:slug" json:"slug"`
	ImageURL    string    `gorm:"column:image_url;type:text" json:"image_url"`
	IsActive    bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides gorm to use the blogs table.
func (Blog) TableName() string {
	return "blogs"
}
