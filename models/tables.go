package models

import "time"

// Blog status values. The store only ever holds one of these two.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

type Admin struct {
	ID           int       `gorm:"primary_key;autoIncrement" json:"id"`
	Username     string    `gorm:"unique;not null;index" json:"username"`
	FullName     string    `json:"full_name,omitempty"`
	PasswordHash string    `gorm:"not null" json:"-"` // json:"-" prevents password from being exposed in API
	IsSuperAdmin bool      `gorm:"default:false" json:"is_super_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Blog struct {
	ID        int       `gorm:"primary_key;autoIncrement" json:"id"`
	Title     string    `gorm:"not null;index" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Author    string    `gorm:"not null" json:"author"` // free text, not a reference to Admin
	Status    string    `gorm:"not null;default:draft;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
