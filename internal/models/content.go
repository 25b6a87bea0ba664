package models

import (
	"time"

	"github.com/google/uuid"
)

// Content is an externally sourced feed item. Counters only grow; the
// active flag is cleared when a report against the item is approved.
type Content struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Source      string    `gorm:"size:50;not null;index" json:"source"`
	SourceIcon  string    `gorm:"size:10;not null" json:"source_icon"`
	URL         string    `gorm:"size:500;not null" json:"url"`
	ImageURL    string    `gorm:"size:500" json:"image_url,omitempty"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Views       int       `gorm:"not null;default:0" json:"views"`
	Saves       int       `gorm:"not null;default:0" json:"saves"`
	Shares      int       `gorm:"not null;default:0" json:"shares"`
	Reports     int       `gorm:"not null;default:0" json:"reports"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
